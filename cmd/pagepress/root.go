package main

import (
	"github.com/spf13/cobra"

	"github.com/pagepress/pagepress/internal/logger"
)

type rootFlags struct {
	verbose bool
	logJSON bool
}

func (f *rootFlags) newLogger() (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, JSON: f.logJSON})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pagepress",
		Short:         "Pagepress renders branded documents and print-ready exports",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagepress/pagepress/internal/config"
	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/logger"
	"github.com/pagepress/pagepress/internal/templates"
)

type renderOptions struct {
	ConfigPath string
	OutPath    string
	Scale      float64
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a document descriptor to a screen-resolution PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger()
			if err != nil {
				return err
			}
			return runRender(opts, log.Component("render"))
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to document descriptor (YAML)")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "out.png", "Output PNG path")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 1, "Pixels per page unit")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runRender(opts renderOptions, log *logger.Logger) error {
	if opts.Scale <= 0 {
		return fmt.Errorf("render: scale must be positive, got %v", opts.Scale)
	}

	doc, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	builder, ok := templates.Lookup(doc.Template)
	if !ok {
		return fmt.Errorf("render: unknown template %q (have %v)", doc.Template, templates.Names())
	}

	c := canvas.New(doc.Page.Width, doc.Page.Height, opts.Scale)
	c.Fill(colors.MustParse("#ffffff"))
	builder(*doc)(c, doc.Page.Width, doc.Page.Height)

	f, err := os.Create(opts.OutPath)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", opts.OutPath, err)
	}
	defer func() { _ = f.Close() }()

	if err := c.EncodePNG(f); err != nil {
		return fmt.Errorf("render: encode %s: %w", opts.OutPath, err)
	}
	log.Infof("wrote %s", opts.OutPath)
	return nil
}

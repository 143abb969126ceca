package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pagepress/pagepress/internal/web"
)

type serveOptions struct {
	Addr      string
	StaticDir string
	Dev       bool
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the preview and export API for the editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := web.NewServer(opts.Addr)
			s.StaticDir = opts.StaticDir
			s.DevMode = opts.Dev
			s.Log = log
			if err := s.Start(ctx); err != nil {
				return err
			}

			<-ctx.Done()
			return s.Stop()
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&opts.StaticDir, "static", "", "Directory with the editor shell to serve at /")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Enable permissive CORS for a separately served UI")

	return cmd
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagepress/pagepress/internal/config"
	"github.com/pagepress/pagepress/internal/engine/export"
	"github.com/pagepress/pagepress/internal/logger"
	"github.com/pagepress/pagepress/internal/templates"
)

type exportOptions struct {
	ConfigPath string
	Preset     string
	OutDir     string
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a document at a print preset, with bleed and crop marks",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger()
			if err != nil {
				return err
			}
			return runExport(opts, log.Component("export"))
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to document descriptor (YAML)")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "print-standard", "Export preset name, or \"all\"")
	cmd.Flags().StringVarP(&opts.OutDir, "out-dir", "o", ".", "Directory for exported files")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runExport(opts exportOptions, log *logger.Logger) error {
	doc, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	builder, ok := templates.Lookup(doc.Template)
	if !ok {
		return fmt.Errorf("export: unknown template %q (have %v)", doc.Template, templates.Names())
	}

	names := []string{opts.Preset}
	if opts.Preset == "all" {
		names = names[:0]
		for _, p := range export.Presets() {
			names = append(names, p.Name)
		}
	}

	base := strings.TrimSuffix(filepath.Base(opts.ConfigPath), filepath.Ext(opts.ConfigPath))
	render := builder(*doc)
	for _, name := range names {
		path, err := export.AtPreset(render, doc.Page.Width, doc.Page.Height, name, opts.OutDir, base)
		if err != nil {
			return err
		}
		log.Infof("wrote %s", path)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/palette"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette <brand-color>",
		Short: "Print the derived document palette for a brand color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			primary, err := colors.Parse(args[0])
			if err != nil {
				return err
			}

			p := palette.Generate(primary)
			out := cmd.OutOrStdout()
			rows := []struct {
				name string
				c    colors.Color
			}{
				{"text-dark", p.TextDark},
				{"text-medium", p.TextMedium},
				{"text-light", p.TextLight},
				{"text-on-primary", p.TextOnPrimary},
				{"off-white", p.OffWhite},
				{"light-gray", p.LightGray},
				{"medium-gray", p.MediumGray},
				{"border-gray", p.BorderGray},
				{"primary-light", p.PrimaryLight},
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%-16s %s\n", row.name, row.c.Hex())
			}
			return nil
		},
	}
}

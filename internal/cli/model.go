package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModelCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Print the model the server edits with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := opts.client().CurrentModel(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), model)
			return err
		},
	}
}

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List catalog tiles and wall colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := opts.client().Catalog(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TILE\tNAME\tFINISH")
			for _, t := range listing.Tiles {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Subtitle)
			}
			fmt.Fprintln(tw, "\nWALL\tHEX\t")
			for _, c := range listing.WallColors {
				fmt.Fprintf(tw, "%s\t%s\t\n", c.Name, c.Hex)
			}
			return tw.Flush()
		},
	}
}

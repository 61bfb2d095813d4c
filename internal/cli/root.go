// Package cli implements the roomctl commands.
package cli

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"roomviz/internal/composer"
	"roomviz/internal/infra"
)

type options struct {
	cfg    Config
	logger zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	var serverURL string

	cmd := &cobra.Command{
		Use:   "roomctl",
		Short: "Preview floor tiles, wall colors and furniture in a room photo",
		Long: `roomctl sends a room photo plus your selections to the room visualizer
server and saves the edited image it returns.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			opts.cfg = cfg
			opts.logger = infra.NewConsoleLogger(cfg.Verbose)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (default $ROOMCTL_SERVER_URL)")

	cmd.AddCommand(newEditCmd(opts), newModelCmd(opts), newCatalogCmd(opts))
	return cmd
}

func (o *options) client() *composer.Client {
	return composer.NewClient(o.cfg.ServerURL, &http.Client{Timeout: o.cfg.Timeout()})
}

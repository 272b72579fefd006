package cli

import (
	"fmt"

	"catalog/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the products table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if cfg.DBDriver == config.DriverMemory {
				return fmt.Errorf("nothing to migrate for the %s driver", cfg.DBDriver)
			}

			_, closeStore, err := openStore(cfg, log)
			if err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return closeStore()
		},
	}
}

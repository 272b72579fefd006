// Package cli wires configuration, logging and storage into the catalog
// commands: serve, migrate and seed.
package cli

import (
	"fmt"
	"os"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/logger"
	"catalog/internal/repositories"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	envFile string
}

// NewRootCommand builds the command tree. Without a subcommand it serves.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Product catalog REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.AddCommand(newServeCommand(opts), newMigrateCommand(opts), newSeedCommand(opts))
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
}

func bootstrap(opts *options) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger.New(cfg.LogLevel, cfg.IsDevelopment()), nil
}

// openStore returns the product repository for the configured driver and a
// function releasing it. SQL stores are migrated before use.
func openStore(cfg *config.Config, log zerolog.Logger) (repositories.ProductRepository, func() error, error) {
	if cfg.DBDriver == config.DriverMemory {
		return repositories.NewMockProductRepository(), func() error { return nil }, nil
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("database connected")
	return repositories.NewGORMProductRepository(db), func() error { return database.Close(db) }, nil
}

package cli

import (
	"context"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newSeedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg, log)
			if err != nil {
				return err
			}
			seedProducts(cmd.Context(), store, log)
			return closeStore()
		},
	}
}

// seedProducts populates the store with some initial data.
func seedProducts(ctx context.Context, repo repositories.ProductRepository, log zerolog.Logger) int {
	service := services.NewProductService(repo)
	products := []models.Product{
		{Name: "Monitor Curvo de 49 Pulgadas", Price: 399},
		{Name: "Teclado Mecanico", Price: 75},
		{Name: "Mouse Inalambrico", Price: 25},
	}

	seeded := 0
	for i := range products {
		if err := service.CreateProduct(ctx, &products[i]); err != nil {
			log.Error().Err(err).Str("name", products[i].Name).Msg("error seeding product")
			continue
		}
		log.Info().Uint("id", products[i].ID).Str("name", products[i].Name).Msg("seeded product")
		seeded++
	}
	return seeded
}

package seed

import (
	"context"
	"testing"

	"github.com/SabihaEylul/nextjswebb/internal/repository/memstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()
	store := memstore.New()

	t.Run("fills an empty database", func(t *testing.T) {
		result, err := Run(ctx, &logger, store, store)
		require.NoError(t, err)
		require.Equal(t, Result{ServicesCreated: 6, ProductsCreated: 5}, result)

		services, err := store.ListServices(ctx)
		require.NoError(t, err)
		require.Len(t, services, 6)

		var haircut bool
		for _, s := range services {
			if s.Name == "Saç Kesimi" {
				haircut = true
				require.Equal(t, 150.0, s.Price)
				require.NotNil(t, s.ImageURL)
				require.Equal(t, "/images/sac-kesimi.jpeg", *s.ImageURL)
			}
		}
		require.True(t, haircut)
	})

	t.Run("is idempotent", func(t *testing.T) {
		result, err := Run(ctx, &logger, store, store)
		require.NoError(t, err)
		require.Equal(t, Result{ServicesSkipped: 6, ProductsSkipped: 5}, result)

		products, err := store.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 5)
	})
}

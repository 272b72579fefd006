package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteRepository(t *testing.T) repositories.ProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repositories.NewGORMProductRepository(db)
}

// exerciseRepository runs the same contract against every implementation.
func exerciseRepository(t *testing.T, repo repositories.ProductRepository) {
	ctx := context.Background()

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	created := make([]*models.Product, 0, 3)
	for i, name := range []string{"Laptop", "Keyboard", "Mouse"} {
		p := &models.Product{Name: name, Price: float64(10 * (i + 1)), Availability: true}
		require.NoError(t, repo.Create(ctx, p))
		assert.NotZero(t, p.ID)
		created = append(created, p)
	}

	products, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i := range products {
		assert.Equal(t, created[i].ID, products[i].ID, "ordered by id")
	}

	loaded, err := repo.GetByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", loaded.Name)

	loaded.Name = "Laptop Pro"
	loaded.Price = 99.5
	loaded.Availability = false
	require.NoError(t, repo.Update(ctx, loaded))

	updated, err := repo.GetByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.Equal(t, 99.5, updated.Price)
	assert.False(t, updated.Availability, "false must be written")

	require.NoError(t, repo.Delete(ctx, created[1].ID))
	_, err = repo.GetByID(ctx, created[1].ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created[1].ID), repositories.ErrProductNotFound)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.Product{ID: 999, Name: "x", Price: 1}), repositories.ErrProductNotFound)
}

func TestGORMProductRepository(t *testing.T) {
	exerciseRepository(t, newSQLiteRepository(t))
}

func TestMockProductRepository(t *testing.T) {
	exerciseRepository(t, repositories.NewMockProductRepository())
}

func TestGORMProductRepository_UpdateDoesNotInsert(t *testing.T) {
	repo := newSQLiteRepository(t)
	ctx := context.Background()

	err := repo.Update(ctx, &models.Product{ID: 42, Name: "Ghost", Price: 5})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

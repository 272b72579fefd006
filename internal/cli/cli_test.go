package cli

import (
	"context"
	"path/filepath"
	"testing"

	"catalog/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "migrate", "seed"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	flag := cmd.PersistentFlags().Lookup("env-file")
	require.NotNil(t, flag)
	assert.Equal(t, ".env", flag.DefValue)
}

func TestOpenStore_Memory(t *testing.T) {
	store, closeStore, err := openStore(&config.Config{DBDriver: config.DriverMemory}, zerolog.Nop())
	require.NoError(t, err)
	defer closeStore()

	assert.Equal(t, 3, seedProducts(context.Background(), store, zerolog.Nop()))

	products, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.Availability)
	}
}

func TestOpenStore_SQLiteIsMigrated(t *testing.T) {
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseDSN: filepath.Join(t.TempDir(), "catalog.db"),
	}

	store, closeStore, err := openStore(cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 3, seedProducts(context.Background(), store, zerolog.Nop()))
	require.NoError(t, closeStore())

	// Data survives reopening the same file.
	store, closeStore, err = openStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeStore()

	products, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestOpenStore_UnsupportedDriver(t *testing.T) {
	_, _, err := openStore(&config.Config{DBDriver: "mongo", DatabaseDSN: "x"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestMigrateCommand_RejectsMemoryDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", config.DriverMemory)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"migrate", "--env-file", filepath.Join(t.TempDir(), "absent.env")})
	assert.Error(t, cmd.Execute())
}

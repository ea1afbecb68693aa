package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// isolate runs the test in an empty directory so no stray .env or
// .comicstore.yaml is read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	config, err := LoadConfig(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
	assert.Equal(t, "data", config.Shop.DataDir)
	assert.Equal(t, "last", config.Shop.IDs.Policy)
	assert.Equal(t, "best-effort", config.Shop.Checkout.Policy)
	assert.True(t, config.Shop.Checkout.TrackStock)
	assert.Empty(t, config.ConfigFile)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".comicstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: shelf
format: yaml
ids:
  policy: max
orders:
  key_by: comic
checkout:
  policy: validate-first
  track_stock: false
`), 0o644))

	config, err := LoadConfig(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "shelf", config.Shop.DataDir)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "max", config.Shop.IDs.Policy)
	assert.Equal(t, "comic", config.Shop.Orders.KeyBy)
	assert.Equal(t, "validate-first", config.Shop.Checkout.Policy)
	assert.False(t, config.Shop.Checkout.TrackStock)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfigEnvironment(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".comicstore.yaml"), []byte("data_dir: shelf\n"), 0o644))
	t.Setenv("COMICSTORE_DATA_DIR", "vault")
	t.Setenv("COMICSTORE_CHECKOUT_POLICY", "validate-first")

	config, err := LoadConfig(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "vault", config.Shop.DataDir)
	assert.Equal(t, "validate-first", config.Shop.Checkout.Policy)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COMICSTORE_DATA_DIR=from-env\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("COMICSTORE_DATA_DIR=from-local\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("COMICSTORE_DATA_DIR") })

	config, err := LoadConfig(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "from-local", config.Shop.DataDir)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(newViper(), filepath.Join(dir, "missing.yaml"))
	var configErr *errors.ConfigError
	assert.ErrorAs(t, err, &configErr)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("checkout:\n  policy: sometimes\n"), 0o644))
	_, err = LoadConfig(newViper(), bad)
	assert.Error(t, err)

	format := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(format, []byte("format: csv\n"), 0o644))
	_, err = LoadConfig(newViper(), format)
	assert.ErrorAs(t, err, &configErr)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://clinic:pw@db:5432/clinic?sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ACCESS_EXPIRY", "5m")
	t.Setenv("APP_PORT", "8081")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, 100, cfg.DB.MaxOpenConns)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://clinic:pw@db:5432/clinic?sslmode=disable", dsn)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	// Empty variables are ignored by viper, so the file values apply.
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	content := "DB_HOST=localhost\nDB_USER=clinic\nDB_PASSWORD=pw\nDB_NAME=clinic\nJWT_SECRET=fromfile\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.JWT.Secret)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "postgres://clinic:pw@localhost:5432/clinic")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestLoadConfig_RequiresDatabase(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingDatabase)
}

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadServiceConfig_Postgres(t *testing.T) {
	t.Setenv("JOBLY_TEST_DB_PASSWORD", "secret")
	path := writeConfig(t, `
address: ":9090"
database:
  driver: postgres
  host: db
  port: 5432
  user: jobly
  dbname: jobs
redis:
  url: redis://cache:6379/0
  ttl: 30s
`)

	cfg, err := LoadServiceConfig(zap.NewNop(), path, "JOBLY_TEST_DB_PASSWORD")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "postgres://jobly:secret@db:5432/jobs", cfg.DbConfig.DBConn)
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisConfig.URL)
	assert.Equal(t, 30*time.Second, cfg.RedisConfig.TTL)
	assert.Empty(t, cfg.NATSConfig.URL)
}

func TestLoadServiceConfig_MissingPassword(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  host: db
`)

	_, err := LoadServiceConfig(zap.NewNop(), path, "JOBLY_TEST_UNSET_PASSWORD")
	assert.Error(t, err)
}

func TestLoadServiceConfig_MemoryNeedsNoPassword(t *testing.T) {
	path := writeConfig(t, `
storage: memory
database:
  seed_companies: [acme, globex]
`)

	cfg, err := LoadServiceConfig(zap.NewNop(), path, "JOBLY_TEST_UNSET_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultCacheTTL, cfg.RedisConfig.TTL)
	assert.Equal(t, []string{"acme", "globex"}, cfg.DbConfig.SeedCompanies)
	assert.Empty(t, cfg.DbConfig.DBConn)
}

func TestLoadServiceConfig_UnknownStorage(t *testing.T) {
	path := writeConfig(t, "storage: mongo\n")

	_, err := LoadServiceConfig(zap.NewNop(), path, "JOBLY_TEST_UNSET_PASSWORD")
	assert.Error(t, err)
}

func TestLoadServiceConfig_MissingFile(t *testing.T) {
	_, err := LoadServiceConfig(zap.NewNop(), filepath.Join(t.TempDir(), "absent.yaml"), "X")
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cinderchain/cinder/common"
	"github.com/cinderchain/cinder/crypto"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.yml", `
store:
  backend: postgres
  postgres_dsn: postgres://cinder@localhost/cinder?sslmode=disable
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, BackendPostgres, cfg.Store.Backend)
	require.Contains(t, cfg.Store.PostgresDSN, "cinder")
}

func TestLoadConfigRejectsIncomplete(t *testing.T) {
	path := writeFile(t, "config.yml", `
store:
  backend: postgres
`)
	_, err := LoadConfig(path)
	require.Error(t, err)

	path = writeFile(t, "config2.yml", `
store:
  backend: cassandra
  postgres_dsn: whatever
`)
	_, err = LoadConfig(path)
	require.Error(t, err)
}

func TestStoreConfigValidate(t *testing.T) {
	require.Error(t, (&StoreConfig{}).Validate())
	require.NoError(t, (&StoreConfig{Backend: BackendBolt, BoltPath: "pending.db"}).Validate())
	require.Error(t, (&StoreConfig{Backend: BackendBolt}).Validate())
}

func TestLoadDBTuning(t *testing.T) {
	path := writeFile(t, "db.ini", `
[database]
max_open_conns = 20
max_idle_conns = 8
conn_max_lifetime_sec = 60
`)
	tuning, err := LoadDBTuning(path)
	require.NoError(t, err)
	require.Equal(t, 20, tuning.MaxOpenConns)
	require.Equal(t, 8, tuning.MaxIdleConns)
	require.Equal(t, 60, tuning.ConnMaxLifetimeSec)
}

func TestLoadDBTuningDefaults(t *testing.T) {
	path := writeFile(t, "db.ini", "[database]\n")
	tuning, err := LoadDBTuning(path)
	require.NoError(t, err)
	require.Equal(t, DefaultDBTuning(), tuning)
}

func TestLoadPrivateKey(t *testing.T) {
	priv, _, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	path := writeFile(t, "key", common.EncodeHex(priv)+"\n")
	loaded, err := LoadPrivateKey(path)
	require.NoError(t, err)
	require.Equal(t, priv, loaded)
}

func TestLoadPrivateKeyRejectsBadInput(t *testing.T) {
	_, err := LoadPrivateKey(writeFile(t, "key", "not hex"))
	require.Error(t, err)

	_, err = LoadPrivateKey(writeFile(t, "key2", "abcd"))
	require.Error(t, err)
}

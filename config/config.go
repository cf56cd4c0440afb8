package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/cinderchain/cinder/common"
	"github.com/cinderchain/cinder/crypto"
)

// Store backends.
const (
	BackendPostgres = "postgres"
	BackendBolt     = "bolt"
)

// StoreConfig selects and parameterizes the pending-store backend.
type StoreConfig struct {
	Backend     string `yaml:"backend"`
	PostgresDSN string `yaml:"postgres_dsn"`
	BoltPath    string `yaml:"bolt_path"`
}

// Validate checks that the selected backend has what it needs.
func (sc *StoreConfig) Validate() error {
	switch sc.Backend {
	case BackendPostgres:
		if sc.PostgresDSN == "" {
			return fmt.Errorf("store config: postgres_dsn is required for the postgres backend")
		}
	case BackendBolt:
		if sc.BoltPath == "" {
			return fmt.Errorf("store config: bolt_path is required for the bolt backend")
		}
	case "":
		return fmt.Errorf("store config: backend cannot be empty")
	default:
		return fmt.Errorf("store config: unsupported backend %q", sc.Backend)
	}
	return nil
}

// FileConfig is the top-level node configuration file.
type FileConfig struct {
	Store StoreConfig `yaml:"store"`
}

// LoadConfig reads and parses the yaml node configuration.
func LoadConfig(path string) (*FileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg FileConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DBTuning carries pool settings for the shared Postgres handle.
type DBTuning struct {
	MaxOpenConns       int `ini:"max_open_conns"`
	MaxIdleConns       int `ini:"max_idle_conns"`
	ConnMaxLifetimeSec int `ini:"conn_max_lifetime_sec"`
}

// DefaultDBTuning returns the pool settings used when no tuning file is
// given.
func DefaultDBTuning() *DBTuning {
	return &DBTuning{
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
	}
}

// LoadDBTuning reads pool settings from the [database] section of an .ini
// file.
func LoadDBTuning(path string) (*DBTuning, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	tuning := DefaultDBTuning()
	if err := cfg.Section("database").MapTo(tuning); err != nil {
		return nil, err
	}
	return tuning, nil
}

// LoadPrivateKey loads a secp256k1 private scalar from a file holding its
// hex encoding.
func LoadPrivateKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := common.DecodeHex(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(key) != crypto.PrivateKeyLen {
		return nil, fmt.Errorf("parse %s: expected %d hex-encoded bytes, got %d", path, crypto.PrivateKeyLen, len(key))
	}
	return key, nil
}

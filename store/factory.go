package store

import (
	"fmt"

	"github.com/cinderchain/cinder/config"
)

// NewPendingStore creates the configured backend. For Postgres the pooled
// handle is opened once here and owned by the returned store; the schema is
// ensured before first use.
func NewPendingStore(cfg config.StoreConfig, tuning *config.DBTuning) (PendingStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := OpenDB(cfg.PostgresDSN, tuning)
		if err != nil {
			return nil, err
		}
		s, err := NewPgStore(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		if err := s.EnsureSchema(); err != nil {
			db.Close()
			return nil, err
		}
		return s, nil
	case config.BackendBolt:
		return NewBoltStore(cfg.BoltPath)
	default:
		return nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
}

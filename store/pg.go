package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/cinderchain/cinder/config"
	"github.com/cinderchain/cinder/logx"
	"github.com/cinderchain/cinder/transaction"
)

const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
	id            TEXT PRIMARY KEY,
	sender_addr   TEXT NOT NULL,
	sender_pubkey TEXT NOT NULL,
	receiver_addr TEXT NOT NULL,
	amount        INTEGER NOT NULL,
	timestamp     BIGINT NOT NULL,
	signature     TEXT NOT NULL
)`

// PgStore keeps pending transactions in a Postgres table, one row per
// transaction, all byte fields as their text projection.
type PgStore struct {
	db *sql.DB
}

// NewPgStore wraps an already opened, pooled handle. The store does not own
// connection establishment; OpenDB provides the shared handle.
func NewPgStore(db *sql.DB) (*PgStore, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil database handle", ErrStorage)
	}
	return &PgStore{db: db}, nil
}

// EnsureSchema creates the transactions table when missing.
func (s *PgStore) EnsureSchema() error {
	if _, err := s.db.Exec(createTransactionsTable); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", ErrStorage, err)
	}
	return nil
}

func (s *PgStore) Insert(tx *transaction.Transaction) error {
	row := tx.Row()
	_, err := s.db.Exec(
		`INSERT INTO transactions(id, sender_addr, sender_pubkey, receiver_addr, amount, timestamp, signature)
		 VALUES($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		row.ID, row.SenderAddr, row.SenderPubKey, row.ReceiverAddr, row.Amount, row.Timestamp, row.Signature,
	)
	if err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrStorage, row.ID, err)
	}
	logx.Debug("PENDING_STORE", "inserted tx ", row.ID)
	return nil
}

func (s *PgStore) ListAll() ([]*transaction.Transaction, error) {
	rows, err := s.db.Query(
		`SELECT id, sender_addr, sender_pubkey, receiver_addr, amount, timestamp, signature FROM transactions`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStorage, err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction
	for rows.Next() {
		var row transaction.Row
		if err := rows.Scan(&row.ID, &row.SenderAddr, &row.SenderPubKey, &row.ReceiverAddr, &row.Amount, &row.Timestamp, &row.Signature); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrStorage, err)
		}
		tx, err := row.Transaction()
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", row.ID, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStorage, err)
	}
	return txs, nil
}

func (s *PgStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM transactions`); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrStorage, err)
	}
	logx.Info("PENDING_STORE", "cleared pending transactions")
	return nil
}

func (s *PgStore) Close() error {
	return s.db.Close()
}

// OpenDB establishes the shared pooled Postgres handle, retrying the
// initial ping a few times so a node can come up alongside its database.
func OpenDB(dsn string, tuning *config.DBTuning) (*sql.DB, error) {
	const maxRetries = 5
	const retryDelay = 3 * time.Second

	if tuning == nil {
		tuning = config.DefaultDBTuning()
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			logx.Warn("PENDING_STORE", "retrying database connection after: ", lastErr)
			time.Sleep(retryDelay)
		}

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			lastErr = err
			continue
		}
		if err := db.Ping(); err != nil {
			db.Close()
			lastErr = err
			continue
		}

		db.SetMaxOpenConns(tuning.MaxOpenConns)
		db.SetMaxIdleConns(tuning.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(tuning.ConnMaxLifetimeSec) * time.Second)
		logx.Info("PENDING_STORE", "database connection established")
		return db, nil
	}
	return nil, fmt.Errorf("%w: connect after %d attempts: %v", ErrStorage, maxRetries, lastErr)
}

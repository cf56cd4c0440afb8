package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/cinderchain/cinder/jsonx"
	"github.com/cinderchain/cinder/logx"
	"github.com/cinderchain/cinder/transaction"
)

var pendingBucket = []byte("pending")

// BoltStore keeps pending transactions in an embedded bbolt file, keyed by
// the text-encoded id with the JSON-encoded text row as the value. Both
// backends share the same seven-field row and the same FromFields read
// path.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database file and its bucket.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorage, path, err)
	}
	err = db.Update(func(btx *bolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(pendingBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create bucket: %v", ErrStorage, err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Insert(tx *transaction.Transaction) error {
	row := tx.Row()
	value, err := jsonx.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrStorage, row.ID, err)
	}
	err = s.db.Update(func(btx *bolt.Tx) error {
		// Put overwrites; an existing id holds the identical row, so the
		// duplicate insert stays an idempotent no-op.
		return btx.Bucket(pendingBucket).Put([]byte(row.ID), value)
	})
	if err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrStorage, row.ID, err)
	}
	logx.Debug("PENDING_STORE", "inserted tx ", row.ID)
	return nil
}

func (s *BoltStore) ListAll() ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction
	err := s.db.View(func(btx *bolt.Tx) error {
		return btx.Bucket(pendingBucket).ForEach(func(k, v []byte) error {
			var row transaction.Row
			if err := jsonx.Unmarshal(v, &row); err != nil {
				return fmt.Errorf("%w: unmarshal %s: %v", ErrStorage, k, err)
			}
			tx, err := row.Transaction()
			if err != nil {
				return fmt.Errorf("row %s: %w", row.ID, err)
			}
			txs = append(txs, tx)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *BoltStore) Clear() error {
	err := s.db.Update(func(btx *bolt.Tx) error {
		if err := btx.DeleteBucket(pendingBucket); err != nil {
			return err
		}
		_, err := btx.CreateBucket(pendingBucket)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: clear: %v", ErrStorage, err)
	}
	logx.Info("PENDING_STORE", "cleared pending transactions")
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

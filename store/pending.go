// Package store persists transactions awaiting block inclusion. Records are
// written as their text projection and read back through the inverse
// decoding, so a transaction survives a round trip byte-for-byte and still
// verifies. Two backends exist behind one interface: Postgres over a shared
// pooled handle, and an embedded bbolt file for deployments without a
// database server.
package store

import (
	"errors"

	"github.com/cinderchain/cinder/transaction"
)

// ErrStorage is the kind for I/O, connectivity, and constraint failures in
// the backing store. It never signals a cryptographic problem.
var ErrStorage = errors.New("storage failure")

// PendingStore is the durable holding area for transactions not yet
// included in a block. Implementations rely on the backing store's own
// per-statement atomicity; no additional locking is layered on top.
type PendingStore interface {
	// Insert writes a record keyed by the transaction's text-encoded id.
	// Inserting an id that already exists is an idempotent no-op: the id
	// is content-addressed, so an equal id implies an equal record.
	Insert(tx *transaction.Transaction) error

	// ListAll reads a snapshot of every pending record, decoding each
	// text field back to raw bytes. Returned transactions are parsed,
	// not trusted; callers must verify them before use.
	ListAll() ([]*transaction.Transaction, error)

	// Clear deletes all pending records. Irreversible.
	Clear() error

	// Close releases the backing handle.
	Close() error
}

// Package index implements the persistent search index: an embedded SQL
// engine with trigram full-text search plus a fuzzy fallback, and a
// background ingest pipeline that bulk-loads crawler output.
package index

import (
	"context"

	"github.com/pkg/errors"
)

// Indexer is the process-wide handle to the on-disk index. It owns the
// steady-state connection pool and the shared ingest Status.
type Indexer struct {
	store  *Store
	status *statusBox
}

// Open creates or opens the index database under dataDir and seeds Status
// from the current row count, so a caller observes that prior work
// persists even before any ingest has run in this process.
func Open(dataDir string) (*Indexer, error) {
	store, err := newStore(dataDir)
	if err != nil {
		return nil, err
	}

	idx := &Indexer{store: store, status: newStatusBox()}
	idx.status.seed(idx.Count(context.Background()))
	return idx, nil
}

// Status returns the current ingest snapshot without blocking a scan.
func (idx *Indexer) Status() Status {
	return idx.status.get()
}

// Count returns the number of indexed rows, or 0 on any storage failure —
// administrative reads are tolerant of a cold/corrupt database the same
// way the hot search path is.
func (idx *Indexer) Count(ctx context.Context) int {
	var n int
	if err := idx.store.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// Clear deletes every row from both the files table and its FTS shadow,
// then reclaims space with VACUUM.
func (idx *Indexer) Clear(ctx context.Context) error {
	db := idx.store.DB()
	for _, stmt := range []string{
		`DELETE FROM files`,
		`DELETE FROM files_fts`,
		`VACUUM`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to clear index")
		}
	}
	return nil
}

// Close releases the underlying connection pool.
func (idx *Indexer) Close() error {
	return idx.store.Close()
}

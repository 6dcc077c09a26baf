package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	_ "modernc.org/sqlite" // pure-Go sqlite driver registered under "sqlite"
)

// dbFileName is the on-disk index file inside the caller-provided data
// directory.
const dbFileName = "hardbore_index.db"

// steady-state PRAGMAs applied to every connection opened against the
// index: reasonable durability with good throughput for mixed read/write.
var steadyPragmas = []string{
	"journal_mode(wal)",
	"synchronous(normal)",
	"cache_size(-64000)",
	"temp_store(memory)",
	"mmap_size(268435456)",
}

// bulkPragmas are applied only to the dedicated bulk-ingest connection, to
// maximize insert throughput at the cost of durability for the duration of
// one ingest pass. recursive_triggers makes the row deletion done by
// INSERT OR REPLACE fire files_ad, so re-ingest keeps files_fts coherent.
var bulkPragmas = []string{
	"synchronous(off)",
	"journal_mode(memory)",
	"temp_store(memory)",
	"recursive_triggers(1)",
}

func dsn(dbPath string, pragmas []string) string {
	dsn := "file:" + dbPath
	for i, p := range pragmas {
		sep := "&"
		if i == 0 {
			sep = "?"
		}
		dsn += fmt.Sprintf("%s_pragma=%s", sep, p)
	}
	return dsn
}

// Store owns the steady-state connection pool used for reads and query
// serving. Ingest opens its own dedicated writer connection (see ingest.go)
// so a background bulk load never shares pragmas with concurrent readers.
type Store struct {
	db     *sql.DB
	dbPath string
}

// newStore creates (or opens) the index database under dataDir, applies
// the schema, and returns a Store backed by a steady-state connection
// pool.
func newStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %q", dataDir)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	db, err := sql.Open("sqlite", dsn(dbPath, steadyPragmas))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open index at %q", dbPath)
	}

	if err := ensureSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// DB returns the underlying connection pool for queries.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the on-disk location of the index.
func (s *Store) Path() string { return s.dbPath }

// Close releases the steady-state connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// openBulkWriter opens a single dedicated connection tuned for bulk
// ingest. Pinning MaxOpenConns to 1 keeps the relaxed durability pragmas
// scoped to this one physical connection; closing it (after restoring
// steady-state pragmas) fully reverts the effect.
func openBulkWriter(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(dbPath, bulkPragmas))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bulk writer for %q", dbPath)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// steadyPragmaStatements are the direct SQL form of the synchronous and
// journal_mode entries of steadyPragmas (the two that bulkPragmas relax),
// used to explicitly revert a bulk writer connection before closing it.
var steadyPragmaStatements = []string{
	"PRAGMA synchronous = NORMAL",
	"PRAGMA journal_mode = WAL",
}

// restoreSteadyPragmas re-applies steadyPragmaStatements to the bulk
// writer connection before it is closed, so the revert is explicit rather
// than relying solely on the connection going away.
func restoreSteadyPragmas(ctx context.Context, db *sql.DB) {
	for _, stmt := range steadyPragmaStatements {
		_, _ = db.ExecContext(ctx, stmt)
	}
}

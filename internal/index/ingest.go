package index

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	"github.com/FrogSnot/HardBore/internal/crawler"
	"github.com/FrogSnot/HardBore/internal/direntry"
	"github.com/FrogSnot/HardBore/internal/logs"
)

// batchSize is the number of rows committed per transaction during bulk
// ingest, matching the original indexer's commit cadence.
const batchSize = 10000

// upsertSQL binds the eight non-id columns; id is left to autoincrement
// and UNIQUE(path) plus INSERT OR REPLACE gives idempotent re-ingest.
const upsertSQL = `
INSERT OR REPLACE INTO files (path, name, is_dir, hidden, parent_path, extension, size, modified)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// IndexDirectory starts a background worker that crawls root and ingests
// every entry into the index, then returns immediately. The running Status
// is published before it returns, so a caller polling Status right after
// the call sees the run in progress. At most one worker is expected per
// process but overlapping calls are tolerated — rows upsert by path, and
// the shared Status simply reflects whichever call last published.
func (idx *Indexer) IndexDirectory(root string, maxDepth int) {
	idx.status.set(Status{IsRunning: true, CurrentPath: root})
	go idx.runIngest(root, maxDepth)
}

func (idx *Indexer) runIngest(root string, maxDepth int) {
	ctx := context.Background()
	start := time.Now()

	entries := crawler.Crawl(root, maxDepth)

	writer, err := openBulkWriter(idx.store.Path())
	if err != nil {
		logs.Critical(ctx, "ingest: failed to open bulk writer", "root", root, "error", err)
		idx.status.set(Status{IsRunning: false, IndexedCount: len(entries), ElapsedMs: time.Since(start).Milliseconds()})
		return
	}
	defer writer.Close()

	if err := ingestBatches(ctx, writer, entries, func(n int) {
		idx.status.set(Status{
			IsRunning:    true,
			CurrentPath:  root,
			IndexedCount: n,
			ElapsedMs:    time.Since(start).Milliseconds(),
		})
	}); err != nil {
		logs.Critical(ctx, "ingest: batch commit failed", "root", root, "error", err)
	}

	restoreSteadyPragmas(ctx, writer)

	idx.status.set(Status{
		IsRunning:    false,
		IndexedCount: len(entries),
		ElapsedMs:    time.Since(start).Milliseconds(),
	})
}

// ingestBatches streams entries through a prepared upsert statement inside
// a transaction, committing and re-opening every batchSize rows and
// invoking progress after each commit. Individual row failures are logged
// and skipped — they never abort the run, matching the per-row tolerance
// of the original ingest worker. All FTS maintenance happens via the
// triggers in schema.go; this function never touches files_fts directly.
func ingestBatches(ctx context.Context, db *sql.DB, entries []direntry.Entry, progress func(n int)) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	commit := func() error {
		if err := stmt.Close(); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		tx, err = db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		stmt, err = tx.PrepareContext(ctx, upsertSQL)
		return err
	}

	for i, e := range entries {
		parent := filepath.Dir(e.Path)
		if parent == e.Path {
			parent = ""
		}

		_, execErr := stmt.ExecContext(ctx, e.Path, e.Name, boolToInt(e.IsDir), boolToInt(e.Hidden), parent, e.Extension, e.Size, e.Modified)
		if execErr != nil {
			logs.Notice(ctx, "ingest: row upsert failed", "path", e.Path, "error", execErr)
			continue
		}

		if (i+1)%batchSize == 0 {
			if err := commit(); err != nil {
				return err
			}
			progress(i + 1)
		}
	}

	if err := stmt.Close(); err != nil {
		return err
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

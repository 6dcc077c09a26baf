package index

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// schemaDDL creates the files table, the trigram FTS5 shadow table, and the
// triggers that keep it coherent with files. Statements are idempotent so
// Open can run them unconditionally against an existing database.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS files (
	id INTEGER PRIMARY KEY,
	path TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	is_dir INTEGER NOT NULL,
	hidden INTEGER NOT NULL DEFAULT 0,
	parent_path TEXT,
	extension TEXT,
	size INTEGER,
	modified INTEGER
);

CREATE VIRTUAL TABLE IF NOT EXISTS files_fts USING fts5(
	name,
	path,
	content='files',
	content_rowid='id',
	tokenize='trigram'
);

CREATE TRIGGER IF NOT EXISTS files_ai AFTER INSERT ON files BEGIN
	INSERT INTO files_fts(rowid, name, path) VALUES (new.id, new.name, new.path);
END;

CREATE TRIGGER IF NOT EXISTS files_ad AFTER DELETE ON files BEGIN
	INSERT INTO files_fts(files_fts, rowid, name, path) VALUES('delete', old.id, old.name, old.path);
END;

CREATE TRIGGER IF NOT EXISTS files_au AFTER UPDATE ON files BEGIN
	INSERT INTO files_fts(files_fts, rowid, name, path) VALUES('delete', old.id, old.name, old.path);
	INSERT INTO files_fts(rowid, name, path) VALUES (new.id, new.name, new.path);
END;

CREATE INDEX IF NOT EXISTS idx_files_parent ON files(parent_path);
CREATE INDEX IF NOT EXISTS idx_files_is_dir ON files(is_dir);
CREATE INDEX IF NOT EXISTS idx_files_extension ON files(extension);
`

// ensureSchema creates the schema if absent and applies any additive
// migrations. The ADD COLUMN statement is expected to fail once the column
// already exists; that failure is swallowed so older databases opened
// against a newer binary gain the column without losing data.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return errors.Wrap(err, "failed to create schema")
	}

	// Additive migration: databases created before "hidden" existed gain it
	// here. Errors are expected (and ignored) once the column is present.
	_, _ = db.ExecContext(ctx, `ALTER TABLE files ADD COLUMN hidden INTEGER NOT NULL DEFAULT 0`)

	return nil
}

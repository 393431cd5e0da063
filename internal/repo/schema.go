package repo

import (
	"database/sql"
	"fmt"
)

// The tag_query FTS5 table is an external-content index over items: the
// triggers keep it in step with every insert, delete, and update. The id
// column is stored UNINDEXED so `SELECT id FROM tag_query('...')` can
// return item ids straight from a match.
//
// Every row carries meta_tags 'all', which gives purely negative queries
// something to match against (FTS5 has no standalone NOT).
//
// tags_col is an fts5vocab view over the index, used to list known tags
// with their usage counts.
const schema = `
	PRAGMA journal_mode = WAL;
	PRAGMA synchronous = NORMAL;
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY,
		path TEXT NOT NULL UNIQUE,
		tags TEXT NOT NULL DEFAULT '',
		meta_tags TEXT NOT NULL DEFAULT 'all'
	);

	CREATE VIRTUAL TABLE IF NOT EXISTS tag_query USING fts5(
		id UNINDEXED,
		tags,
		meta_tags,
		content='items',
		content_rowid='id'
	);

	CREATE TRIGGER IF NOT EXISTS items_ai AFTER INSERT ON items BEGIN
		INSERT INTO tag_query (rowid, id, tags, meta_tags)
		VALUES (new.id, new.id, new.tags, new.meta_tags);
	END;

	CREATE TRIGGER IF NOT EXISTS items_ad AFTER DELETE ON items BEGIN
		INSERT INTO tag_query (tag_query, rowid, id, tags, meta_tags)
		VALUES ('delete', old.id, old.id, old.tags, old.meta_tags);
	END;

	CREATE TRIGGER IF NOT EXISTS items_au AFTER UPDATE ON items BEGIN
		INSERT INTO tag_query (tag_query, rowid, id, tags, meta_tags)
		VALUES ('delete', old.id, old.id, old.tags, old.meta_tags);
		INSERT INTO tag_query (rowid, id, tags, meta_tags)
		VALUES (new.id, new.id, new.tags, new.meta_tags);
	END;

	CREATE VIRTUAL TABLE IF NOT EXISTS tags_col USING fts5vocab('tag_query', 'col');
`

func initialize(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}
	return nil
}

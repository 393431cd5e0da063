// Package repo stores tagged file paths in a SQLite database rooted at a
// directory on disk. The database lives in a `.tagrepo/` folder inside the
// repository root, so a repository is portable: moving the root moves the
// data with it.
package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesWalker55/tag-repo/internal/diff"
	"github.com/jamesWalker55/tag-repo/internal/query"
	"github.com/jamesWalker55/tag-repo/internal/scan"
	"github.com/jamesWalker55/tag-repo/internal/sqlutil"
	"github.com/jamesWalker55/tag-repo/internal/tree"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DataDirName is the folder created inside a repository root to hold the
// database and any other repository-local state.
const DataDirName = ".tagrepo"

// DatabaseName is the SQLite file inside the data directory.
const DatabaseName = "tags.db"

// An Item is a single tracked file: its path relative to the repository root
// (always forward-slash separated) and the tags attached to it.
type Item struct {
	ID       int64
	Path     string
	Tags     []string
	MetaTags string
}

// A Tag is one row of tag statistics: how many items carry the tag (Docs) and
// how many times it occurs in total (Count).
type Tag struct {
	Name   string
	Column string
	Docs   int64
	Count  int64
}

// Repo is an open tag repository.
type Repo struct {
	root     string
	db       *sql.DB
	scanOpts scan.Options
}

// Open opens the repository rooted at the given directory, creating the data
// directory and database if they don't exist yet. The root itself must
// already exist.
func Open(root string) (*Repo, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root is not a directory: %s", root)
	}

	dataDir := filepath.Join(root, DataDirName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DatabaseName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := initialize(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repo{root: root, db: db, scanOpts: scan.DefaultOptions()}, nil
}

// openInMemory opens a repository backed by an in-memory database. Used by
// tests.
func openInMemory(root string) (*Repo, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a second pooled connection would see a separate empty database
	db.SetMaxOpenConns(1)
	if err := initialize(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Repo{root: root, db: db, scanOpts: scan.DefaultOptions()}, nil
}

// SetScanOptions replaces the options used when scanning the repository
// root. The data directory stays excluded regardless.
func (r *Repo) SetScanOptions(opts scan.Options) {
	opts.ExcludedNames = append(opts.ExcludedNames, DataDirName)
	r.scanOpts = opts
}

// Root returns the repository root directory.
func (r *Repo) Root() string {
	return r.root
}

// Close closes the underlying database.
func (r *Repo) Close() error {
	return r.db.Close()
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// InsertItem adds a new item with the given tags. It returns a
// *DuplicatePathError if the path is already tracked.
func (r *Repo) InsertItem(path string, tags []string) (int64, error) {
	res, err := r.db.Exec(
		`INSERT INTO items (path, tags) VALUES (?, validate_tags(?))`,
		path, strings.Join(tags, " "),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &DuplicatePathError{Path: path}
		}
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

// InsertItems adds many items with no tags in a single transaction.
func (r *Repo) InsertItems(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO items (path, tags) VALUES (?, '')`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, path := range paths {
		if _, err := stmt.Exec(path); err != nil {
			if isUniqueViolation(err) {
				return &DuplicatePathError{Path: path}
			}
			return fmt.Errorf("failed to insert item: %w", err)
		}
	}
	return tx.Commit()
}

func scanItem(row *sql.Row) (Item, error) {
	var item Item
	var rawTags string
	err := row.Scan(&item.ID, &item.Path, &rawTags, &item.MetaTags)
	if err != nil {
		return Item{}, err
	}
	item.Tags = ParseTags(rawTags)
	return item, nil
}

func scanItemRow(rows *sql.Rows) (Item, error) {
	var item Item
	var rawTags string
	err := rows.Scan(&item.ID, &item.Path, &rawTags, &item.MetaTags)
	if err != nil {
		return Item{}, err
	}
	item.Tags = ParseTags(rawTags)
	return item, nil
}

// ItemByPath looks up a single item by its path. It returns ErrItemNotFound
// if the path isn't tracked.
func (r *Repo) ItemByPath(path string) (Item, error) {
	row := r.db.QueryRow(
		`SELECT id, path, tags, meta_tags FROM items WHERE path = ? LIMIT 1`,
		path,
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ItemByID looks up a single item by its id.
func (r *Repo) ItemByID(id int64) (Item, error) {
	row := r.db.QueryRow(
		`SELECT id, path, tags, meta_tags FROM items WHERE id = ? LIMIT 1`,
		id,
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// RemoveItemByPath deletes an item and returns it.
func (r *Repo) RemoveItemByPath(path string) (Item, error) {
	item, err := r.ItemByPath(path)
	if err != nil {
		return Item{}, err
	}
	if _, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, item.ID); err != nil {
		return Item{}, fmt.Errorf("failed to remove item: %w", err)
	}
	return item, nil
}

// RemoveItemByID deletes an item and returns it.
func (r *Repo) RemoveItemByID(id int64) (Item, error) {
	item, err := r.ItemByID(id)
	if err != nil {
		return Item{}, err
	}
	if _, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, id); err != nil {
		return Item{}, fmt.Errorf("failed to remove item: %w", err)
	}
	return item, nil
}

// UpdateTags replaces an item's tags entirely.
func (r *Repo) UpdateTags(id int64, tags []string) error {
	_, err := r.db.Exec(
		`UPDATE items SET tags = validate_tags(?) WHERE id = ?`,
		strings.Join(tags, " "), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update tags: %w", err)
	}
	return nil
}

// UpdatePath changes the path of the item with the given id.
func (r *Repo) UpdatePath(id int64, path string) error {
	_, err := r.db.Exec(`UPDATE items SET path = ? WHERE id = ?`, path, id)
	if err != nil {
		if isUniqueViolation(err) {
			return &DuplicatePathError{Path: path}
		}
		return fmt.Errorf("failed to update path: %w", err)
	}
	return nil
}

// RenamePath changes an item's path, looked up by its current path.
func (r *Repo) RenamePath(from, to string) error {
	_, err := r.db.Exec(`UPDATE items SET path = ? WHERE path = ?`, to, from)
	if err != nil {
		if isUniqueViolation(err) {
			return &DuplicatePathError{Path: to}
		}
		return fmt.Errorf("failed to rename path: %w", err)
	}
	return nil
}

// InsertTags adds tags to a single item, keeping the stored list sorted and
// deduplicated.
func (r *Repo) InsertTags(id int64, tags []string) error {
	return r.BatchInsertTags([]int64{id}, tags)
}

// BatchInsertTags adds tags to every item in ids.
func (r *Repo) BatchInsertTags(ids []int64, tags []string) error {
	return r.batchUpdateTags("insert_tags", ids, tags)
}

// RemoveTags removes tags from a single item.
func (r *Repo) RemoveTags(id int64, tags []string) error {
	return r.BatchRemoveTags([]int64{id}, tags)
}

// BatchRemoveTags removes tags from every item in ids.
func (r *Repo) BatchRemoveTags(ids []int64, tags []string) error {
	return r.batchUpdateTags("remove_tags", ids, tags)
}

func (r *Repo) batchUpdateTags(fn string, ids []int64, tags []string) error {
	if len(ids) == 0 || len(tags) == 0 {
		return nil
	}

	tagHoles, tagArgs := sqlutil.InClauseArgs(tags)
	idHoles, idArgs := sqlutil.InClauseArgs(ids)
	args := append(tagArgs, idArgs...)

	stmt := fmt.Sprintf(
		`UPDATE items SET tags = %s(tags, %s) WHERE id IN (%s)`,
		fn, tagHoles, idHoles,
	)
	if _, err := r.db.Exec(stmt, args...); err != nil {
		return fmt.Errorf("failed to update tags: %w", err)
	}
	return nil
}

// QueryItems returns all items matching a tag query, in no particular order.
// A blank query matches everything.
func (r *Repo) QueryItems(q string) ([]Item, error) {
	frag, err := query.ToSQL(q)
	if err != nil {
		return nil, &InvalidQueryError{Query: q, Err: err}
	}
	stmt := fmt.Sprintf(
		`SELECT i.id, i.path, i.tags, i.meta_tags
		FROM items i
		INNER JOIN tag_query tq ON tq.id = i.id
		WHERE %s`,
		frag,
	)
	rows, err := r.db.Query(stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	return sqlutil.ScanRows(rows, scanItemRow)
}

// QueryIDs returns the ids of all items matching a tag query, ordered by
// path.
func (r *Repo) QueryIDs(q string) ([]int64, error) {
	frag, err := query.ToSQL(q)
	if err != nil {
		return nil, &InvalidQueryError{Query: q, Err: err}
	}
	stmt := fmt.Sprintf(
		`SELECT i.id
		FROM items i
		INNER JOIN tag_query tq ON tq.id = i.id
		WHERE %s
		ORDER BY i.path`,
		frag,
	)
	rows, err := r.db.Query(stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	return sqlutil.ScanColumn[int64](rows)
}

// QueryPaths returns the paths of all items matching a tag query, ordered by
// path.
func (r *Repo) QueryPaths(q string) ([]string, error) {
	frag, err := query.ToSQL(q)
	if err != nil {
		return nil, &InvalidQueryError{Query: q, Err: err}
	}
	stmt := fmt.Sprintf(
		`SELECT i.path
		FROM items i
		INNER JOIN tag_query tq ON tq.id = i.id
		WHERE %s
		ORDER BY i.path`,
		frag,
	)
	rows, err := r.db.Query(stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	return sqlutil.ScanColumn[string](rows)
}

// Tags returns statistics for every tag in the repository, most widely used
// first.
func (r *Repo) Tags() ([]Tag, error) {
	rows, err := r.db.Query(
		`SELECT t.term, t.col, t.doc, t.cnt FROM tags_col t ORDER BY doc DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Tag, error) {
		var tag Tag
		err := rows.Scan(&tag.Name, &tag.Column, &tag.Docs, &tag.Count)
		return tag, err
	})
}

// AllItems returns every tracked item, ordered by path.
func (r *Repo) AllItems() ([]Item, error) {
	rows, err := r.db.Query(
		`SELECT id, path, tags, meta_tags FROM items ORDER BY path`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	return sqlutil.ScanRows(rows, scanItemRow)
}

// AllPaths returns every tracked path, ordered.
func (r *Repo) AllPaths() ([]string, error) {
	rows, err := r.db.Query(`SELECT path FROM items ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("failed to query paths: %w", err)
	}
	return sqlutil.ScanColumn[string](rows)
}

// AllFolders returns every folder containing at least one tracked item. The
// repository root itself appears as the empty string.
func (r *Repo) AllFolders() ([]string, error) {
	rows, err := r.db.Query(
		`SELECT DISTINCT dirname(i.path) FROM items i ORDER BY dirname(i.path)`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	return sqlutil.ScanColumn[string](rows)
}

// DirStructure returns the folder hierarchy of all tracked items.
func (r *Repo) DirStructure() (*tree.Folder, error) {
	folders, err := r.AllFolders()
	if err != nil {
		return nil, err
	}
	return tree.FromPaths(folders), nil
}

// Sync reconciles the database against a list of paths currently on disk.
// Deleted paths are removed, new paths are inserted untagged, and
// delete/create pairs with the same filename are treated as renames so their
// tags survive. It returns the changes that were applied.
func (r *Repo) Sync(paths []string) (diff.Diff, error) {
	old, err := r.AllPaths()
	if err != nil {
		return diff.Diff{}, err
	}
	d := diff.Paths(old, paths)

	tx, err := r.db.Begin()
	if err != nil {
		return diff.Diff{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, path := range d.Deleted {
		if _, err := tx.Exec(`DELETE FROM items WHERE path = ?`, path); err != nil {
			return diff.Diff{}, fmt.Errorf("failed to remove item: %w", err)
		}
	}
	for _, ren := range d.Renamed {
		if _, err := tx.Exec(`UPDATE items SET path = ? WHERE path = ?`, ren.To, ren.From); err != nil {
			return diff.Diff{}, fmt.Errorf("failed to rename item: %w", err)
		}
	}
	for _, path := range d.Created {
		if _, err := tx.Exec(`INSERT INTO items (path, tags) VALUES (?, '')`, path); err != nil {
			return diff.Diff{}, fmt.Errorf("failed to insert item: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return diff.Diff{}, fmt.Errorf("failed to commit sync: %w", err)
	}
	return d, nil
}

// SyncAll scans the repository root and reconciles the database against the
// files found.
func (r *Repo) SyncAll() (diff.Diff, error) {
	paths, err := scan.Dir(r.root, r.scanOpts)
	if err != nil {
		return diff.Diff{}, err
	}
	return r.Sync(paths)
}

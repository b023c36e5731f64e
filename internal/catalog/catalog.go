// Package catalog exposes a loaded dataset as an in-memory SQLite database
// for ad-hoc SQL. Nothing is ever written to disk.
//
// Tables:
//
//	elements       one TEXT column per dataset column, rows in file order
//	groups         name, position
//	group_members  group_name, symbol, position
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	// sqlite driver for the in-memory catalog.
	_ "modernc.org/sqlite"

	"github.com/leapstack-labs/periodic/internal/dataset"
)

// Catalog is an in-memory SQLite view of a Dataset.
type Catalog struct {
	db      *sql.DB
	logger  *slog.Logger
	columns []string
}

// Open creates the in-memory database and loads ds into it.
func Open(ctx context.Context, ds *dataset.Dataset, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	c := &Catalog{db: db, logger: logger, columns: sqlColumns(ds.Columns)}
	if err := c.load(ctx, ds); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Debug("catalog loaded",
		slog.Int("elements", len(ds.Elements)),
		slog.Int("groups", len(ds.Groups)),
	)
	return c, nil
}

// Close releases the database.
func (c *Catalog) Close() error {
	if c.db != nil {
		c.logger.Debug("closing catalog")
		return c.db.Close()
	}
	return nil
}

// DB returns the underlying database handle.
func (c *Catalog) DB() *sql.DB {
	return c.db
}

// Columns returns the SQL column names of the elements table, in dataset order.
func (c *Catalog) Columns() []string {
	out := make([]string, len(c.columns))
	copy(out, c.columns)
	return out
}

// Query runs a read query.
func (c *Catalog) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return rows, nil
}

// Tables lists the catalog's tables in name order.
func (c *Catalog) Tables(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (c *Catalog) load(ctx context.Context, ds *dataset.Dataset) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin catalog load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := createTables(ctx, tx, c.columns); err != nil {
		return err
	}
	if err := insertElements(ctx, tx, c.columns, ds); err != nil {
		return err
	}
	if err := insertGroups(ctx, tx, ds); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog load: %w", err)
	}
	return nil
}

func createTables(ctx context.Context, tx *sql.Tx, columns []string) error {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " TEXT"
	}
	if len(defs) == 0 {
		defs = []string{`"Symbol" TEXT`}
	}

	stmts := []string{
		fmt.Sprintf("CREATE TABLE elements (%s)", strings.Join(defs, ", ")),
		"CREATE TABLE groups (name TEXT NOT NULL, position INTEGER NOT NULL)",
		"CREATE TABLE group_members (group_name TEXT NOT NULL, symbol TEXT NOT NULL, position INTEGER NOT NULL)",
		"CREATE INDEX idx_group_members_symbol ON group_members (symbol)",
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("failed to create catalog schema: %w", err)
		}
	}
	return nil
}

func insertElements(ctx context.Context, tx *sql.Tx, columns []string, ds *dataset.Dataset) error {
	if len(columns) == 0 {
		return nil
	}

	quoted := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		marks[i] = "?"
	}

	//nolint:gosec // identifiers are quoted by quoteIdent
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO elements (%s) VALUES (%s)",
		strings.Join(quoted, ", "), strings.Join(marks, ", "),
	))
	if err != nil {
		return fmt.Errorf("failed to prepare element insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	args := make([]any, len(columns))
	for _, e := range ds.Elements {
		for i, field := range ds.Columns {
			args[i] = e.Value(field)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert element %s: %w", e.Symbol(), err)
		}
	}
	return nil
}

func insertGroups(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	for i, g := range ds.Groups {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO groups (name, position) VALUES (?, ?)", g.Name, i); err != nil {
			return fmt.Errorf("failed to insert group %q: %w", g.Name, err)
		}
		for j, sym := range g.Symbols {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO group_members (group_name, symbol, position) VALUES (?, ?, ?)", g.Name, sym, j); err != nil {
				return fmt.Errorf("failed to insert member %s of group %q: %w", sym, g.Name, err)
			}
		}
	}
	return nil
}

// sqlColumns derives unique SQL column names from the dataset header.
// SQLite compares identifiers case-insensitively, so "Group" and "group"
// would collide; later duplicates get a numeric suffix. Blank names become
// column_N.
func sqlColumns(header []string) []string {
	seen := make(map[string]int, len(header))
	out := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		key := strings.ToLower(name)
		if n := seen[key]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[key]++
		out[i] = name
	}
	return out
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

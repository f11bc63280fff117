package loader

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/fatih/color"

	"github.com/nileworks/mockpile/internal/mockdata"
)

// tableOrder is the fixed dependency order: independent parents first,
// then rows whose foreign keys only point backward. The circular
// client/supplier <-> primary address/contact references are declared
// deferrable in the schema, so addresses and contacts can carry their
// owner ids before the owner row exists within the load transaction.
var tableOrder = []string{
	"users",
	"addresses",
	"contacts",
	"clients",
	"suppliers",
	"projects",
	"items",
	"documents",
	"project_items",
	"document_relations",
}

// TableOrder returns the insertion order used by Load.
func TableOrder() []string {
	order := make([]string, len(tableOrder))
	copy(order, tableOrder)
	return order
}

type Options struct {
	Truncate      bool            // Clear tables (reverse order) before loading
	NoTransaction bool            // Disable transaction wrapping
	BatchSize     int             // Rows per INSERT statement
	Only          map[string]bool // Restrict to these tables; empty means all
}

type Loader struct {
	db       *sql.DB
	provider string
	qb       sq.StatementBuilderType
	opts     Options
}

// New wraps an open connection. The provider picks the placeholder
// format and the truncation dialect; unknown providers get postgres
// behavior.
func New(db *sql.DB, provider string, opts Options) *Loader {
	qb := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if provider == "postgresql" || provider == "postgres" {
		qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &Loader{db: db, provider: provider, qb: qb, opts: opts}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (l *Loader) enabled(table string) bool {
	if len(l.opts.Only) == 0 {
		return true
	}
	return l.opts.Only[table]
}

// Load inserts every record of the snapshot in dependency order. Unless
// disabled, the whole load runs in one transaction and rolls back on the
// first failure; without a transaction the first failure aborts the
// remaining inserts and already-committed rows stay in place.
func (l *Loader) Load(ctx context.Context, ds *mockdata.Dataset) error {
	var ex execer = l.db
	var tx *sql.Tx

	if !l.opts.NoTransaction {
		var err error
		tx, err = l.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		ex = tx
		color.Cyan("🔒 Transaction started")
	}

	if err := l.load(ctx, ex, ds); err != nil {
		if tx != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("load failed and rollback failed: %v (original: %w)", rbErr, err)
			}
			color.Yellow("✅ Transaction rolled back, no rows kept")
			return err
		}
		color.Yellow("⚠️  Load aborted; rows inserted before the failure remain in the database")
		return err
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		color.Cyan("🔓 Transaction committed")
	}
	return nil
}

func (l *Loader) load(ctx context.Context, ex execer, ds *mockdata.Dataset) error {
	if l.opts.Truncate {
		if err := l.truncate(ctx, ex); err != nil {
			return err
		}
	}

	for _, table := range tableOrder {
		if !l.enabled(table) {
			continue
		}

		columns, rows, err := tableRows(table, ds)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}

		color.Cyan("  📝 Loading %s (%d records)...", table, len(rows))
		if err := l.insertRows(ctx, ex, table, columns, rows); err != nil {
			return fmt.Errorf("failed to load table %s: %w", table, err)
		}
		color.Green("  ✅ %s loaded", table)
	}
	return nil
}

// insertRows issues multi-row INSERTs in BatchSize chunks. Statement
// order within a table is irrelevant to the invariants, foreign keys in
// a snapshot only point backward.
func (l *Loader) insertRows(ctx context.Context, ex execer, table string, columns []string, rows [][]interface{}) error {
	for start := 0; start < len(rows); start += l.opts.BatchSize {
		end := start + l.opts.BatchSize
		if end > len(rows) {
			end = len(rows)
		}

		insert := l.qb.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			insert = insert.Values(row...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := ex.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("rows %d-%d: %w", start+1, end, err)
		}
	}
	return nil
}

// truncate clears the enabled tables in reverse insertion order so
// child rows go before their parents.
func (l *Loader) truncate(ctx context.Context, ex execer) error {
	color.Yellow("🗑️  Truncating tables...")

	for i := len(tableOrder) - 1; i >= 0; i-- {
		table := tableOrder[i]
		if !l.enabled(table) {
			continue
		}

		var query string
		switch l.provider {
		case "mysql":
			query = fmt.Sprintf("TRUNCATE TABLE %s", table)
		case "sqlite", "sqlite3":
			query = fmt.Sprintf("DELETE FROM %s", table)
		default:
			query = fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		}

		if _, err := ex.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statement is one SQL call seen by the recorder.
type statement struct {
	SQL  string
	Args []driver.Value
}

// reply is what the recorder answers for a statement. Queries return
// columns/rows; execs return affected.
type reply struct {
	columns  []string
	rows     [][]driver.Value
	affected int64
	err      error
}

// sqlRecorder is a database/sql connector that records every statement
// and answers with canned replies, so gorm runs its real postgres dialect
// without a server.
type sqlRecorder struct {
	mu      sync.Mutex
	stmts   []statement
	respond func(query string) reply
}

func newRecordedDB(t *testing.T, respond func(query string) reply) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{respond: respond}
	sqlDB := sql.OpenDB(rec)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, rec
}

// Statements returns the recorded SQL, transaction markers excluded.
func (r *sqlRecorder) Statements() []statement {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []statement
	for _, s := range r.stmts {
		if s.SQL != "BEGIN" && s.SQL != "COMMIT" && s.SQL != "ROLLBACK" {
			out = append(out, s)
		}
	}
	return out
}

// Markers returns only BEGIN/COMMIT/ROLLBACK entries.
func (r *sqlRecorder) Markers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.stmts {
		if s.SQL == "BEGIN" || s.SQL == "COMMIT" || s.SQL == "ROLLBACK" {
			out = append(out, s.SQL)
		}
	}
	return out
}

func (r *sqlRecorder) record(query string, args []driver.NamedValue) reply {
	values := make([]driver.Value, len(args))
	for i, a := range args {
		values[i] = a.Value
	}
	r.mu.Lock()
	r.stmts = append(r.stmts, statement{SQL: query, Args: values})
	r.mu.Unlock()

	if r.respond == nil {
		return reply{affected: 1}
	}
	return r.respond(query)
}

func (r *sqlRecorder) Connect(ctx context.Context) (driver.Conn, error) {
	return &recordedConn{rec: r}, nil
}

func (r *sqlRecorder) Driver() driver.Driver { return recordedDriver{} }

type recordedDriver struct{}

func (recordedDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open through sql.OpenDB")
}

type recordedConn struct {
	rec *sqlRecorder
}

func (c *recordedConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements are not recorded")
}

func (c *recordedConn) Close() error { return nil }

func (c *recordedConn) Begin() (driver.Tx, error) {
	c.rec.record("BEGIN", nil)
	return recordedTx{rec: c.rec}, nil
}

func (c *recordedConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	rep := c.rec.record(query, args)
	if rep.err != nil {
		return nil, rep.err
	}
	return driver.RowsAffected(rep.affected), nil
}

func (c *recordedConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	rep := c.rec.record(query, args)
	if rep.err != nil {
		return nil, rep.err
	}
	return &recordedRows{columns: rep.columns, rows: rep.rows}, nil
}

type recordedTx struct {
	rec *sqlRecorder
}

func (tx recordedTx) Commit() error {
	tx.rec.record("COMMIT", nil)
	return nil
}

func (tx recordedTx) Rollback() error {
	tx.rec.record("ROLLBACK", nil)
	return nil
}

type recordedRows struct {
	columns []string
	rows    [][]driver.Value
	next    int
}

func (r *recordedRows) Columns() []string { return r.columns }

func (r *recordedRows) Close() error { return nil }

func (r *recordedRows) Next(dest []driver.Value) error {
	if r.next >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.next])
	r.next++
	return nil
}

func isQuery(query, verb, table string) bool {
	return strings.HasPrefix(query, verb) && strings.Contains(query, `"`+table+`"`)
}

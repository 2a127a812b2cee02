// Package dbquery executes ad-hoc SQL against PostgreSQL and shapes the
// results for tabular display.
package dbquery

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Client wraps a SQL connection pool.
type Client struct {
	db  *sql.DB
	log *logrus.Logger
}

// Table is a fully materialized query result.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Open connects to PostgreSQL. The DSN may carry a base64-encoded
// password; see DecodePassword. Pool sizes default to 50 open and 25
// idle connections, overridable through PG_MAX_OPEN_CONNS and
// PG_MAX_IDLE_CONNS.
func Open(dsn string, log *logrus.Logger) (*Client, error) {
	db, err := sql.Open("postgres", DecodePassword(dsn))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxOpen := envInt("PG_MAX_OPEN_CONNS", 50)
	maxIdle := envInt("PG_MAX_IDLE_CONNS", 25)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)

	if log == nil {
		log = logrus.New()
	}
	return &Client{db: db, log: log}, nil
}

// OpenFromEnv connects using PG_* environment variables.
func OpenFromEnv(log *logrus.Logger) (*Client, error) {
	return Open(BuildDSNFromEnv(), log)
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies the connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// IsSelect reports whether a statement produces a result set rather than
// modifying data.
func IsSelect(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, prefix := range []string{"select", "show", "describe", "with"} {
		if strings.HasPrefix(q, prefix) {
			return true
		}
	}
	return false
}

// RunQuery executes a statement. SELECT-like statements return the values
// of the first column as strings; other statements are executed and return
// nil with the affected row count logged.
func (c *Client) RunQuery(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	if !IsSelect(query) {
		affected, err := c.Exec(ctx, query)
		if err != nil {
			return nil, err
		}
		c.log.WithField("rows_affected", affected).Info("command executed")
		return nil, nil
	}

	c.log.WithField("query", query).Debug("running query")
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		values = append(values, v.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return values, nil
}

// Exec executes a DDL/DML statement and returns the affected row count.
func (c *Client) Exec(ctx context.Context, command string) (int64, error) {
	if strings.TrimSpace(command) == "" {
		return 0, fmt.Errorf("command cannot be empty")
	}

	c.log.WithField("command", command).Debug("executing command")
	result, err := c.db.ExecContext(ctx, command)
	if err != nil {
		return 0, fmt.Errorf("executing command: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return affected, nil
}

// QueryTable executes a SELECT and materializes every column as strings,
// with column names as headers. NULLs become empty strings.
func (c *Client) QueryTable(ctx context.Context, query string) (*Table, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	c.log.WithField("query", query).Debug("running table query")
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	table := &Table{Headers: headers, Rows: [][]string{}}
	for rows.Next() {
		cells := make([]sql.NullString, len(headers))
		dest := make([]any, len(headers))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]string, len(headers))
		for i, cell := range cells {
			row[i] = cell.String
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return table, nil
}

// Headers returns the column names a query would produce, without
// fetching any rows.
func (c *Client) Headers(ctx context.Context, query string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()
	return rows.Columns()
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

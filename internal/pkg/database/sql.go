package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// Supported values of DatabaseConfig.Driver
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite3"
)

// SQLClient represents a SQL database client
type SQLClient struct {
	db *sqlx.DB
}

// DSN builds the data source name for config.Driver
func DSN(config models.DatabaseConfig) (string, error) {
	switch config.Driver {
	case DriverPostgres, DriverPgx:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(config.Username, config.Password),
			Host:     config.Host + ":" + strconv.Itoa(config.Port),
			Path:     "/" + config.Database,
			RawQuery: url.Values{"sslmode": {config.SSLMode}}.Encode(),
		}
		return u.String(), nil
	case DriverSQLite:
		return "file:" + config.Database + "?_foreign_keys=on&_busy_timeout=5000", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

// NewSQLClient opens and verifies a connection pool for config.Driver
func NewSQLClient(config models.DatabaseConfig) (*SQLClient, error) {
	dsn, err := DSN(config)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(config.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", config.Driver, err)
	}

	if config.Driver == DriverSQLite {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	} else {
		if config.MaxConns > 0 {
			db.SetMaxOpenConns(config.MaxConns)
		}
		if config.IdleConns > 0 {
			db.SetMaxIdleConns(config.IdleConns)
		}
		db.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", config.Driver, err)
	}

	return &SQLClient{db: db}, nil
}

// NewSQLClientFromDB wraps an already open handle
func NewSQLClientFromDB(db *sqlx.DB) *SQLClient {
	return &SQLClient{db: db}
}

// GetDB returns the underlying sqlx handle
func (p *SQLClient) GetDB() *sqlx.DB {
	return p.db
}

// Ping verifies the connection is alive
func (p *SQLClient) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database connection pool
func (p *SQLClient) Close() error {
	return p.db.Close()
}

// WithTx runs fn inside a transaction, committing when fn returns nil
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

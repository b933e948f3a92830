package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sethvargo/go-retry"
	_ "modernc.org/sqlite"
)

// Init opens the database with a bounded connect retry. Connection attempts are
// the only operation in the system that is ever automatically retried.
func Init(driver, connection string) (*sqlx.DB, error) {
	// SQLite: create data directory if needed
	if driver == "sqlite" {
		dir := filepath.Dir(connection)
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var db *sqlx.DB
	backoff := retry.WithMaxRetries(4, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var connErr error
		db, connErr = sqlx.ConnectContext(ctx, driver, connection)
		if connErr != nil {
			slog.Warn("database connect failed, retrying", "error", connErr)
			return retry.RetryableError(connErr)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// Small pool with bounded idle lifetime; an exhausted pool surfaces as a
	// capacity error instead of hanging the request.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	slog.Info("database connected", "driver", driver)

	return db, nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// capacitySignatures are driver error fragments that indicate the store is at
// capacity rather than broken.
var capacitySignatures = []string{
	"database is locked",
	"SQLITE_BUSY",
	"too many connections",
	"connection pool exhausted",
	"connection reset",
}

// IsCapacityError reports whether err looks like pool exhaustion or a
// connectivity/capacity failure from the store driver. Callers map this to a
// 503 so clients can retry with backoff.
func IsCapacityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 53xxx: insufficient resources, 57P03: cannot connect now
		switch pgErr.Code {
		case "53300", "53400", "57P03":
			return true
		}
	}
	msg := err.Error()
	for _, sig := range capacitySignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

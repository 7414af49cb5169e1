package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Querier is what repositories run statements against.
// *sqlx.DB, *sqlx.Conn and *sqlx.Tx all satisfy it.
type Querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Store hands out request-scoped connections and transactions from the pool.
type Store struct {
	DB *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{DB: db}
}

// WithConn runs fn on a single pooled connection and always releases it,
// including when fn returns an error or panics.
func (s *Store) WithConn(ctx context.Context, fn func(q Querier) error) (err error) {
	if s == nil || s.DB == nil {
		return fmt.Errorf("database not configured")
	}
	conn, err := s.DB.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release connection: %w", cerr)
		}
	}()
	return fn(conn)
}

// WithTx runs fn inside a transaction. It commits when fn succeeds and
// rolls back on error or panic.
func (s *Store) WithTx(ctx context.Context, fn func(q Querier) error) (err error) {
	if s == nil || s.DB == nil {
		return fmt.Errorf("database not configured")
	}
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit transaction: %w", cerr)
		}
	}()
	err = fn(tx)
	return err
}

// Ping checks the pool is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("database not configured")
	}
	return s.DB.PingContext(ctx)
}

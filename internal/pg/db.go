package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

//go:generate mockgen -source=db.go -destination=mock_db.go -package=pg

// Database is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type txKey struct{}

// DB sends each query to the transaction carried by ctx, or to the pool when there is none.
type DB struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

func (d *DB) conn(ctx context.Context) Database {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok && tx != nil {
		return tx
	}
	return d.pool
}

func (d *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return d.conn(ctx).Exec(ctx, sql, args...)
}

func (d *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return d.conn(ctx).Query(ctx, sql, args...)
}

func (d *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.conn(ctx).QueryRow(ctx, sql, args...)
}

// Detach drops the transaction from ctx so writes made with it survive a rollback.
func Detach(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, nil)
}

func InTx(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return ok && tx != nil
}

// Connect opens a pool and checks it with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type Manager struct {
	pool *pgxpool.Pool
}

func NewTXManager(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

// Begin runs fn inside a read-committed transaction. Nested calls join the outer transaction.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return Classify(err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("can't rollback transaction", zap.Error(rbErr))
		}
		return Classify(err)
	}
	if err = tx.Commit(ctx); err != nil {
		zap.L().Error("can't commit transaction", zap.Error(err))
		return Classify(err)
	}
	return nil
}

// Classify marks lock contention and connection failures as domain.ErrTransient.
func Classify(err error) error {
	if err == nil || errors.Is(err, domain.ErrTransient) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.SerializationFailure,
			pgErr.Code == pgerrcode.DeadlockDetected,
			pgErr.Code == pgerrcode.LockNotAvailable,
			pgerrcode.IsConnectionException(pgErr.Code):
			return fmt.Errorf("%w: %w", domain.ErrTransient, err)
		}
		return err
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}
	return err
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davrux/weave/core/handler"
)

// txKey is the context-bag key the request transaction is attached under.
const txKey = "database.tx"

// Processor returns the request processor that scopes one database
// transaction to each request. The transaction begins before the chain runs
// and is attached to the Context; on success it is committed, on error,
// short-circuit or panic it is rolled back. Either way the session is
// released exactly once on every exit path.
//
// Register it with Application.UseProcessor.
func Processor(pool *pgxpool.Pool) handler.Interceptor {
	return func(ctx *handler.Context, next handler.Next) (any, error) {
		tx, err := pool.Begin(ctx)
		if err != nil {
			return nil, errors.Join(ErrBeginTx, err)
		}
		ctx.Set(txKey, tx)

		finished := false
		defer func() {
			// Runs on panic and on early return; rollback after commit
			// would double-release the session, hence the flag.
			if !finished {
				_ = tx.Rollback(ctx)
			}
		}()

		result, err := next()
		if err != nil {
			_ = tx.Rollback(ctx)
			finished = true
			return nil, err
		}

		if err := tx.Commit(ctx); err != nil {
			finished = true
			return nil, errors.Join(ErrCommitTx, err)
		}
		finished = true
		return result, nil
	}
}

// Tx returns the transaction scoped to the request. It panics when the
// Processor is not registered, which is a wiring bug rather than a runtime
// condition.
func Tx(ctx *handler.Context) pgx.Tx {
	return ctx.MustGet(txKey).(pgx.Tx)
}

// WithTx executes fn within a standalone transaction, outside the request
// processor. Rollback on error or panic, commit on success.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errors.Join(ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

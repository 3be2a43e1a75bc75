package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrux/weave/core/handler"
	"github.com/davrux/weave/core/storage"
)

// fakeTx records executed statements; everything else is inert.
type fakeTx struct {
	sqls []string
	args [][]any
}

func (f *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return f, nil }
func (f *fakeTx) Commit(ctx context.Context) error          { return nil }
func (f *fakeTx) Rollback(ctx context.Context) error        { return nil }
func (f *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (f *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (f *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (f *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (f *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	f.args = append(f.args, arguments)
	return pgconn.CommandTag{}, nil
}
func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (f *fakeTx) Conn() *pgx.Conn                                               { return nil }

func txContext(tx pgx.Tx) *handler.Context {
	ctx := handler.NewContext(context.Background(), "POST", "/test", nil, nil, nil, nil)
	ctx.Set(txKey, tx)
	return ctx
}

func TestInsert(t *testing.T) {
	t.Parallel()

	t.Run("columns in sorted order", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		ctx := txContext(tx)

		err := Insert(ctx, "users", storage.Storage{"name": "alice", "id": int64(1), "age": 30})
		require.NoError(t, err)

		require.Len(t, tx.sqls, 1)
		assert.Equal(t, "INSERT INTO users (age, id, name) VALUES ($1, $2, $3)", tx.sqls[0])
		assert.Equal(t, []any{30, int64(1), "alice"}, tx.args[0])
	})

	t.Run("empty storage is rejected", func(t *testing.T) {
		t.Parallel()

		err := Insert(txContext(&fakeTx{}), "users", storage.Storage{})
		assert.ErrorIs(t, err, ErrEmptyStorage)
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("set clause continues placeholder numbering in where", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		ctx := txContext(tx)

		err := Update(ctx, "users", storage.Storage{"name": "bob"}, "id = $2", int64(7))
		require.NoError(t, err)

		require.Len(t, tx.sqls, 1)
		assert.Equal(t, "UPDATE users SET name = $1 WHERE id = $2", tx.sqls[0])
		assert.Equal(t, []any{"bob", int64(7)}, tx.args[0])
	})

	t.Run("empty storage is rejected", func(t *testing.T) {
		t.Parallel()

		err := Update(txContext(&fakeTx{}), "users", storage.Storage{}, "id = $1", 1)
		assert.ErrorIs(t, err, ErrEmptyStorage)
	})
}

func TestExec(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	ctx := txContext(tx)

	require.NoError(t, Exec(ctx, "DELETE FROM users WHERE id = $1", int64(3)))
	require.Len(t, tx.sqls, 1)
	assert.Equal(t, "DELETE FROM users WHERE id = $1", tx.sqls[0])
	assert.Equal(t, []any{int64(3)}, tx.args[0])
}

func TestTx(t *testing.T) {
	t.Parallel()

	t.Run("returns the scoped transaction", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		assert.Equal(t, pgx.Tx(tx), Tx(txContext(tx)))
	})

	t.Run("panics without the processor", func(t *testing.T) {
		t.Parallel()

		ctx := handler.NewContext(context.Background(), "GET", "/", nil, nil, nil, nil)
		assert.Panics(t, func() { Tx(ctx) })
	})
}

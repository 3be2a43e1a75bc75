package database

import (
	"fmt"
	"strings"

	"github.com/davrux/weave/core/handler"
	"github.com/davrux/weave/core/storage"
)

// Thin write-side conveniences over the request transaction. Columns come
// from a storage.Storage in sorted key order, so generated SQL is
// deterministic.

// Insert inserts one row built from s into table, using the transaction
// scoped to the request.
func Insert(ctx *handler.Context, table string, s storage.Storage) error {
	if len(s) == 0 {
		return ErrEmptyStorage
	}

	keys := s.Keys()
	placeholders := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = s[k]
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(keys, ", "), strings.Join(placeholders, ", "))

	_, err := Tx(ctx).Exec(ctx, sql, args...)
	return err
}

// Update updates the rows of table matched by the where clause with the
// values in s. The where clause uses positional placeholders continuing
// after the SET columns, e.g.:
//
//	database.Update(ctx, "users", storage.Storage{"name": "bob"}, "id = $2", 7)
func Update(ctx *handler.Context, table string, s storage.Storage, where string, whereArgs ...any) error {
	if len(s) == 0 {
		return ErrEmptyStorage
	}

	keys := s.Keys()
	sets := make([]string, len(keys))
	args := make([]any, 0, len(keys)+len(whereArgs))
	for i, k := range keys {
		sets[i] = fmt.Sprintf("%s = $%d", k, i+1)
		args = append(args, s[k])
	}
	args = append(args, whereArgs...)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(sets, ", "), where)

	_, err := Tx(ctx).Exec(ctx, sql, args...)
	return err
}

// Exec runs an arbitrary statement on the request transaction.
func Exec(ctx *handler.Context, sql string, args ...any) error {
	_, err := Tx(ctx).Exec(ctx, sql, args...)
	return err
}

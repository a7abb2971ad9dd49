package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/lotto-api/internal/database"
)

// statements are built once per table at construction time.
type statements struct {
	list   string
	get    string
	insert string
	update string
	delete string
}

// table describes one store table of rows of type T.
//
// columns lists every selected column with the id first; fields must
// return pointers to the matching struct fields in the same order.
type table[T any] struct {
	name          string
	idColumn      string
	columns       []string
	insertColumns []string
	updateColumns []string
	fields        func(*T) []any

	stmts statements
}

func newTable[T any](name, idColumn string, columns, insertColumns, updateColumns []string, fields func(*T) []any) *table[T] {
	t := &table[T]{
		name:          name,
		idColumn:      idColumn,
		columns:       columns,
		insertColumns: insertColumns,
		updateColumns: updateColumns,
		fields:        fields,
	}

	selectCols := strings.Join(columns, ", ")

	assignments := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	t.stmts = statements{
		list: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", selectCols, name, idColumn),
		get:  fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectCols, name, idColumn),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			name, strings.Join(insertColumns, ", "), placeholders(len(insertColumns)), idColumn),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
			name, strings.Join(assignments, ", "), idColumn, len(updateColumns)+1),
		delete: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", name, idColumn),
	}

	return t
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ph, ", ")
}

// list returns every row ordered by id. An empty table yields an empty,
// non-nil slice.
func (t *table[T]) list(ctx context.Context, db database.Gateway) ([]T, error) {
	items := make([]T, 0)

	err := db.Query(ctx, t.stmts.list, nil, func(row database.Scanner) error {
		var item T
		if err := row.Scan(t.fields(&item)...); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}

	return items, nil
}

func (t *table[T]) get(ctx context.Context, db database.Gateway, id int64) (T, bool, error) {
	var item T

	found, err := db.QueryOne(ctx, t.stmts.get, []any{id}, t.fields(&item)...)
	if err != nil {
		return item, false, fmt.Errorf("get %s %d: %w", t.name, id, err)
	}

	return item, found, nil
}

// insert expects args in insertColumns order.
func (t *table[T]) insert(ctx context.Context, db database.Gateway, args ...any) (database.WriteResult, error) {
	if len(args) != len(t.insertColumns) {
		return database.WriteResult{}, fmt.Errorf("insert %s: got %d values for %d columns", t.name, len(args), len(t.insertColumns))
	}

	res, err := db.Insert(ctx, t.stmts.insert, args...)
	if err != nil {
		return res, fmt.Errorf("insert %s: %w", t.name, err)
	}
	return res, nil
}

// update expects args in updateColumns order; id is bound last.
func (t *table[T]) update(ctx context.Context, db database.Gateway, id int64, args ...any) (database.WriteResult, error) {
	if len(args) != len(t.updateColumns) {
		return database.WriteResult{}, fmt.Errorf("update %s: got %d values for %d columns", t.name, len(args), len(t.updateColumns))
	}

	res, err := db.Exec(ctx, t.stmts.update, append(args, id)...)
	if err != nil {
		return res, fmt.Errorf("update %s %d: %w", t.name, id, err)
	}
	return res, nil
}

func (t *table[T]) delete(ctx context.Context, db database.Gateway, id int64) (database.WriteResult, error) {
	res, err := db.Exec(ctx, t.stmts.delete, id)
	if err != nil {
		return res, fmt.Errorf("delete %s %d: %w", t.name, id, err)
	}
	return res, nil
}

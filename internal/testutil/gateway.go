package testutil

import (
	"context"
	"fmt"
	"reflect"

	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/stretchr/testify/mock"
)

// MockGateway mocks database.Gateway.
//
// Query expects its first return value to be the rows ([][]any) fed to the
// callback; QueryOne expects the found flag followed by the row values.
type MockGateway struct {
	mock.Mock
}

var _ database.Gateway = (*MockGateway)(nil)

func (m *MockGateway) Query(ctx context.Context, query string, args []any, each func(database.Scanner) error) error {
	ret := m.Called(ctx, query, args)
	if err := ret.Error(1); err != nil {
		return err
	}

	rows, _ := ret.Get(0).([][]any)
	for _, row := range rows {
		if err := each(Row(row)); err != nil {
			return &database.StorageError{Op: "scan", Err: err}
		}
	}
	return nil
}

func (m *MockGateway) QueryOne(ctx context.Context, query string, args []any, dest ...any) (bool, error) {
	ret := m.Called(ctx, query, args)
	if err := ret.Error(2); err != nil {
		return false, err
	}
	if !ret.Bool(0) {
		return false, nil
	}

	row, _ := ret.Get(1).([]any)
	if err := Row(row).Scan(dest...); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MockGateway) Insert(ctx context.Context, query string, args ...any) (database.WriteResult, error) {
	ret := m.Called(ctx, query, args)
	return ret.Get(0).(database.WriteResult), ret.Error(1)
}

func (m *MockGateway) Exec(ctx context.Context, query string, args ...any) (database.WriteResult, error) {
	ret := m.Called(ctx, query, args)
	return ret.Get(0).(database.WriteResult), ret.Error(1)
}

func (m *MockGateway) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGateway) Close() error {
	return m.Called().Error(0)
}

// Row is an in-memory database.Scanner over fixed column values.
type Row []any

func (r Row) Scan(dest ...any) error {
	if len(dest) != len(r) {
		return fmt.Errorf("expected %d destination arguments in Scan, not %d", len(r), len(dest))
	}

	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if r[i] == nil {
			target.SetZero()
			continue
		}

		value := reflect.ValueOf(r[i])
		if !value.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("column %d: cannot scan %T into %s", i, r[i], target.Type())
		}
		target.Set(value)
	}
	return nil
}

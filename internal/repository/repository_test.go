package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/deppfellow/lotto-api/internal/model"
	"github.com/deppfellow/lotto-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserStatements(t *testing.T) {
	stmts := NewUserRepository(nil).table.stmts

	assert.Equal(t, "SELECT user_id, username, password, email, phone FROM users ORDER BY user_id", stmts.list)
	assert.Equal(t, "SELECT user_id, username, password, email, phone FROM users WHERE user_id = $1", stmts.get)
	assert.Equal(t, "INSERT INTO users (username, password, email, phone) VALUES ($1, $2, $3, $4) RETURNING user_id", stmts.insert)
	assert.Equal(t, "UPDATE users SET username = $1, password = $2, email = $3, phone = $4 WHERE user_id = $5", stmts.update)
	assert.Equal(t, "DELETE FROM users WHERE user_id = $1", stmts.delete)
}

func TestLottoDrawStatements(t *testing.T) {
	stmts := NewLottoDrawRepository(nil).table.stmts

	assert.Equal(t, "SELECT draw_id, draw_date, winning_number, is_drawn FROM lotto_draws ORDER BY draw_id", stmts.list)
	assert.Equal(t, "SELECT draw_id, draw_date, winning_number, is_drawn FROM lotto_draws WHERE draw_id = $1", stmts.get)
	assert.Equal(t, "INSERT INTO lotto_draws (draw_date) VALUES ($1) RETURNING draw_id", stmts.insert)
	assert.Equal(t, "UPDATE lotto_draws SET draw_date = $1, winning_number = $2, is_drawn = $3 WHERE draw_id = $4", stmts.update)
	assert.Equal(t, "DELETE FROM lotto_draws WHERE draw_id = $1", stmts.delete)
}

func TestUserRepository_BindsArguments(t *testing.T) {
	ctx := context.Background()
	gw := &testutil.MockGateway{}
	repo := NewUserRepository(gw)
	in := model.UserInput{Username: "a", Password: "p", Email: "e", Phone: "1"}

	gw.On("Insert", mock.Anything, repo.table.stmts.insert, []any{"a", "p", "e", "1"}).
		Return(database.WriteResult{RowsAffected: 1, InsertedID: 5}, nil)
	gw.On("Exec", mock.Anything, repo.table.stmts.update, []any{"a", "p", "e", "1", int64(5)}).
		Return(database.WriteResult{RowsAffected: 1}, nil)
	gw.On("Exec", mock.Anything, repo.table.stmts.delete, []any{int64(5)}).
		Return(database.WriteResult{RowsAffected: 1}, nil)

	res, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.InsertedID)

	_, err = repo.Update(ctx, 5, in)
	require.NoError(t, err)

	_, err = repo.Delete(ctx, 5)
	require.NoError(t, err)

	gw.AssertExpectations(t)
}

func TestUserRepository_ListEmptyIsNonNil(t *testing.T) {
	gw := &testutil.MockGateway{}
	repo := NewUserRepository(gw)

	gw.On("Query", mock.Anything, repo.table.stmts.list, []any(nil)).Return(nil, nil)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_ListScansRows(t *testing.T) {
	gw := &testutil.MockGateway{}
	repo := NewUserRepository(gw)

	gw.On("Query", mock.Anything, repo.table.stmts.list, []any(nil)).Return([][]any{
		{int64(1), "a", "p", "e", "1"},
		{int64(2), "b", "q", "f", "2"},
	}, nil)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.User{
		{ID: 1, Username: "a", Password: "p", Email: "e", Phone: "1"},
		{ID: 2, Username: "b", Password: "q", Email: "f", Phone: "2"},
	}, users)
}

func TestLottoDrawRepository_GetNullableColumns(t *testing.T) {
	gw := &testutil.MockGateway{}
	repo := NewLottoDrawRepository(gw)

	gw.On("QueryOne", mock.Anything, repo.table.stmts.get, []any{int64(3)}).
		Return(true, []any{int64(3), "2024-01-01", nil, false}, nil)

	draw, found, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.LottoDraw{ID: 3, DrawDate: "2024-01-01"}, draw)
}

func TestLottoDrawRepository_UpdateBindsNull(t *testing.T) {
	gw := &testutil.MockGateway{}
	repo := NewLottoDrawRepository(gw)

	gw.On("Exec", mock.Anything, repo.table.stmts.update, []any{"2024-01-01", (*string)(nil), true, int64(3)}).
		Return(database.WriteResult{RowsAffected: 0}, nil)

	res, err := repo.Update(context.Background(), 3, LottoDrawUpdate{DrawDate: "2024-01-01", IsDrawn: true})
	require.NoError(t, err)
	assert.Zero(t, res.RowsAffected)
	gw.AssertExpectations(t)
}

func TestRepository_WrapsStorageError(t *testing.T) {
	gw := &testutil.MockGateway{}
	repo := NewUserRepository(gw)
	native := &database.StorageError{Op: "query", Err: errors.New("no such table: users")}

	gw.On("Query", mock.Anything, repo.table.stmts.list, []any(nil)).Return(nil, native)

	_, err := repo.List(context.Background())
	require.Error(t, err)

	var storageErr *database.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "no such table: users", storageErr.Error())
}

func TestTable_RejectsWrongArity(t *testing.T) {
	repo := NewLottoDrawRepository(&testutil.MockGateway{})

	_, err := repo.table.insert(context.Background(), repo.db, "2024-01-01", "extra")
	assert.Error(t, err)

	_, err = repo.table.update(context.Background(), repo.db, 1, "2024-01-01")
	assert.Error(t, err)
}

func TestRepositories_SQLite(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewSQLiteServer(t)
	repos := NewRepositories(s)

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	res, err := repos.Users.Create(ctx, model.UserInput{Username: "a", Password: "p", Email: "e", Phone: "1"})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.InsertedID)

	user, found, err := repos.Users.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.User{ID: 1, Username: "a", Password: "p", Email: "e", Phone: "1"}, user)

	draw, err := repos.LottoDraws.Create(ctx, "2024-01-01")
	require.NoError(t, err)

	winning := "123456"
	upd, err := repos.LottoDraws.Update(ctx, draw.InsertedID, LottoDrawUpdate{DrawDate: "2024-01-02", WinningNumber: &winning, IsDrawn: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.RowsAffected)

	got, found, err := repos.LottoDraws.GetByID(ctx, draw.InsertedID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2024-01-02", got.DrawDate)
	require.NotNil(t, got.WinningNumber)
	assert.Equal(t, "123456", *got.WinningNumber)
	assert.True(t, got.IsDrawn)

	_, found, err = repos.LottoDraws.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

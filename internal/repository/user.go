package repository

import (
	"context"

	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/deppfellow/lotto-api/internal/model"
)

type UserRepository struct {
	db    database.Gateway
	table *table[model.User]
}

func NewUserRepository(db database.Gateway) *UserRepository {
	return &UserRepository{
		db: db,
		table: newTable("users", "user_id",
			[]string{"user_id", "username", "password", "email", "phone"},
			[]string{"username", "password", "email", "phone"},
			[]string{"username", "password", "email", "phone"},
			func(u *model.User) []any {
				return []any{&u.ID, &u.Username, &u.Password, &u.Email, &u.Phone}
			},
		),
	}
}

func userArgs(in model.UserInput) []any {
	return []any{in.Username, in.Password, in.Email, in.Phone}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return r.table.list(ctx, r.db)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, bool, error) {
	return r.table.get(ctx, r.db, id)
}

func (r *UserRepository) Create(ctx context.Context, in model.UserInput) (database.WriteResult, error) {
	return r.table.insert(ctx, r.db, userArgs(in)...)
}

// Update overwrites all four user fields of row id.
func (r *UserRepository) Update(ctx context.Context, id int64, in model.UserInput) (database.WriteResult, error) {
	return r.table.update(ctx, r.db, id, userArgs(in)...)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (database.WriteResult, error) {
	return r.table.delete(ctx, r.db, id)
}

package repository

import (
	"context"

	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/deppfellow/lotto-api/internal/model"
)

type LottoDrawRepository struct {
	db    database.Gateway
	table *table[model.LottoDraw]
}

// LottoDrawUpdate carries every mutable draw column.
type LottoDrawUpdate struct {
	DrawDate      string
	WinningNumber *string
	IsDrawn       bool
}

func NewLottoDrawRepository(db database.Gateway) *LottoDrawRepository {
	return &LottoDrawRepository{
		db: db,
		table: newTable("lotto_draws", "draw_id",
			[]string{"draw_id", "draw_date", "winning_number", "is_drawn"},
			[]string{"draw_date"},
			[]string{"draw_date", "winning_number", "is_drawn"},
			func(d *model.LottoDraw) []any {
				return []any{&d.ID, &d.DrawDate, &d.WinningNumber, &d.IsDrawn}
			},
		),
	}
}

func (r *LottoDrawRepository) List(ctx context.Context) ([]model.LottoDraw, error) {
	return r.table.list(ctx, r.db)
}

func (r *LottoDrawRepository) GetByID(ctx context.Context, id int64) (model.LottoDraw, bool, error) {
	return r.table.get(ctx, r.db, id)
}

// Create schedules a draw. winning_number stays NULL and is_drawn false.
func (r *LottoDrawRepository) Create(ctx context.Context, drawDate string) (database.WriteResult, error) {
	return r.table.insert(ctx, r.db, drawDate)
}

func (r *LottoDrawRepository) Update(ctx context.Context, id int64, upd LottoDrawUpdate) (database.WriteResult, error) {
	return r.table.update(ctx, r.db, id, upd.DrawDate, upd.WinningNumber, upd.IsDrawn)
}

func (r *LottoDrawRepository) Delete(ctx context.Context, id int64) (database.WriteResult, error) {
	return r.table.delete(ctx, r.db, id)
}

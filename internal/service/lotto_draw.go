package service

import (
	"context"

	"github.com/deppfellow/lotto-api/internal/model"
	"github.com/deppfellow/lotto-api/internal/repository"
	"github.com/deppfellow/lotto-api/internal/server"
)

type LottoDrawService struct {
	server *server.Server
	repo   *repository.LottoDrawRepository
}

func NewLottoDrawService(s *server.Server, repo *repository.LottoDrawRepository) *LottoDrawService {
	return &LottoDrawService{
		server: s,
		repo:   repo,
	}
}

func (s *LottoDrawService) List(ctx context.Context) Outcome {
	draws, err := s.repo.List(ctx)
	if err != nil {
		return Failed(err)
	}
	return Found(draws)
}

func (s *LottoDrawService) Get(ctx context.Context, id int64) Outcome {
	draw, found, err := s.repo.GetByID(ctx, id)
	switch {
	case err != nil:
		return Failed(err)
	case !found:
		return NotFound()
	default:
		return Found(draw)
	}
}

func (s *LottoDrawService) Create(ctx context.Context, req *model.CreateLottoDrawRequest) Outcome {
	res, err := s.repo.Create(ctx, req.DrawDate)
	if err != nil {
		return Failed(err)
	}
	return Found(Created{ID: res.InsertedID})
}

// Update overwrites date, winning number and drawn flag together. Setting a
// winning number on an undrawn draw, or marking a draw drawn twice, is
// allowed.
func (s *LottoDrawService) Update(ctx context.Context, req *model.UpdateLottoDrawRequest) Outcome {
	res, err := s.repo.Update(ctx, req.ID, repository.LottoDrawUpdate{
		DrawDate:      req.DrawDate,
		WinningNumber: req.WinningNumber.Ptr(),
		IsDrawn:       req.IsDrawn != nil && *req.IsDrawn,
	})
	return s.classifyWrite(ctx, "update", req.ID, err, res.RowsAffected)
}

func (s *LottoDrawService) Delete(ctx context.Context, id int64) Outcome {
	res, err := s.repo.Delete(ctx, id)
	return s.classifyWrite(ctx, "delete", id, err, res.RowsAffected)
}

func (s *LottoDrawService) classifyWrite(ctx context.Context, op string, id int64, err error, rowsAffected int64) Outcome {
	outcome := Classify(err, nil, rowsAffected)
	if outcome.Kind == KindNotFound {
		requestLogger(ctx, s.server.Logger).Debug().Str("op", op).Int64("draw_id", id).Msg("no rows affected")
	}
	return outcome
}

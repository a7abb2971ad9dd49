package service

import (
	"context"

	"github.com/deppfellow/lotto-api/internal/model"
	"github.com/deppfellow/lotto-api/internal/repository"
	"github.com/deppfellow/lotto-api/internal/server"
)

type UserService struct {
	server *server.Server
	repo   *repository.UserRepository
}

func NewUserService(s *server.Server, repo *repository.UserRepository) *UserService {
	return &UserService{
		server: s,
		repo:   repo,
	}
}

// List always succeeds with a (possibly empty) slice unless the store fails.
func (s *UserService) List(ctx context.Context) Outcome {
	users, err := s.repo.List(ctx)
	if err != nil {
		return Failed(err)
	}
	return Found(users)
}

func (s *UserService) Get(ctx context.Context, id int64) Outcome {
	user, found, err := s.repo.GetByID(ctx, id)
	switch {
	case err != nil:
		return Failed(err)
	case !found:
		return NotFound()
	default:
		return Found(user)
	}
}

// Create never reports NotFound: the store either assigns an id or fails.
func (s *UserService) Create(ctx context.Context, in model.UserInput) Outcome {
	res, err := s.repo.Create(ctx, in)
	if err != nil {
		return Failed(err)
	}
	return Found(Created{ID: res.InsertedID})
}

func (s *UserService) Update(ctx context.Context, id int64, in model.UserInput) Outcome {
	res, err := s.repo.Update(ctx, id, in)
	return s.classifyWrite(ctx, "update", id, err, res.RowsAffected)
}

func (s *UserService) Delete(ctx context.Context, id int64) Outcome {
	res, err := s.repo.Delete(ctx, id)
	return s.classifyWrite(ctx, "delete", id, err, res.RowsAffected)
}

func (s *UserService) classifyWrite(ctx context.Context, op string, id int64, err error, rowsAffected int64) Outcome {
	outcome := Classify(err, nil, rowsAffected)
	if outcome.Kind == KindNotFound {
		requestLogger(ctx, s.server.Logger).Debug().Str("op", op).Int64("user_id", id).Msg("no rows affected")
	}
	return outcome
}

package service

import (
	"github.com/deppfellow/lotto-api/internal/repository"
	"github.com/deppfellow/lotto-api/internal/server"
)

type Services struct {
	Users      *UserService
	LottoDraws *LottoDrawService
}

func NewService(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users:      NewUserService(s, repos.Users),
		LottoDraws: NewLottoDrawService(s, repos.LottoDraws),
	}
}

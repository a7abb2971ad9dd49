package handler

import (
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/deppfellow/lotto-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Users      *UserHandler
	LottoDraws *LottoDrawHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Users:      NewUserHandler(s, services.Users),
		LottoDraws: NewLottoDrawHandler(s, services.LottoDraws),
	}
}

package handler

import (
	"github.com/deppfellow/lotto-api/internal/model"
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/deppfellow/lotto-api/internal/service"
	"github.com/labstack/echo/v4"
)

type LottoDrawHandler struct {
	Handler
	draws *service.LottoDrawService
}

func NewLottoDrawHandler(s *server.Server, draws *service.LottoDrawService) *LottoDrawHandler {
	return &LottoDrawHandler{
		Handler: NewHandler(s),
		draws:   draws,
	}
}

func (h *LottoDrawHandler) ListLottoDraws(c echo.Context, _ *model.ListRequest) (any, error) {
	return lottoDrawMessages.render(h.draws.List(c.Request().Context()), "")
}

func (h *LottoDrawHandler) GetLottoDraw(c echo.Context, req *model.LottoDrawIDRequest) (any, error) {
	return lottoDrawMessages.render(h.draws.Get(c.Request().Context(), req.ID), "")
}

func (h *LottoDrawHandler) CreateLottoDraw(c echo.Context, req *model.CreateLottoDrawRequest) (any, error) {
	return lottoDrawMessages.render(h.draws.Create(c.Request().Context(), req), "")
}

// UpdateLottoDraw overwrites date, winning number and drawn flag. Setting a
// winning number before is_drawn, or marking a draw drawn twice, is allowed.
func (h *LottoDrawHandler) UpdateLottoDraw(c echo.Context, req *model.UpdateLottoDrawRequest) (any, error) {
	outcome := h.draws.Update(c.Request().Context(), req)
	return lottoDrawMessages.render(outcome, lottoDrawMessages.updated)
}

func (h *LottoDrawHandler) DeleteLottoDraw(c echo.Context, req *model.LottoDrawIDRequest) (any, error) {
	return lottoDrawMessages.render(h.draws.Delete(c.Request().Context(), req.ID), lottoDrawMessages.deleted)
}

package handler

import (
	"github.com/deppfellow/lotto-api/internal/model"
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/deppfellow/lotto-api/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.ListRequest) (any, error) {
	return userMessages.render(h.users.List(c.Request().Context()), "")
}

func (h *UserHandler) GetUser(c echo.Context, req *model.UserIDRequest) (any, error) {
	return userMessages.render(h.users.Get(c.Request().Context(), req.ID), "")
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.CreateUserRequest) (any, error) {
	return userMessages.render(h.users.Create(c.Request().Context(), req.UserInput), "")
}

func (h *UserHandler) UpdateUser(c echo.Context, req *model.UpdateUserRequest) (any, error) {
	outcome := h.users.Update(c.Request().Context(), req.ID, req.UserInput)
	return userMessages.render(outcome, userMessages.updated)
}

func (h *UserHandler) DeleteUser(c echo.Context, req *model.UserIDRequest) (any, error) {
	return userMessages.render(h.users.Delete(c.Request().Context(), req.ID), userMessages.deleted)
}

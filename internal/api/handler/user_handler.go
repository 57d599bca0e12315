package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/taskboard/internal/core/ports"
)

// UserHandler exposes profile listing and role changes. Profiles are owned by
// the identity subsystem; everything else references them by id.
type UserHandler struct {
	profiles ports.ProfileRepository
}

func NewUserHandler(profiles ports.ProfileRepository) *UserHandler {
	return &UserHandler{profiles: profiles}
}

type userListResponse struct {
	Data []userResponse `json:"data"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager member"`
}

// List handles GET /v1/users.
//
// @Summary      List user profiles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.profiles.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = *toUserResponse(&users[i])
	}
	return c.JSON(http.StatusOK, userListResponse{Data: out})
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.profiles.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateRole handles PUT /v1/users/:id/role. Admin only.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.profiles.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

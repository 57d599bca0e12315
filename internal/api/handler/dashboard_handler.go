package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/taskboard/internal/core/ports"
)

// DashboardHandler serves the derived views for the acting user.
type DashboardHandler struct {
	dashboards ports.DashboardService
	team       ports.TeamService
}

func NewDashboardHandler(dashboards ports.DashboardService, team ports.TeamService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, team: team}
}

type byStatusResponse struct {
	Counts map[string]int `json:"counts"`
}

type upcomingResponse struct {
	Overdue  []taskResponse `json:"overdue"`
	Today    []taskResponse `json:"today"`
	ThisWeek []taskResponse `json:"this_week"`
}

type teamResponse struct {
	Members []ports.TeamMemberSummary `json:"members"`
}

// Summary handles GET /v1/dashboard/summary.
//
// @Summary      Dashboard headline counts for the acting user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Router       /v1/dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboards.Summary(c.Request().Context(), userID, time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// ByStatus handles GET /v1/dashboard/by-status.
//
// @Summary      Per-status task counts for the acting user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  byStatusResponse
// @Router       /v1/dashboard/by-status [get]
func (h *DashboardHandler) ByStatus(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	counts, err := h.dashboards.ByStatus(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make(map[string]int, len(counts))
	for status, n := range counts {
		out[string(status)] = n
	}
	return c.JSON(http.StatusOK, byStatusResponse{Counts: out})
}

// Upcoming handles GET /v1/dashboard/upcoming — overdue/today/this-week buckets.
//
// @Summary      Due-date buckets for the acting user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  upcomingResponse
// @Router       /v1/dashboard/upcoming [get]
func (h *DashboardHandler) Upcoming(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	buckets, err := h.dashboards.Upcoming(c.Request().Context(), userID, time.Now().UTC())
	if err != nil {
		return err
	}

	resp := upcomingResponse{
		Overdue:  toTaskListResponse(buckets.Overdue).Data,
		Today:    toTaskListResponse(buckets.Today).Data,
		ThisWeek: toTaskListResponse(buckets.ThisWeek).Data,
	}
	return c.JSON(http.StatusOK, resp)
}

// Team handles GET /v1/team — per-member completion overview.
//
// @Summary      Team completion overview
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  teamResponse
// @Router       /v1/team [get]
func (h *DashboardHandler) Team(c echo.Context) error {
	members, err := h.team.Overview(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teamResponse{Members: members})
}

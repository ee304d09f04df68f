package handler

import (
	"net/http"

	"conesites/cmd/internal/contract"

	"github.com/labstack/echo/v4"
)

type DashboardService interface {
	GetDashboard() *contract.DashboardResponse
}

type DefaultDashboardRoute struct {
	DashboardService DashboardService
}

func NewDashboardDefault(dashboardService DashboardService) *DefaultDashboardRoute {
	return &DefaultDashboardRoute{DashboardService: dashboardService}
}

func (h *DefaultDashboardRoute) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.DashboardService.GetDashboard())
}

package http

import (
	"net/http"

	"github.com/tracklite/attendance-backend-go/internal/domain/dashboard"
	"github.com/tracklite/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AdminStats(w http.ResponseWriter, r *http.Request)
	ManagerStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// AdminStats implements DashboardHandler.
func (h *dashboardHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetAdminStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ManagerStats implements DashboardHandler.
func (h *dashboardHandlerImpl) ManagerStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetManagerStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

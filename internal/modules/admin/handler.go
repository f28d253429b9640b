package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/middleware"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/admin", middleware.AdminOnly())
	grp.GET("/stats/technicians", h.TechnicianStats)
	grp.GET("/stats/statuses", h.StatusCounts)
	grp.GET("/devices/recent", h.RecentDevices)
}

func (h *Handler) TechnicianStats(c *gin.Context) {
	stats, err := h.service.TechnicianStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) StatusCounts(c *gin.Context) {
	counts, err := h.service.StatusCounts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, counts)
}

func (h *Handler) RecentDevices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	devices, err := h.service.RecentDevices(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, devices)
}

package notification

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/notifications", h.List)
}

func (h *Handler) List(c *gin.Context) {
	deadlines, err := h.service.Deadlines(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, deadlines)
}

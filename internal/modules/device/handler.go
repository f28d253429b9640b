package device

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/pkg/response"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the device endpoints on an authenticated group.
// The service re-checks roles on every write; no route-level gate can be
// trusted on its own.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/devices", h.List)
	r.GET("/devices/:id", h.GetByID)
	r.GET("/devices/status/:status", h.ListByStatus)
	r.GET("/devices/technician/:technicianId", h.ListByTechnician)
	r.GET("/devices/order/:orderNumber", h.FindByOrderNumber)
	r.GET("/devices/phone/:phoneNumber", h.FindByPhoneNumber)

	r.POST("/devices", h.Create)
	r.PUT("/devices/:id", h.Update)
	r.DELETE("/devices/:id", h.Delete)

	r.POST("/devices/:id/reports", h.AddReport)
	r.POST("/devices/:id/transfer", h.Transfer)
	r.POST("/devices/:id/receive", h.Receive)
	r.POST("/devices/:id/transfer-back", h.TransferBack)
	r.POST("/devices/:id/approval", h.RouteToApproval)
	r.POST("/devices/:id/approve", h.Approve)
	r.POST("/devices/:id/complete", h.Complete)
}

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetString("user_id"),
		Name: c.GetString("user_name"),
		Role: domain.Role(c.GetString("role")),
	}
}

func (h *Handler) List(c *gin.Context) {
	devices, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, devices)
}

func (h *Handler) GetByID(c *gin.Context) {
	d, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) ListByStatus(c *gin.Context) {
	devices, err := h.service.ListByStatus(c.Request.Context(), domain.DeviceStatus(c.Param("status")))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, devices)
}

func (h *Handler) ListByTechnician(c *gin.Context) {
	devices, err := h.service.ListByTechnician(c.Request.Context(), c.Param("technicianId"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, devices)
}

func (h *Handler) FindByOrderNumber(c *gin.Context) {
	d, err := h.service.FindByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) FindByPhoneNumber(c *gin.Context) {
	d, err := h.service.FindByPhoneNumber(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	d, err := h.service.Update(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Device deleted"})
}

func (h *Handler) AddReport(c *gin.Context) {
	var req AddReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.AddReport(c.Request.Context(), actorFrom(c), c.Param("id"), req.Content)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.Transfer(c.Request.Context(), actorFrom(c), c.Param("id"), req.TechnicianID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Receive(c *gin.Context) {
	d, err := h.service.Receive(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) TransferBack(c *gin.Context) {
	var req TransferBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.TransferBack(c.Request.Context(), actorFrom(c), c.Param("id"), req.Report)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) RouteToApproval(c *gin.Context) {
	var req RouteToApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.RouteToApproval(c.Request.Context(), actorFrom(c), c.Param("id"), req.Reason)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	d, err := h.service.Approve(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Complete(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	d, err := h.service.Complete(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Device not found")
	case errors.Is(err, ErrTechnicianNotFound):
		response.Error(c, http.StatusNotFound, "TECHNICIAN_NOT_FOUND", "Technician not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Action not legal from the device's current state")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid or missing fields")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

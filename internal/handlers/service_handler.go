package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/httperr"
	"github.com/lavajato/carwash-scheduler/internal/httpresp"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name          string   `json:"name" binding:"required"`
	BasePrice     *float64 `json:"base_price" binding:"required,min=0"`
	SizeSurcharge *float64 `json:"size_surcharge" binding:"required,min=0"`
}

type UpdateServiceRequest struct {
	Name          *string  `json:"name"`
	BasePrice     *float64 `json:"base_price" binding:"omitempty,min=0"`
	SizeSurcharge *float64 `json:"size_surcharge" binding:"omitempty,min=0"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		Name:          req.Name,
		BasePrice:     *req.BasePrice,
		SizeSurcharge: *req.SizeSurcharge,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("created_at DESC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, ok := h.findService(c)
	if !ok {
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	svc, ok := h.findService(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.SizeSurcharge != nil {
		svc.SizeSurcharge = *req.SizeSurcharge
	}

	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	svc, ok := h.findService(c)
	if !ok {
		return
	}

	if err := h.db.Delete(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func (h *ServiceHandler) findService(c *gin.Context) (*models.Service, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return nil, false
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return nil, false
	}

	return &svc, true
}

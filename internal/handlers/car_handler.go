package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/httperr"
	"github.com/lavajato/carwash-scheduler/internal/httpresp"
	"github.com/lavajato/carwash-scheduler/internal/models"
	"github.com/lavajato/carwash-scheduler/internal/validators"
)

type CarHandler struct {
	db *gorm.DB
}

func NewCarHandler(db *gorm.DB) *CarHandler {
	return &CarHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCarRequest struct {
	UserID uint           `json:"user_id" binding:"required"`
	Model  string         `json:"model" binding:"required"`
	Plate  string         `json:"plate" binding:"required"`
	Size   models.CarSize `json:"size" binding:"required"`
}

type UpdateCarRequest struct {
	Model *string         `json:"model"`
	Plate *string         `json:"plate"`
	Size  *models.CarSize `json:"size"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *CarHandler) Create(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	plate := validators.NormalizePlate(req.Plate)
	if !validators.IsPlateValid(plate) {
		httperr.BadRequest(c, "invalid_plate", "Placa inválida.")
		return
	}

	var count int64
	h.db.Model(&models.Car{}).Where("plate = ?", plate).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "plate_taken", "Placa já cadastrada.")
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		httperr.BadRequest(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	car := models.Car{
		UserID: req.UserID,
		Model:  req.Model,
		Plate:  plate,
		Size:   req.Size,
	}

	if err := h.db.Create(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_create_car", "Erro ao criar carro.")
		return
	}

	httpresp.Created(c, car)
}

func (h *CarHandler) List(c *gin.Context) {
	var cars []models.Car
	if err := h.db.
		Preload("User").
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cars", "Erro ao listar carros.")
		return
	}

	httpresp.List(c, cars)
}

func (h *CarHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var cars []models.Car
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cars", "Erro ao listar carros.")
		return
	}

	httpresp.List(c, cars)
}

func (h *CarHandler) Get(c *gin.Context) {
	car, ok := h.findCar(c)
	if !ok {
		return
	}

	httpresp.OK(c, car)
}

func (h *CarHandler) Update(c *gin.Context) {
	car, ok := h.findCar(c)
	if !ok {
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Plate != nil {
		plate := validators.NormalizePlate(*req.Plate)
		if !validators.IsPlateValid(plate) {
			httperr.BadRequest(c, "invalid_plate", "Placa inválida.")
			return
		}

		// Unicidade da placa excluindo o próprio carro.
		var count int64
		h.db.Model(&models.Car{}).
			Where("plate = ? AND id <> ?", plate, car.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "plate_taken", "Placa já cadastrada.")
			return
		}

		car.Plate = plate
	}

	if req.Model != nil {
		car.Model = *req.Model
	}
	if req.Size != nil {
		car.Size = *req.Size
	}

	if err := h.db.Save(car).Error; err != nil {
		httperr.Internal(c, "failed_to_update_car", "Erro ao atualizar carro.")
		return
	}

	httpresp.OK(c, car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	car, ok := h.findCar(c)
	if !ok {
		return
	}

	if err := h.db.Delete(car).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_car", "Erro ao remover carro.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func (h *CarHandler) findCar(c *gin.Context) (*models.Car, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return nil, false
	}

	var car models.Car
	if err := h.db.First(&car, id).Error; err != nil {
		httperr.NotFound(c, "car_not_found", "Carro não encontrado.")
		return nil, false
	}

	return &car, true
}

package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/httperr"
	"github.com/lavajato/carwash-scheduler/internal/httpresp"
	"github.com/lavajato/carwash-scheduler/internal/models"
	"github.com/lavajato/carwash-scheduler/internal/storage"
)

type UnitHandler struct {
	db      *gorm.DB
	storage *storage.S3Storage
}

// storage pode ser nil (upload de fotos desativado).
func NewUnitHandler(db *gorm.DB, st *storage.S3Storage) *UnitHandler {
	return &UnitHandler{db: db, storage: st}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUnitRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type UpdateUnitRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// ======================================================
// CRUD
// ======================================================

func (h *UnitHandler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	unit := models.Unit{
		Name:    req.Name,
		Address: req.Address,
	}

	if err := h.db.Create(&unit).Error; err != nil {
		httperr.Internal(c, "failed_to_create_unit", "Erro ao criar unidade.")
		return
	}

	httpresp.Created(c, unit)
}

func (h *UnitHandler) List(c *gin.Context) {
	var units []models.Unit
	if err := h.db.Order("created_at DESC").Find(&units).Error; err != nil {
		httperr.Internal(c, "failed_to_list_units", "Erro ao listar unidades.")
		return
	}

	httpresp.List(c, units)
}

func (h *UnitHandler) Get(c *gin.Context) {
	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	httpresp.OK(c, unit)
}

func (h *UnitHandler) Update(c *gin.Context) {
	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Address != nil {
		unit.Address = *req.Address
	}

	if err := h.db.Save(unit).Error; err != nil {
		httperr.Internal(c, "failed_to_update_unit", "Erro ao atualizar unidade.")
		return
	}

	httpresp.OK(c, unit)
}

func (h *UnitHandler) Delete(c *gin.Context) {
	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	if err := h.db.Delete(unit).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_unit", "Erro ao remover unidade.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// PHOTO UPLOAD
// ======================================================

func (h *UnitHandler) UploadPhoto(c *gin.Context) {
	if h.storage == nil {
		httperr.Write(c, http.StatusServiceUnavailable,
			"uploads_disabled", "Upload de fotos não está configurado.")
		return
	}

	unit, ok := h.findUnit(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo 'photo' é obrigatório.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer file.Close()

	key := "units/" + uuid.NewString() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	if err := h.storage.Put(c.Request.Context(), key, file, contentType); err != nil {
		httperr.Internal(c, "failed_to_upload", "Erro ao enviar foto.")
		return
	}

	unit.PhotoURL = h.storage.URL(key)
	if err := h.db.Save(unit).Error; err != nil {
		httperr.Internal(c, "failed_to_update_unit", "Erro ao salvar foto.")
		return
	}

	httpresp.OK(c, unit)
}

// ======================================================
// HELPERS
// ======================================================

func (h *UnitHandler) findUnit(c *gin.Context) (*models.Unit, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return nil, false
	}

	var unit models.Unit
	if err := h.db.First(&unit, id).Error; err != nil {
		httperr.NotFound(c, "unit_not_found", "Unidade não encontrada.")
		return nil, false
	}

	return &unit, true
}

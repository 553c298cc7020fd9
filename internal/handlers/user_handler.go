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

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	District string `json:"district" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	District *string `json:"district"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Zip      *string `json:"zip"`
}

type AddPointsRequest struct {
	Points int `json:"points" binding:"required,min=1"`
}

// ======================================================
// CRUD
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	phone := validators.DigitsOnly(req.Phone)

	var count int64
	h.db.Model(&models.User{}).Where("phone = ?", phone).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "phone_taken", "Telefone já cadastrado.")
		return
	}

	user := models.User{
		Name:     req.Name,
		Phone:    phone,
		Address:  req.Address,
		District: req.District,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.District != nil {
		user.District = *req.District
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.Zip != nil {
		user.Zip = *req.Zip
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	if err := h.db.Delete(user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao remover usuário.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LOYALTY POINTS
// ======================================================

func (h *UserHandler) AddPoints(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	var req AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user.LoyaltyPoints += req.Points

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "failed_to_add_points", "Erro ao adicionar pontos.")
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// FAVORITE ADDRESSES
// ======================================================

type CreateFavoriteAddressRequest struct {
	Name     string `json:"name" binding:"required"`
	Street   string `json:"street" binding:"required"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

func (h *UserHandler) CreateFavoriteAddress(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	var req CreateFavoriteAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	addr := models.FavoriteAddress{
		UserID:   user.ID,
		Name:     req.Name,
		Street:   req.Street,
		Number:   req.Number,
		District: req.District,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
	}

	if err := h.db.Create(&addr).Error; err != nil {
		httperr.Internal(c, "failed_to_create_address", "Erro ao criar endereço favorito.")
		return
	}

	httpresp.Created(c, addr)
}

func (h *UserHandler) ListFavoriteAddresses(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	var addrs []models.FavoriteAddress
	if err := h.db.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&addrs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_addresses", "Erro ao listar endereços.")
		return
	}

	httpresp.List(c, addrs)
}

func (h *UserHandler) DeleteFavoriteAddress(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	addressID, err := strconv.ParseUint(c.Param("addressId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	// Endereço de outro usuário responde como inexistente.
	var addr models.FavoriteAddress
	if err := h.db.
		Where("id = ? AND user_id = ?", addressID, user.ID).
		First(&addr).Error; err != nil {
		httperr.NotFound(c, "address_not_found", "Endereço não encontrado.")
		return
	}

	if err := h.db.Delete(&addr).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_address", "Erro ao remover endereço.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func (h *UserHandler) findUser(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return nil, false
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return nil, false
	}

	return &user, true
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/middleware"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	// Cadastro completo quando data de nascimento e tipo de conta já
	// foram informados; o app usa isso para abrir a tela de completar.
	c.JSON(http.StatusOK, gin.H{
		"user":              user,
		"profile_completed": user.BirthDate != nil && user.AccountType != "",
	})
}

type CompleteProfileRequest struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	AccountType string `json:"account_type"`
	Address     string `json:"address"`
	District    string `json:"district"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
}

// UpdateMe completa/ajusta o cadastro do usuário logado.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_birth_date"})
			return
		}
		user.BirthDate = &birth
	}
	if req.AccountType != "" {
		user.AccountType = req.AccountType
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.District != "" {
		user.District = req.District
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.Zip != "" {
		user.Zip = req.Zip
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

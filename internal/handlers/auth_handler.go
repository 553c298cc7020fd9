package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/auth"
	"github.com/lavajato/carwash-scheduler/internal/config"
	"github.com/lavajato/carwash-scheduler/internal/models"
	"github.com/lavajato/carwash-scheduler/internal/notify"
	"github.com/lavajato/carwash-scheduler/internal/validators"
)

type AuthHandler struct {
	db        *gorm.DB
	config    *config.Config
	codes     auth.CodeStore
	messenger notify.Messenger
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	codes auth.CodeStore,
	messenger notify.Messenger,
) *AuthHandler {
	return &AuthHandler{
		db:        db,
		config:    cfg,
		codes:     codes,
		messenger: messenger,
	}
}

// --------- Requests ---------

type SendCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// --------- Handlers ---------

// SendCode gera o código de verificação e tenta entregar por WhatsApp.
// A entrega é melhor esforço: falha do provedor não falha a request.
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	phone := validators.DigitsOnly(req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	code := auth.GenerateCode()
	if err := h.codes.Save(c.Request.Context(), phone, code, auth.CodeTTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_store_code"})
		return
	}

	to := "whatsapp:+" + phone
	body := "Lavajato - Seu código de verificação é: " + code
	if err := h.messenger.Send(c.Request.Context(), to, body); err != nil {
		log.Println("auth: falha ao enviar código:", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Código de verificação enviado com sucesso"})
}

// Verify confere o código e emite o token; cria o usuário com perfil
// provisório no primeiro login.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	phone := validators.DigitsOnly(req.Phone)

	stored, err := h.codes.Get(c.Request.Context(), phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_check_code"})
		return
	}
	if stored == "" || stored != req.Code {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_code"})
		return
	}

	_ = h.codes.Delete(c.Request.Context(), phone)

	var user models.User
	err = h.db.Where("phone = ?", phone).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:     "Usuário " + lastDigits(phone, 4),
			Phone:    phone,
			Address:  "Endereço não informado",
			District: "Bairro não informado",
			City:     "Cidade não informada",
			State:    "UF",
			Zip:      "00000-000",
		}
		err = h.db.Create(&user).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_user"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   float64(user.ID),
		"phone": user.Phone,
		"exp":   time.Now().Add(30 * 24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_sign_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"user": gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"phone":          user.Phone,
			"loyalty_points": user.LoyaltyPoints,
		},
	})
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

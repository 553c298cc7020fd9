package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/httperr"
	"github.com/lavajato/carwash-scheduler/internal/httpresp"
	"github.com/lavajato/carwash-scheduler/internal/models"
	"github.com/lavajato/carwash-scheduler/internal/timezone"
	usecase "github.com/lavajato/carwash-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *usecase.CreateAppointment
	updateUC *usecase.UpdateAppointment
	removeUC *usecase.RemoveAppointment
	getUC    *usecase.GetAppointment
	listUC   *usecase.ListAppointments
	priceUC  *usecase.CalculatePrice

	// Valor anunciado na cotação quando o cliente pede leva e traz.
	pickupFeeQuoted float64
}

func NewAppointmentHandler(
	createUC *usecase.CreateAppointment,
	updateUC *usecase.UpdateAppointment,
	removeUC *usecase.RemoveAppointment,
	getUC *usecase.GetAppointment,
	listUC *usecase.ListAppointments,
	priceUC *usecase.CalculatePrice,
	pickupFeeQuoted float64,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:        createUC,
		updateUC:        updateUC,
		removeUC:        removeUC,
		getUC:           getUC,
		listUC:          listUC,
		priceUC:         priceUC,
		pickupFeeQuoted: pickupFeeQuoted,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	CarID      uint   `json:"car_id" binding:"required"`
	UnitID     uint   `json:"unit_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`

	IncludesPickup bool   `json:"includes_pickup"`
	PickupAddress  string `json:"pickup_address"`
	PickupNotes    string `json:"pickup_notes"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`

	IncludesPickup *bool    `json:"includes_pickup"`
	PickupFee      *float64 `json:"pickup_fee"`
	PickupAddress  *string  `json:"pickup_address"`
	PickupNotes    *string  `json:"pickup_notes"`
}

type CalculatePriceRequest struct {
	Size           string `json:"size" binding:"required"`
	ServiceIDs     []uint `json:"service_ids" binding:"required,min=1"`
	IncludesPickup bool   `json:"includes_pickup"`
}

type CalculatePriceResponse struct {
	*domain.PriceBreakdown
	PickupFee  float64 `json:"pickup_fee"`
	TotalPrice float64 `json:"total_price"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use o formato YYYY-MM-DD.")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		UserID:         req.UserID,
		CarID:          req.CarID,
		UnitID:         req.UnitID,
		Date:           date,
		Time:           req.Time,
		ServiceIDs:     req.ServiceIDs,
		IncludesPickup: req.IncludesPickup,
		PickupAddress:  req.PickupAddress,
		PickupNotes:    req.PickupNotes,
	})
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	out, err := h.listUC.ExecuteByUser(c.Request.Context(), uint(userID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	out, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := usecase.UpdateAppointmentInput{
		Status:         req.Status,
		Time:           req.Time,
		IncludesPickup: req.IncludesPickup,
		PickupFee:      req.PickupFee,
		PickupAddress:  req.PickupAddress,
		PickupNotes:    req.PickupNotes,
	}

	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, timezone.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida, use o formato YYYY-MM-DD.")
			return
		}
		in.Date = &date
	}

	out, err := h.updateUC.Execute(c.Request.Context(), id, in)
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), id); err != nil {
		h.writeBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CalculatePrice cota sem persistir nada. A taxa de leva e traz usada
// aqui é a anunciada, não a efetivamente gravada no create.
func (h *AppointmentHandler) CalculatePrice(c *gin.Context) {
	var req CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	breakdown, err := h.priceUC.Execute(
		c.Request.Context(),
		models.CarSize(req.Size),
		req.ServiceIDs,
	)
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	resp := CalculatePriceResponse{
		PriceBreakdown: breakdown,
		TotalPrice:     breakdown.FinalPrice,
	}
	if req.IncludesPickup {
		resp.PickupFee = h.pickupFeeQuoted
		resp.TotalPrice += h.pickupFeeQuoted
	}

	httpresp.OK(c, resp)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "user_not_found":
		httperr.BadRequest(c, code, "Usuário não encontrado.")
	case "car_not_found":
		httperr.BadRequest(c, code, "Carro não encontrado.")
	case "unit_not_found":
		httperr.BadRequest(c, code, "Unidade não encontrada.")
	case "no_services_found":
		httperr.BadRequest(c, code, "Nenhum serviço válido informado.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Status inválido.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}

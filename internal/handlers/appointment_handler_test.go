package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/audit"
	infraRepo "github.com/lavajato/carwash-scheduler/internal/infra/repository"
	"github.com/lavajato/carwash-scheduler/internal/models"
	ucAppointment "github.com/lavajato/carwash-scheduler/internal/usecase/appointment"
)

type noopNotifier struct{}

func (noopNotifier) Dispatch(appointmentID uint) {}

func appointmentRouter(db *gorm.DB) *gin.Engine {
	repo := infraRepo.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, dispatcher, 15.00),
		ucAppointment.NewUpdateAppointment(repo, dispatcher, noopNotifier{}),
		ucAppointment.NewRemoveAppointment(repo, dispatcher),
		ucAppointment.NewGetAppointment(repo),
		ucAppointment.NewListAppointments(repo),
		ucAppointment.NewCalculatePrice(repo),
		50.00,
	)

	r := newRouter()
	r.POST("/appointments", h.Create)
	r.GET("/appointments", h.List)
	r.GET("/appointments/:id", h.Get)
	r.PATCH("/appointments/:id", h.Update)
	r.DELETE("/appointments/:id", h.Delete)
	r.POST("/appointments/price", h.CalculatePrice)

	return r
}

func seedBookingScenario(t *testing.T, db *gorm.DB) (models.User, models.Car, models.Unit, models.Service) {
	t.Helper()

	user := seedUser(t, db, "5511999990000")

	car := models.Car{UserID: user.ID, Model: "Fiat Uno", Plate: "ABC1D23", Size: models.SizeMedium}
	require.NoError(t, db.Create(&car).Error)

	unit := models.Unit{Name: "Unidade Centro", Address: "Rua das Flores, 100"}
	require.NoError(t, db.Create(&unit).Error)

	svc := models.Service{Name: "Lavagem Completa", BasePrice: 45, SizeSurcharge: 8}
	require.NoError(t, db.Create(&svc).Error)

	return user, car, unit, svc
}

func TestAppointmentCreateEndpoint(t *testing.T) {
	db := setupDB(t)
	user, car, unit, svc := seedBookingScenario(t, db)
	r := appointmentRouter(db)

	w := doJSON(t, r, http.MethodPost, "/appointments", gin.H{
		"user_id":     user.ID,
		"car_id":      car.ID,
		"unit_id":     unit.ID,
		"date":        "2026-09-10",
		"time":        "14:30",
		"service_ids": []uint{svc.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID         uint    `json:"id"`
		Status     string  `json:"status"`
		FinalPrice float64 `json:"final_price"`
		ServiceIDs []uint  `json:"service_ids"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "SCHEDULED", resp.Status)
	assert.InDelta(t, 53.0, resp.FinalPrice, 0.001)
	assert.Equal(t, []uint{svc.ID}, resp.ServiceIDs)
}

func TestAppointmentCreateRejectsBadDate(t *testing.T) {
	db := setupDB(t)
	user, car, unit, svc := seedBookingScenario(t, db)
	r := appointmentRouter(db)

	w := doJSON(t, r, http.MethodPost, "/appointments", gin.H{
		"user_id":     user.ID,
		"car_id":      car.ID,
		"unit_id":     unit.ID,
		"date":        "10/09/2026",
		"time":        "14:30",
		"service_ids": []uint{svc.ID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_date")
}

func TestAppointmentCreateMapsBusinessErrors(t *testing.T) {
	db := setupDB(t)
	_, car, unit, svc := seedBookingScenario(t, db)
	r := appointmentRouter(db)

	w := doJSON(t, r, http.MethodPost, "/appointments", gin.H{
		"user_id":     9999,
		"car_id":      car.ID,
		"unit_id":     unit.ID,
		"date":        "2026-09-10",
		"time":        "14:30",
		"service_ids": []uint{svc.ID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user_not_found")
}

func TestAppointmentGetUnknownIs404(t *testing.T) {
	db := setupDB(t)
	seedBookingScenario(t, db)
	r := appointmentRouter(db)

	w := doJSON(t, r, http.MethodGet, "/appointments/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "appointment_not_found")
}

// A cotação soma a taxa anunciada de leva e traz, que não é a mesma
// gravada no create.
func TestCalculatePriceEndpointQuotesPickup(t *testing.T) {
	db := setupDB(t)
	_, _, _, svc := seedBookingScenario(t, db)
	r := appointmentRouter(db)

	w := doJSON(t, r, http.MethodPost, "/appointments/price", gin.H{
		"size":            "LARGE",
		"service_ids":     []uint{svc.ID},
		"includes_pickup": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FinalPrice float64 `json:"final_price"`
		PickupFee  float64 `json:"pickup_fee"`
		TotalPrice float64 `json:"total_price"`
	}
	decodeBody(t, w, &resp)

	// LARGE: 45 + 8*1.5 = 57; cotação de leva e traz anunciada: 50
	assert.InDelta(t, 57.0, resp.FinalPrice, 0.001)
	assert.InDelta(t, 50.0, resp.PickupFee, 0.001)
	assert.InDelta(t, 107.0, resp.TotalPrice, 0.001)
}

func TestCalculatePriceEndpointWithoutPickup(t *testing.T) {
	db := setupDB(t)
	_, _, _, svc := seedBookingScenario(t, db)
	r := appointmentRouter(db)

	w := doJSON(t, r, http.MethodPost, "/appointments/price", gin.H{
		"size":        "SMALL",
		"service_ids": []uint{svc.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PickupFee  float64 `json:"pickup_fee"`
		TotalPrice float64 `json:"total_price"`
	}
	decodeBody(t, w, &resp)

	assert.Zero(t, resp.PickupFee)
	assert.InDelta(t, 49.0, resp.TotalPrice, 0.001)
}

package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/httperr"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

func seedAppointment(t *testing.T, db *gorm.DB, f fixtures, status domain.Status) models.Appointment {
	t.Helper()

	ap := models.Appointment{
		UserID:     f.User.ID,
		CarID:      f.Car.ID,
		UnitID:     f.Unit.ID,
		Status:     string(status),
		Date:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:       "14:30",
		FinalPrice: 83,
	}
	require.NoError(t, db.Create(&ap).Error)
	require.NoError(t, db.Create(&models.AppointmentService{
		AppointmentID: ap.ID,
		ServiceID:     f.Simple.ID,
	}).Error)

	return ap
}

func strPtr(s string) *string { return &s }

func TestUpdateStatusToCompletedNotifiesOnce(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	ap := seedAppointment(t, db, f, domain.StatusInProgress)

	notifier := &fakeNotifier{}
	uc := NewUpdateAppointment(newTestRepo(db), newTestAudit(db), notifier)

	out, err := uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Status: strPtr(string(domain.StatusCompleted)),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), out.Status)
	assert.Equal(t, []uint{ap.ID}, notifier.dispatched)
}

func TestUpdateAlreadyCompletedDoesNotRenotify(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	ap := seedAppointment(t, db, f, domain.StatusCompleted)

	notifier := &fakeNotifier{}
	uc := NewUpdateAppointment(newTestRepo(db), newTestAudit(db), notifier)

	_, err := uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Status: strPtr(string(domain.StatusCompleted)),
	})
	require.NoError(t, err)

	assert.Empty(t, notifier.dispatched)
}

func TestUpdateNonStatusFieldsDoesNotNotify(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	ap := seedAppointment(t, db, f, domain.StatusScheduled)

	notifier := &fakeNotifier{}
	uc := NewUpdateAppointment(newTestRepo(db), newTestAudit(db), notifier)

	out, err := uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Time: strPtr("16:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "16:00", out.Time)
	assert.Equal(t, string(domain.StatusScheduled), out.Status)
	assert.Empty(t, notifier.dispatched)
}

// Update parcial nunca recalcula o preço fechado no create.
func TestUpdateDoesNotRecalculatePrice(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	ap := seedAppointment(t, db, f, domain.StatusScheduled)

	uc := NewUpdateAppointment(newTestRepo(db), newTestAudit(db), &fakeNotifier{})

	out, err := uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Time: strPtr("17:00"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 83.0, out.FinalPrice, 0.001)
}

func TestUpdateInvalidStatus(t *testing.T) {
	db := setupDB(t)
	f := seedFixtures(t, db)
	ap := seedAppointment(t, db, f, domain.StatusScheduled)

	notifier := &fakeNotifier{}
	uc := NewUpdateAppointment(newTestRepo(db), newTestAudit(db), notifier)

	_, err := uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Status: strPtr("CANCELLED"),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	assert.Empty(t, notifier.dispatched)

	// O status gravado não mudou.
	var got models.Appointment
	require.NoError(t, db.First(&got, ap.ID).Error)
	assert.Equal(t, string(domain.StatusScheduled), got.Status)
}

func TestUpdateNotFound(t *testing.T) {
	db := setupDB(t)
	seedFixtures(t, db)

	uc := NewUpdateAppointment(newTestRepo(db), newTestAudit(db), &fakeNotifier{})

	_, err := uc.Execute(context.Background(), 9999, UpdateAppointmentInput{
		Time: strPtr("10:00"),
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

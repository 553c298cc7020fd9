package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lavajato/carwash-scheduler/internal/models"
)

type recordingMessenger struct {
	to   string
	body string
	err  error
}

func (m *recordingMessenger) Send(ctx context.Context, to, body string) error {
	m.to = to
	m.body = body
	return m.err
}

func setupNotifyDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Unit{},
		&models.Appointment{},
	))
	return db
}

func seedCompleted(t *testing.T, db *gorm.DB) models.Appointment {
	t.Helper()

	user := models.User{Name: "João Silva", Phone: "+55 (11) 99999-0000"}
	require.NoError(t, db.Create(&user).Error)

	car := models.Car{UserID: user.ID, Model: "Fiat Uno", Plate: "ABC1D23", Size: models.SizeMedium}
	require.NoError(t, db.Create(&car).Error)

	unit := models.Unit{Name: "Unidade Centro", Address: "Rua das Flores, 100"}
	require.NoError(t, db.Create(&unit).Error)

	ap := models.Appointment{
		UserID: user.ID, CarID: car.ID, UnitID: unit.ID,
		Status: "COMPLETED", Time: "14:30", FinalPrice: 83,
	}
	require.NoError(t, db.Create(&ap).Error)
	return ap
}

func TestNotifyFormatsWhatsAppRecipient(t *testing.T) {
	db := setupNotifyDB(t)
	ap := seedCompleted(t, db)

	m := &recordingMessenger{}
	n := NewCompletionNotifier(db, m)

	require.NoError(t, n.Notify(context.Background(), ap.ID))

	assert.Equal(t, "whatsapp:+5511999990000", m.to)
	assert.Contains(t, m.body, "João Silva")
	assert.Contains(t, m.body, "Fiat Uno - ABC1D23")
	assert.Contains(t, m.body, "Unidade Centro")
	assert.Contains(t, m.body, "R$ 83.00")
}

func TestNotifyUnknownAppointment(t *testing.T) {
	db := setupNotifyDB(t)

	m := &recordingMessenger{}
	n := NewCompletionNotifier(db, m)

	assert.Error(t, n.Notify(context.Background(), 9999))
	assert.Empty(t, m.to)
}

func TestNotifyPropagatesProviderError(t *testing.T) {
	db := setupNotifyDB(t)
	ap := seedCompleted(t, db)

	m := &recordingMessenger{err: errors.New("provider down")}
	n := NewCompletionNotifier(db, m)

	// O worker só loga; aqui garantimos que o erro sobe até ele.
	assert.Error(t, n.Notify(context.Background(), ap.ID))
}

func TestCompletionMessageMentionsLoyalty(t *testing.T) {
	ap := &models.Appointment{
		User:       models.User{Name: "Maria"},
		Car:        models.Car{Model: "Gol", Plate: "DEF4G56"},
		Unit:       models.Unit{Name: "Unidade Sul", Address: "Av. Brasil, 200"},
		FinalPrice: 27.5,
	}

	msg := CompletionMessage(ap)
	assert.Contains(t, msg, "Serviço Finalizado")
	assert.Contains(t, msg, "Pontos de Fidelidade")
	assert.Contains(t, msg, "R$ 27.50")
}

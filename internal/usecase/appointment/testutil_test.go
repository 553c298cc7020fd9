package appointment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lavajato/carwash-scheduler/internal/audit"
	infraRepo "github.com/lavajato/carwash-scheduler/internal/infra/repository"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Unit{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.FavoriteAddress{},
		&models.AuditLog{},
	))

	return db
}

type fixtures struct {
	User     models.User
	Car      models.Car
	Unit     models.Unit
	Simple   models.Service
	Complete models.Service
}

// seedFixtures cria o cenário mínimo: um cliente com carro MEDIUM, uma
// unidade e dois serviços de catálogo.
func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		User: models.User{Name: "João Silva", Phone: "+5511999990000"},
		Unit: models.Unit{Name: "Unidade Centro", Address: "Rua das Flores, 100"},
		Simple: models.Service{
			Name: "Lavagem Simples", BasePrice: 25, SizeSurcharge: 5,
		},
		Complete: models.Service{
			Name: "Lavagem Completa", BasePrice: 45, SizeSurcharge: 8,
		},
	}

	require.NoError(t, db.Create(&f.User).Error)
	require.NoError(t, db.Create(&f.Unit).Error)
	require.NoError(t, db.Create(&f.Simple).Error)
	require.NoError(t, db.Create(&f.Complete).Error)

	f.Car = models.Car{
		UserID: f.User.ID,
		Model:  "Fiat Uno",
		Plate:  "ABC1D23",
		Size:   models.SizeMedium,
	}
	require.NoError(t, db.Create(&f.Car).Error)

	return f
}

func newTestRepo(db *gorm.DB) *infraRepo.AppointmentGormRepository {
	return infraRepo.NewAppointmentGormRepository(db)
}

func newTestAudit(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db))
}

// fakeNotifier registra os dispatches para as asserções dos testes de
// update.
type fakeNotifier struct {
	dispatched []uint
}

func (f *fakeNotifier) Dispatch(appointmentID uint) {
	f.dispatched = append(f.dispatched, appointmentID)
}

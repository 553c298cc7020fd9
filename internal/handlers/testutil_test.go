package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// memCodeStore substitui o redis nos testes do fluxo de login.
type memCodeStore struct {
	codes map[string]string
}

func newMemCodeStore() *memCodeStore {
	return &memCodeStore{codes: map[string]string{}}
}

func (s *memCodeStore) Save(ctx context.Context, phone, code string, ttl time.Duration) error {
	s.codes[phone] = code
	return nil
}

func (s *memCodeStore) Get(ctx context.Context, phone string) (string, error) {
	return s.codes[phone], nil
}

func (s *memCodeStore) Delete(ctx context.Context, phone string) error {
	delete(s.codes, phone)
	return nil
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/audit"
	"github.com/lavajato/carwash-scheduler/internal/auth"
	"github.com/lavajato/carwash-scheduler/internal/config"
	"github.com/lavajato/carwash-scheduler/internal/handlers"
	infraRepo "github.com/lavajato/carwash-scheduler/internal/infra/repository"
	"github.com/lavajato/carwash-scheduler/internal/middleware"
	"github.com/lavajato/carwash-scheduler/internal/notify"
	"github.com/lavajato/carwash-scheduler/internal/storage"
	ucAppointment "github.com/lavajato/carwash-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	codes := auth.NewRedisCodeStore(rdb)

	messenger := notify.NewMessenger(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioWhatsAppFrom,
	)
	completionNotifier := notify.NewCompletionNotifier(db, messenger)

	unitStorage := storage.New(storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.PickupFee,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		completionNotifier,
	)

	removeAppointmentUC := ucAppointment.NewRemoveAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	calculatePriceUC := ucAppointment.NewCalculatePrice(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, codes, messenger)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)
	carHandler := handlers.NewCarHandler(db)
	unitHandler := handlers.NewUnitHandler(db, unitStorage)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		removeAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		calculatePriceUC,
		cfg.PickupFeeQuoted,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/code", authHandler.SendCode)
		api.POST("/auth/verify", authHandler.Verify)

		// ------------------------------
		// 🌐 API PÚBLICA (vitrine)
		// ------------------------------
		api.GET("/units", unitHandler.List)
		api.GET("/units/:id", unitHandler.Get)
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// USERS
			// ------------------------------
			secured.POST("/users", userHandler.Create)
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Get)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)
			secured.POST("/users/:id/points", userHandler.AddPoints)

			secured.POST("/users/:id/favorite-addresses", userHandler.CreateFavoriteAddress)
			secured.GET("/users/:id/favorite-addresses", userHandler.ListFavoriteAddresses)
			secured.DELETE("/users/:id/favorite-addresses/:addressId", userHandler.DeleteFavoriteAddress)

			secured.GET("/users/:id/cars", carHandler.ListByUser)
			secured.GET("/users/:id/appointments", appointmentHandler.ListByUser)

			// ------------------------------
			// CARS
			// ------------------------------
			secured.POST("/cars", carHandler.Create)
			secured.GET("/cars", carHandler.List)
			secured.GET("/cars/:id", carHandler.Get)
			secured.PATCH("/cars/:id", carHandler.Update)
			secured.DELETE("/cars/:id", carHandler.Delete)

			// ------------------------------
			// UNITS (gestão)
			// ------------------------------
			secured.POST("/units", unitHandler.Create)
			secured.PATCH("/units/:id", unitHandler.Update)
			secured.DELETE("/units/:id", unitHandler.Delete)
			secured.POST("/units/:id/photo", unitHandler.UploadPhoto)

			// ------------------------------
			// SERVICES (gestão)
			// ------------------------------
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/price", appointmentHandler.CalculatePrice)
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendamento-api/internal/audit"
	"github.com/BruksfildServices01/agendamento-api/internal/cache"
	"github.com/BruksfildServices01/agendamento-api/internal/config"
	"github.com/BruksfildServices01/agendamento-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agendamento-api/internal/infra/repository"
	"github.com/BruksfildServices01/agendamento-api/internal/middleware"
	"github.com/BruksfildServices01/agendamento-api/internal/notification"
	ucBooking "github.com/BruksfildServices01/agendamento-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	composer := notification.NewComposer(cfg.BarberPhone)
	catalogCache := cache.NewCatalog(cfg.RedisURL)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	getUC := ucBooking.NewGetAppointment(bookingRepo)
	rescheduleUC := ucBooking.NewRescheduleAppointment(bookingRepo, auditDispatcher)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	listServicesUC := ucBooking.NewListServices(bookingRepo)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createUC,
		getUC,
		rescheduleUC,
		cancelUC,
		availabilityUC,
		composer,
	)
	catalogHandler := handlers.NewCatalogHandler(listServicesUC, catalogCache)
	adminHandler := handlers.NewAdminHandler(listAppointmentsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", catalogHandler.ListServices)

		api.GET("/appointments/available", bookingHandler.Availability)
		api.POST("/appointments", bookingHandler.Create)
		api.GET("/appointments/:token", bookingHandler.Detail)
		api.PUT("/appointments/:token/reschedule", bookingHandler.Reschedule)
		api.DELETE("/appointments/:token/cancel", bookingHandler.Cancel)

		// visão do operador, bearer estático
		admin := api.Group("/")
		admin.Use(middleware.AdminAuth(cfg))
		{
			admin.GET("/appointments", adminHandler.ListAppointments)
		}
	}
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agendamento-api/internal/dto"
	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
	"github.com/BruksfildServices01/agendamento-api/internal/httpresp"
	"github.com/BruksfildServices01/agendamento-api/internal/models"
	"github.com/BruksfildServices01/agendamento-api/internal/notification"
	"github.com/BruksfildServices01/agendamento-api/internal/timezone"
	"github.com/BruksfildServices01/agendamento-api/internal/usecase/booking"
	"github.com/BruksfildServices01/agendamento-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *booking.CreateAppointment
	getUC          *booking.GetAppointment
	rescheduleUC   *booking.RescheduleAppointment
	cancelUC       *booking.CancelAppointment
	availabilityUC *booking.GetAvailability

	composer *notification.Composer
}

func NewBookingHandler(
	createUC *booking.CreateAppointment,
	getUC *booking.GetAppointment,
	rescheduleUC *booking.RescheduleAppointment,
	cancelUC *booking.CancelAppointment,
	availabilityUC *booking.GetAvailability,
	composer *notification.Composer,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		getUC:          getUC,
		rescheduleUC:   rescheduleUC,
		cancelUC:       cancelUC,
		availabilityUC: availabilityUC,
		composer:       composer,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
}

type RescheduleAppointmentRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados incompletos.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		ClientName:  req.Name,
		ClientPhone: req.Phone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		mapScheduleError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"success":      "Agendamento criado com sucesso",
		"token":        ap.Token,
		"whatsapp_url": h.composer.BookingCreated(notification.Summarize(ap)),
	})
}

// ======================================================
// DETAIL (TOKEN)
// ======================================================

func (h *BookingHandler) Detail(c *gin.Context) {
	token := c.Param("token")

	ap, err := h.getUC.Execute(c.Request.Context(), token)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, "invalid_token", "Token inválido.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	httpresp.OK(c, detailDTO(ap))
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *BookingHandler) Reschedule(c *gin.Context) {
	token := c.Param("token")

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), booking.RescheduleAppointmentInput{
		Token:       token,
		ClientName:  req.Name,
		ClientPhone: req.Phone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, "invalid_token", "Token ou serviço inválido.")
			return
		}
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"success":      "Agendamento reagendado com sucesso",
		"whatsapp_url": h.composer.BookingRescheduled(notification.Summarize(ap)),
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	token := c.Param("token")

	ap, err := h.cancelUC.Execute(c.Request.Context(), token)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, "invalid_token", "Token inválido.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	httpresp.OK(c, gin.H{
		"success":      "Agendamento cancelado com sucesso",
		"whatsapp_url": h.composer.BookingCancelled(notification.Summarize(ap)),
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, ok := parseID(serviceIDStr)
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date, serviceID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// HELPERS
// ======================================================

func detailDTO(ap *models.Appointment) dto.AppointmentDetailDTO {
	return dto.AppointmentDetailDTO{
		Name:        ap.Client.Name,
		Phone:       ap.Client.Phone,
		Service:     ap.Service.Name,
		DurationMin: ap.Service.DurationMin,
		Price:       ap.Service.Price,
		Date:        ap.DateString(),
		Time:        ap.TimeString(),
		Token:       ap.Token,
	}
}

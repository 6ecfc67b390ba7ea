package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
	"github.com/BruksfildServices01/agendamento-api/internal/httpresp"
	"github.com/BruksfildServices01/agendamento-api/internal/usecase/booking"
)

type AdminHandler struct {
	listUC *booking.ListAppointments
}

func NewAdminHandler(listUC *booking.ListAppointments) *AdminHandler {
	return &AdminHandler{listUC: listUC}
}

// ======================================================
// LISTAR AGENDA (BARBEIRO)
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

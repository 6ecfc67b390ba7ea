package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
)

// mapScheduleError traduz as falhas do validador para HTTP. NotFound
// é tratado antes, em cada handler, porque a mensagem depende do que
// estava sendo buscado.
func mapScheduleError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeInvalidInput:
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.CodeClosedDay:
		httperr.BadRequest(c, httperr.CodeClosedDay, "Não atendemos aos domingos.")
	case httperr.CodePastDate:
		httperr.BadRequest(c, httperr.CodePastDate, "Não é possível agendar para datas passadas.")
	case httperr.CodePastTime:
		httperr.BadRequest(c, httperr.CodePastTime, "Não é possível agendar para horário passado.")
	case httperr.CodeOutsideHours:
		httperr.BadRequest(c, httperr.CodeOutsideHours, "Fora do horário de atendimento.")
	case httperr.CodeConflict:
		httperr.Conflict(c, httperr.CodeConflict, "Esse horário conflita com outro agendamento.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

package httperr

import "errors"

// Códigos de negócio usados pelo núcleo de agendamento.
const (
	CodeInvalidInput = "invalid_input"
	CodeNotFound     = "not_found"
	CodeClosedDay    = "closed_day"
	CodePastDate     = "past_date"
	CodePastTime     = "past_time"
	CodeOutsideHours = "outside_hours"
	CodeConflict     = "time_conflict"
	CodeUnauthorized = "unauthorized"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devolve o código de negócio do erro, ou "" se não for um.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

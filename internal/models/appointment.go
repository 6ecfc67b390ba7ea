package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Token é a única credencial externa do agendamento.
	// Gerado na criação, nunca muda.
	Token string `gorm:"size:36;uniqueIndex;not null" json:"token"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	// Data + hora combinados no fuso local. A duração vem sempre
	// do Service associado.
	StartTime time.Time `gorm:"index;not null" json:"start_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) DateString() string {
	return a.StartTime.Format("2006-01-02")
}

func (a *Appointment) TimeString() string {
	return a.StartTime.Format("15:04")
}

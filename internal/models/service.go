package models

import "time"

// Serviço do catálogo. Preço em decimal fixo (string) para nunca
// passar por aritmética de float.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	DurationMin int    `gorm:"not null" json:"duration_min"`
	Price       string `gorm:"type:decimal(8,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendamento-api/internal/config"
	"github.com/BruksfildServices01/agendamento-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	SeedServices(db)

	return db
}

// Migrate também roda nos testes, em cima de sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	)
}

// SeedServices provisiona o catálogo inicial quando a tabela está
// vazia. O catálogo é read-only para o núcleo; daqui pra frente quem
// mexe nele é operação administrativa externa.
func SeedServices(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	defaults := []models.Service{
		{Name: "Corte de Cabelo", DurationMin: 30, Price: "35.00"},
		{Name: "Barba", DurationMin: 30, Price: "25.00"},
		{Name: "Corte + Barba", DurationMin: 60, Price: "55.00"},
		{Name: "Corte + Barba + Sobrancelha", DurationMin: 90, Price: "70.00"},
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}

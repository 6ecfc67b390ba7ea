package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agendamento-api/internal/config"
	dbpkg "github.com/BruksfildServices01/agendamento-api/internal/db"
	"github.com/BruksfildServices01/agendamento-api/internal/middleware"
	"github.com/BruksfildServices01/agendamento-api/internal/routes"
	"github.com/BruksfildServices01/agendamento-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.Init(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

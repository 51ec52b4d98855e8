package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/AtelierGestione/atelier-manager/internal/config"
	dbpkg "github.com/AtelierGestione/atelier-manager/internal/db"
	"github.com/AtelierGestione/atelier-manager/internal/logger"
	"github.com/AtelierGestione/atelier-manager/internal/middleware"
	"github.com/AtelierGestione/atelier-manager/internal/routes"
)

func main() {

	// .env opzionale, in produzione le variabili arrivano dall'ambiente
	_ = godotenv.Load()

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

package main

import (
	"os"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
	"github.com/eohue/ibookee-web-sub001/internal/server"
)

// @title ibookee API
// @version 1.0
// @description Marketing-site and community backend for the ibookee social housing platform

// @contact.name ibookee
// @contact.url https://ibookee.co.kr
// @contact.email contact@ibookee.co.kr

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

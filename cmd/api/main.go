package main

import (
	"github.com/Anurg29/Aluminiconnect/internal/pkg/logger"
	"github.com/Anurg29/Aluminiconnect/internal/server"
)

// @title AlumniConnect API
// @version 1.0
// @description Alumni-student networking platform with a verified member directory, a job board and direct messaging.

// @contact.name AlumniConnect Support
// @contact.email support@alumniconnect.com

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}

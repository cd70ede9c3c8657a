package main

import (
	"log"

	_ "taskapp/docs"
	"taskapp/internal/config"
	"taskapp/internal/server"
)

// @title           TaskApp API
// @version         1.0
// @description     Task management API with per-user tasks and statistics.

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}

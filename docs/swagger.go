package docs

import "github.com/swaggo/swag"

// @title           TaskApp API
// @version         1.0
// @description     API for managing per-user tasks, statistics and liveness

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Registration and login

// @tag.name Tasks
// @tag.description Task management operations

// @tag.name Stats
// @tag.description Aggregate task counters

// @tag.name Health
// @tag.description Liveness probe

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}

package main

// @title Construction Billing API
// @version 1.0
// @description Approval and settlement of contractor bills and weekly labour records.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}

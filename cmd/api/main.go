package main

import (
	_ "github.com/vamshikrishnasingam/ClaimSwift/docs"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ClaimSwift API
// @version         1.0
// @description     Vehicle insurance claim submission workflow (ownership verification, damage video analysis, claim filing) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Identifies the user whose claim session is being operated on.

func main() {
	routes.Run()
}

package routes

import (
	"log"
	"os"

	_ "github.com/vamshikrishnasingam/ClaimSwift/docs" // This will be auto-generated
	"github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/handlers"
	repository "github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/persistence/repository"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/infrastructure/analysis"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/infrastructure/database"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/infrastructure/media"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	claimRepo := repository.NewClaimDynamoRepository(ddb)

	mediaStore, err := media.NewStoreFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	analysisClient, err := analysis.NewClientFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize analysis client: %v", err)
	}

	workflowUseCase := usecase.NewWorkflowManager(vehicleRepo, claimRepo, analysisClient, mediaStore, mediaPermissionGranted())
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)
	claimUseCase := usecase.NewClaimQueryUseCase(claimRepo)

	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	claimHandler := handlers.NewClaimHandler(claimUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, workflowHandler, vehicleHandler, claimHandler)
}

// mediaPermissionGranted reports whether video acquisition is enabled.
// MEDIA_CAPTURE_PERMISSION=denied turns every acquire into a permission
// failure, standing in for a client whose camera/gallery access was revoked.
func mediaPermissionGranted() bool {
	return os.Getenv("MEDIA_CAPTURE_PERMISSION") != "denied"
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

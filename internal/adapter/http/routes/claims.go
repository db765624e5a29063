package routes

import (
	"github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkflow = "/workflow"
	PathVehicles = "/vehicles"
	PathClaims   = "/claims"
)

func addClaimRoutes(rg *gin.RouterGroup, workflowHandler *handlers.WorkflowHandler, vehicleHandler *handlers.VehicleHandler, claimHandler *handlers.ClaimHandler) {
	workflow := rg.Group(PathWorkflow)
	{
		// One claim session per user, keyed by the X-User-ID header.
		workflow.GET("", workflowHandler.GetWorkflow)
		workflow.POST("/verify", workflowHandler.VerifyVehicle)
		workflow.POST("/media", workflowHandler.AcquireMedia)
		workflow.DELETE("/media", workflowHandler.DiscardMedia)
		workflow.POST("/submit", workflowHandler.SubmitAnalysis)
		workflow.POST("/commit", workflowHandler.CommitClaim)
		workflow.POST("/reset", workflowHandler.ResetWorkflow)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.RegisterVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
	}

	claims := rg.Group(PathClaims)
	{
		claims.GET("", claimHandler.ListClaims)
		claims.GET("/:claim_id", claimHandler.GetClaimByID)
	}
}

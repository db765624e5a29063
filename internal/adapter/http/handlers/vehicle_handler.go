package handlers

import (
	"errors"
	"net/http"

	request "github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/dto/request"
	response "github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/dto/response"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase"
	"github.com/vamshikrishnasingam/ClaimSwift/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)

// VehicleHandler handles HTTP requests for the vehicle registry.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var payload request.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	brand, model, plate := payload.Normalized()
	vehicle, err := h.usecase.Register(c.Request.Context(), userID, brand, model, plate)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	vehicles, err := h.usecase.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrEmptyVehicleFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleAlreadyRegistered):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_REGISTERED", "Vehicle already registered for this owner", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

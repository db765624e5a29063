package handlers

import (
	"errors"
	"net/http"

	response "github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/dto/response"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase"
	"github.com/vamshikrishnasingam/ClaimSwift/pkg"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles HTTP read access to filed claims. Writes happen only
// through the workflow commit.

type ClaimHandler struct {
	usecase usecase.IClaimQueryUseCase
}

func NewClaimHandler(uc usecase.IClaimQueryUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

func (h *ClaimHandler) ListClaims(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	claims, err := h.usecase.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaims(claims))
}

func (h *ClaimHandler) GetClaimByID(c *gin.Context) {
	if _, ok := userIDFrom(c); !ok {
		return
	}

	claim, err := h.usecase.GetByID(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidClaimID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

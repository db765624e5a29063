package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/dto/request"
	response "github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/dto/response"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
	"github.com/vamshikrishnasingam/ClaimSwift/pkg"

	"github.com/gin-gonic/gin"
)

const userIDHeader = "X-User-ID"

var (
	errMissingUserID        = pkg.NewDomainErrorSimple("MISSING_USER_ID", "X-User-ID header is required", http.StatusBadRequest)
	errInvalidVerifyPayload = pkg.NewDomainErrorSimple("INVALID_VERIFY_INPUT", "Invalid vehicle verification payload", http.StatusBadRequest)
	errInvalidMediaSource   = pkg.NewDomainErrorSimple("INVALID_MEDIA_SOURCE", "source must be camera or gallery", http.StatusBadRequest)
)

// WorkflowHandler handles HTTP requests for the claim submission workflow.
//
// One session per user, identified by the X-User-ID header; every endpoint
// operates on that user's session.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

func userIDFrom(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.GetHeader(userIDHeader))
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return "", false
	}
	return userID, true
}

// VerifyVehicle checks ownership of the described vehicle and moves the
// session to Verified.
func (h *WorkflowHandler) VerifyVehicle(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var payload request.VerifyVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVerifyPayload.HTTPStatus, errInvalidVerifyPayload.ToHTTPError())
		return
	}

	brand, model, plate := payload.Normalized()
	vehicle, err := h.usecase.Verify(c.Request.Context(), userID, brand, model, plate)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

// AcquireMedia stages a damage video for the session. Multipart form with a
// "video" file part and a "source" field (camera or gallery). A request with
// no video part is treated as a cancelled picker.
func (h *WorkflowHandler) AcquireMedia(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	source := entities.MediaSource(strings.TrimSpace(c.PostForm("source")))
	if source == "" {
		source = entities.MediaSourceCamera
	}
	if source != entities.MediaSourceCamera && source != entities.MediaSourceGallery {
		c.JSON(errInvalidMediaSource.HTTPStatus, errInvalidMediaSource.ToHTTPError())
		return
	}

	var upload io.Reader
	filename := ""
	file, header, err := c.Request.FormFile("video")
	if err == nil {
		defer file.Close()
		upload = file
		filename = header.Filename
	}

	handle, err := h.usecase.Acquire(c.Request.Context(), userID, source, upload, filename)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMedia(handle))
}

// DiscardMedia drops the staged video and returns the session to Verified.
func (h *WorkflowHandler) DiscardMedia(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.Discard(c.Request.Context(), userID); err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitAnalysis sends the staged video to the damage-analysis service and
// returns the aggregated estimate.
func (h *WorkflowHandler) SubmitAnalysis(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	estimate, err := h.usecase.Submit(c.Request.Context(), userID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// CommitClaim files the claim built from the current estimate.
func (h *WorkflowHandler) CommitClaim(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	claim, err := h.usecase.Commit(c.Request.Context(), userID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClaim(claim))
}

// ResetWorkflow abandons the session from any state.
func (h *WorkflowHandler) ResetWorkflow(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.Reset(c.Request.Context(), userID); err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetWorkflow returns the session view for the current user.
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	snap, err := h.usecase.Snapshot(c.Request.Context(), userID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrEmptyVehicleFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "No registered vehicle matches the given details", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyVerified):
		return pkg.NewDomainErrorSimple("ALREADY_VERIFIED", "A vehicle is already verified for this session", http.StatusConflict)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Media capture permission denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUserCancelled):
		return pkg.NewDomainErrorSimple("MEDIA_CANCELLED", "No video provided", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrUnsupportedMedia):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_MEDIA", "Upload is not a video", http.StatusUnsupportedMediaType)
	case errors.Is(err, interfaces.ErrMediaMissing):
		return pkg.NewDomainErrorSimple("MEDIA_MISSING", "Staged video no longer exists", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "An analysis submission is already in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleResponse):
		return pkg.NewDomainErrorSimple("STALE_RESPONSE", "The session was reset while the analysis was in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleEstimate):
		return pkg.NewDomainErrorSimple("STALE_ESTIMATE", "The estimate no longer matches the staged video", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoDamageDetected):
		return pkg.NewDomainError("NO_DAMAGE_DETECTED", "No damage was detected in the video", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMalformedEstimate), errors.Is(err, interfaces.ErrAnalysisMalformed):
		return pkg.NewDomainError("ANALYSIS_MALFORMED", "The analysis service returned an unusable response", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrAnalysisRejected):
		return pkg.NewDomainError("ANALYSIS_REJECTED", "The analysis service rejected the upload", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrAnalysisTransport):
		return pkg.NewDomainError("ANALYSIS_UNAVAILABLE", "The analysis service is unreachable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "The claim could not be saved", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrContractViolation):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current workflow state", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

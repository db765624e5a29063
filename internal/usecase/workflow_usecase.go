package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
)

var (
	ErrEmptyVehicleFields = errors.New("brand, model and plate number are required")
	ErrVehicleNotFound    = errors.New("vehicle not found for user")
	ErrAlreadyVerified    = errors.New("vehicle already verified for this session")
	ErrPermissionDenied   = errors.New("media capture permission denied")
	ErrUserCancelled      = errors.New("media acquisition cancelled")
	ErrNoDamageDetected   = errors.New("no damage detected")
	ErrSubmissionInFlight = errors.New("analysis submission already in flight")
	ErrStaleResponse      = errors.New("analysis response arrived after reset")
	ErrStaleEstimate      = errors.New("estimate no longer matches the current video")
	ErrMalformedEstimate  = errors.New("analysis produced an unusable estimate")
	ErrPersistence        = errors.New("claim could not be persisted")
	ErrContractViolation  = errors.New("operation not allowed in current workflow state")
)

// WorkflowState is the phase of one claim submission session.

type WorkflowState string

const (
	StateIdle      WorkflowState = "Idle"
	StateVerified  WorkflowState = "Verified"
	StateCapturing WorkflowState = "Capturing"
	StateAnalyzing WorkflowState = "Analyzing"
	StateEstimated WorkflowState = "Estimated"
	StateCompleted WorkflowState = "Completed"
)

// WorkflowSnapshot is a read-only view of a workflow instance for clients
// rendering the current step.
type WorkflowSnapshot struct {
	State    WorkflowState
	Vehicle  entities.VehicleRef
	Media    entities.MediaHandle
	Estimate *entities.DamageEstimate
	Claim    *entities.ClaimRecord
}

// estimateRecord pins a damage estimate to the media sequence it was computed
// from, so commit can refuse an estimate for a video that was since replaced.
type estimateRecord struct {
	estimate entities.DamageEstimate
	mediaSeq uint64
}

// ClaimWorkflow is one user's claim submission session, modeled as an
// explicit state machine:
//
//	Idle -> Verified -> Capturing -> Analyzing -> Estimated -> Completed
//
// Reset returns to Idle from any state. Re-acquiring media from Capturing or
// Estimated discards the previous video and estimate. The analysis call runs
// outside the lock; the generation counter decides whether its result still
// applies when it lands.
type ClaimWorkflow struct {
	mu sync.Mutex

	userID            string
	permissionGranted bool

	state      WorkflowState
	generation uint64
	mediaSeq   uint64
	inFlight   bool

	vehicle  entities.VehicleRef
	media    entities.MediaHandle
	estimate *estimateRecord
	claim    *entities.ClaimRecord

	vehicles   interfaces.IVehicleRepository
	claims     interfaces.IClaimRepository
	gateway    interfaces.IAnalysisGateway
	mediaStore interfaces.IMediaStore
}

func NewClaimWorkflow(userID string, vehicles interfaces.IVehicleRepository, claims interfaces.IClaimRepository, gateway interfaces.IAnalysisGateway, mediaStore interfaces.IMediaStore, permissionGranted bool) *ClaimWorkflow {
	return &ClaimWorkflow{
		userID:            userID,
		permissionGranted: permissionGranted,
		state:             StateIdle,
		vehicles:          vehicles,
		claims:            claims,
		gateway:           gateway,
		mediaStore:        mediaStore,
	}
}

// Verify checks that the user owns a registered vehicle matching the given
// details. Only valid from Idle; a verified session keeps its vehicle until
// Reset.
func (w *ClaimWorkflow) Verify(ctx context.Context, brand, model, plateNumber string) (entities.VehicleRef, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	plateNumber = strings.TrimSpace(plateNumber)
	if brand == "" || model == "" || plateNumber == "" {
		return entities.VehicleRef{}, ErrEmptyVehicleFields
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateIdle {
		return entities.VehicleRef{}, ErrAlreadyVerified
	}

	v, err := w.vehicles.GetByOwnerAndPlate(ctx, w.userID, plateNumber)
	if err != nil {
		log.Printf("[workflow][usecase] vehicle lookup failed user_id=%s plate=%s err=%v", w.userID, plateNumber, err)
		return entities.VehicleRef{}, err
	}
	if v.ID == "" {
		log.Printf("[workflow][usecase] vehicle not found user_id=%s plate=%s", w.userID, plateNumber)
		return entities.VehicleRef{}, ErrVehicleNotFound
	}

	// Ownership is keyed by (owner, plate); brand and model come back from
	// the registered record, not from the caller's claim about them.
	w.vehicle = v
	w.state = StateVerified
	log.Printf("[workflow][usecase] vehicle verified user_id=%s vehicle_id=%s", w.userID, v.ID)
	return v, nil
}

// Acquire stages a new video for the session. A nil upload means the user
// cancelled the picker, which leaves the session untouched. Re-acquiring
// replaces the previous video and invalidates any estimate derived from it.
func (w *ClaimWorkflow) Acquire(ctx context.Context, source entities.MediaSource, upload io.Reader, filename string) (entities.MediaHandle, error) {
	if !w.permissionGranted {
		return entities.MediaHandle{}, ErrPermissionDenied
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateVerified, StateCapturing, StateEstimated:
	case StateAnalyzing:
		return entities.MediaHandle{}, ErrSubmissionInFlight
	default:
		return entities.MediaHandle{}, fmt.Errorf("%w: acquire from %s", ErrContractViolation, w.state)
	}

	if upload == nil {
		log.Printf("[workflow][usecase] media acquisition cancelled user_id=%s", w.userID)
		return entities.MediaHandle{}, ErrUserCancelled
	}

	h, err := w.mediaStore.Save(ctx, upload, filename, source)
	if err != nil {
		log.Printf("[workflow][usecase] media save failed user_id=%s err=%v", w.userID, err)
		return entities.MediaHandle{}, err
	}

	if !w.media.IsZero() {
		if rmErr := w.mediaStore.Remove(ctx, w.media); rmErr != nil {
			log.Printf("[workflow][usecase] stale media cleanup failed user_id=%s uri=%s err=%v", w.userID, w.media.LocalURI, rmErr)
		}
	}

	w.media = h
	w.mediaSeq++
	w.estimate = nil
	w.state = StateCapturing
	log.Printf("[workflow][usecase] media acquired user_id=%s source=%s seq=%d", w.userID, source, w.mediaSeq)
	return h, nil
}

// Discard drops the staged video and any estimate derived from it, returning
// to Verified. Calling it with nothing staged is a no-op.
func (w *ClaimWorkflow) Discard(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateAnalyzing:
		return ErrSubmissionInFlight
	case StateCapturing, StateEstimated:
	default:
		return nil
	}

	if !w.media.IsZero() {
		if err := w.mediaStore.Remove(ctx, w.media); err != nil {
			log.Printf("[workflow][usecase] media discard cleanup failed user_id=%s uri=%s err=%v", w.userID, w.media.LocalURI, err)
		}
	}
	w.media = entities.MediaHandle{}
	w.estimate = nil
	w.state = StateVerified
	log.Printf("[workflow][usecase] media discarded user_id=%s", w.userID)
	return nil
}

// Submit sends the staged video to the analysis service and aggregates the
// response into an estimate. The network exchange runs without holding the
// session lock; a Reset issued while it is in flight bumps the generation so
// the late result is dropped instead of resurrecting the old session.
func (w *ClaimWorkflow) Submit(ctx context.Context) (entities.DamageEstimate, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return entities.DamageEstimate{}, ErrSubmissionInFlight
	}
	if w.state != StateCapturing {
		state := w.state
		w.mu.Unlock()
		return entities.DamageEstimate{}, fmt.Errorf("%w: submit from %s", ErrContractViolation, state)
	}
	if w.vehicle.ID == "" || w.media.IsZero() {
		w.mu.Unlock()
		return entities.DamageEstimate{}, fmt.Errorf("%w: submit without vehicle or media", ErrContractViolation)
	}
	if err := w.mediaStore.Stat(ctx, w.media); err != nil {
		w.mu.Unlock()
		log.Printf("[workflow][usecase] staged media missing user_id=%s uri=%s err=%v", w.userID, w.media.LocalURI, err)
		return entities.DamageEstimate{}, err
	}

	gen := w.generation
	seq := w.mediaSeq
	media := w.media
	vehicle := w.vehicle
	w.inFlight = true
	w.state = StateAnalyzing
	w.mu.Unlock()

	log.Printf("[workflow][usecase] analysis submit start user_id=%s vehicle_id=%s seq=%d", w.userID, vehicle.ID, seq)
	result, callErr := w.analyze(ctx, media, vehicle)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if w.generation != gen {
		log.Printf("[workflow][usecase] dropping stale analysis response user_id=%s gen=%d current=%d", w.userID, gen, w.generation)
		return entities.DamageEstimate{}, ErrStaleResponse
	}

	if callErr != nil {
		log.Printf("[workflow][usecase] analysis submit failed user_id=%s err=%v", w.userID, callErr)
		w.state = StateCapturing
		return entities.DamageEstimate{}, callErr
	}

	if result.BestFrame == nil {
		log.Printf("[workflow][usecase] no damage detected user_id=%s msg=%q", w.userID, result.Message)
		w.state = StateCapturing
		return entities.DamageEstimate{}, fmt.Errorf("%w: %s", ErrNoDamageDetected, result.Message)
	}

	est, err := entities.AggregateEstimate(result.Message, *result.BestFrame)
	if err != nil {
		log.Printf("[workflow][usecase] estimate aggregation failed user_id=%s err=%v", w.userID, err)
		w.state = StateCapturing
		return entities.DamageEstimate{}, fmt.Errorf("%w: %v", ErrMalformedEstimate, err)
	}

	w.estimate = &estimateRecord{estimate: est, mediaSeq: seq}
	w.state = StateEstimated
	log.Printf("[workflow][usecase] estimate ready user_id=%s parts=%d total=%.2f", w.userID, len(est.PartEstimates), est.TotalCost)
	return est, nil
}

func (w *ClaimWorkflow) analyze(ctx context.Context, media entities.MediaHandle, vehicle entities.VehicleRef) (entities.AnalysisResult, error) {
	video, err := w.mediaStore.Open(ctx, media)
	if err != nil {
		return entities.AnalysisResult{}, err
	}
	defer video.Close()
	return w.gateway.AnalyzeVideo(ctx, video, media, vehicle)
}

// Commit files the claim built from the current estimate. The estimate must
// still belong to the staged video; the claim ID is generated before the
// persistence call so the record is identifiable even if the write's
// confirmation is lost.
func (w *ClaimWorkflow) Commit(ctx context.Context) (entities.ClaimRecord, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateEstimated {
		return entities.ClaimRecord{}, fmt.Errorf("%w: commit from %s", ErrContractViolation, w.state)
	}
	if w.estimate == nil {
		return entities.ClaimRecord{}, fmt.Errorf("%w: commit without estimate", ErrContractViolation)
	}
	if w.estimate.mediaSeq != w.mediaSeq {
		log.Printf("[workflow][usecase] refusing stale estimate user_id=%s estimate_seq=%d media_seq=%d", w.userID, w.estimate.mediaSeq, w.mediaSeq)
		return entities.ClaimRecord{}, ErrStaleEstimate
	}

	claimID := uuid.NewString()
	rec, err := entities.BuildClaimRecord(claimID, w.userID, w.vehicle, w.estimate.estimate)
	if err != nil {
		return entities.ClaimRecord{}, fmt.Errorf("%w: %v", ErrMalformedEstimate, err)
	}

	created, err := w.claims.Create(ctx, rec)
	if err != nil {
		log.Printf("[workflow][usecase] claim persist failed user_id=%s claim_id=%s err=%v", w.userID, claimID, err)
		return entities.ClaimRecord{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	w.claim = &created
	w.state = StateCompleted
	log.Printf("[workflow][usecase] claim committed user_id=%s claim_id=%s total=%s", w.userID, created.ClaimID, created.TotalCost)
	return created, nil
}

// Reset abandons the session from any state. It bumps the generation so an
// analysis response still in flight is dropped when it lands, and removes the
// staged video.
func (w *ClaimWorkflow) Reset(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	if !w.media.IsZero() {
		if err := w.mediaStore.Remove(ctx, w.media); err != nil {
			log.Printf("[workflow][usecase] reset media cleanup failed user_id=%s uri=%s err=%v", w.userID, w.media.LocalURI, err)
		}
	}
	w.vehicle = entities.VehicleRef{}
	w.media = entities.MediaHandle{}
	w.estimate = nil
	w.claim = nil
	w.inFlight = false
	w.state = StateIdle
	log.Printf("[workflow][usecase] session reset user_id=%s gen=%d", w.userID, w.generation)
	return nil
}

// Snapshot returns the current session view.
func (w *ClaimWorkflow) Snapshot() WorkflowSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := WorkflowSnapshot{
		State:   w.state,
		Vehicle: w.vehicle,
		Media:   w.media,
	}
	if w.estimate != nil {
		est := w.estimate.estimate
		snap.Estimate = &est
	}
	if w.claim != nil {
		claim := *w.claim
		snap.Claim = &claim
	}
	return snap
}

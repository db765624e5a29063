package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
)

var ErrInvalidUserID = errors.New("invalid user id")

// IWorkflowUseCase exposes the claim submission workflow, one session per
// user:
//   - verify vehicle ownership => Verify()
//   - record or pick a damage video => Acquire() / Discard()
//   - send it for damage analysis => Submit()
//   - file the claim from the estimate => Commit()
//   - abandon the session => Reset()

type IWorkflowUseCase interface {
	Verify(ctx context.Context, userID, brand, model, plateNumber string) (entities.VehicleRef, error)
	Acquire(ctx context.Context, userID string, source entities.MediaSource, upload io.Reader, filename string) (entities.MediaHandle, error)
	Discard(ctx context.Context, userID string) error
	Submit(ctx context.Context, userID string) (entities.DamageEstimate, error)
	Commit(ctx context.Context, userID string) (entities.ClaimRecord, error)
	Reset(ctx context.Context, userID string) error
	Snapshot(ctx context.Context, userID string) (WorkflowSnapshot, error)
}

// WorkflowManager owns the live ClaimWorkflow instances, keyed by user.
// Sessions are created lazily on first use and live for the process lifetime;
// Reset rewinds a session rather than deleting it.
type WorkflowManager struct {
	mu       sync.Mutex
	sessions map[string]*ClaimWorkflow

	vehicles          interfaces.IVehicleRepository
	claims            interfaces.IClaimRepository
	gateway           interfaces.IAnalysisGateway
	mediaStore        interfaces.IMediaStore
	permissionGranted bool
}

var _ IWorkflowUseCase = (*WorkflowManager)(nil)

func NewWorkflowManager(vehicles interfaces.IVehicleRepository, claims interfaces.IClaimRepository, gateway interfaces.IAnalysisGateway, mediaStore interfaces.IMediaStore, permissionGranted bool) *WorkflowManager {
	return &WorkflowManager{
		sessions:          make(map[string]*ClaimWorkflow),
		vehicles:          vehicles,
		claims:            claims,
		gateway:           gateway,
		mediaStore:        mediaStore,
		permissionGranted: permissionGranted,
	}
}

func (m *WorkflowManager) session(userID string) (*ClaimWorkflow, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.sessions[userID]
	if !ok {
		w = NewClaimWorkflow(userID, m.vehicles, m.claims, m.gateway, m.mediaStore, m.permissionGranted)
		m.sessions[userID] = w
	}
	return w, nil
}

func (m *WorkflowManager) Verify(ctx context.Context, userID, brand, model, plateNumber string) (entities.VehicleRef, error) {
	w, err := m.session(userID)
	if err != nil {
		return entities.VehicleRef{}, err
	}
	return w.Verify(ctx, brand, model, plateNumber)
}

func (m *WorkflowManager) Acquire(ctx context.Context, userID string, source entities.MediaSource, upload io.Reader, filename string) (entities.MediaHandle, error) {
	w, err := m.session(userID)
	if err != nil {
		return entities.MediaHandle{}, err
	}
	return w.Acquire(ctx, source, upload, filename)
}

func (m *WorkflowManager) Discard(ctx context.Context, userID string) error {
	w, err := m.session(userID)
	if err != nil {
		return err
	}
	return w.Discard(ctx)
}

func (m *WorkflowManager) Submit(ctx context.Context, userID string) (entities.DamageEstimate, error) {
	w, err := m.session(userID)
	if err != nil {
		return entities.DamageEstimate{}, err
	}
	return w.Submit(ctx)
}

func (m *WorkflowManager) Commit(ctx context.Context, userID string) (entities.ClaimRecord, error) {
	w, err := m.session(userID)
	if err != nil {
		return entities.ClaimRecord{}, err
	}
	return w.Commit(ctx)
}

func (m *WorkflowManager) Reset(ctx context.Context, userID string) error {
	w, err := m.session(userID)
	if err != nil {
		return err
	}
	return w.Reset(ctx)
}

func (m *WorkflowManager) Snapshot(ctx context.Context, userID string) (WorkflowSnapshot, error) {
	w, err := m.session(userID)
	if err != nil {
		return WorkflowSnapshot{}, err
	}
	return w.Snapshot(), nil
}

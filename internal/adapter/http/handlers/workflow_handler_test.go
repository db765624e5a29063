package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/adapter/http/handlers/mocks"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func workflowRouter(h *WorkflowHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	wf := r.Group("/v1/workflow")
	{
		wf.GET("", h.GetWorkflow)
		wf.POST("/verify", h.VerifyVehicle)
		wf.POST("/media", h.AcquireMedia)
		wf.DELETE("/media", h.DiscardMedia)
		wf.POST("/submit", h.SubmitAnalysis)
		wf.POST("/commit", h.CommitClaim)
		wf.POST("/reset", h.ResetWorkflow)
	}
	return r
}

func TestWorkflowHandler_VerifyVehicle(t *testing.T) {
	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/verify", bytes.NewBufferString(`{"car_brand":"Toyota","car_model":"Corolla","car_number":"ABC-1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/verify", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Verify(gomock.Any(), "user-1", "Toyota", "Corolla", "ZZZ-9999").
			Return(entities.VehicleRef{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/verify", bytes.NewBufferString(`{"car_brand":"Toyota","car_model":"Corolla","car_number":"ZZZ-9999"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("already verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Verify(gomock.Any(), "user-1", "Toyota", "Corolla", "ABC-1234").
			Return(entities.VehicleRef{}, usecase.ErrAlreadyVerified)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/verify", bytes.NewBufferString(`{"car_brand":"Toyota","car_model":"Corolla","car_number":"ABC-1234"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Verify(gomock.Any(), "user-1", "Toyota", "Corolla", "ABC-1234").
			Return(entities.VehicleRef{ID: "veh-1", OwnerID: "user-1", Brand: "Toyota", Model: "Corolla", PlateNumber: "ABC-1234"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/verify", bytes.NewBufferString(`{"car_brand":"Toyota","car_model":"Corolla","car_number":"ABC-1234"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["id"] != "veh-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func multipartVideo(t *testing.T, withFile bool, source string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if source != "" {
		if err := mw.WriteField("source", source); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withFile {
		part, err := mw.CreateFormFile("video", "crash.mp4")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("video-bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestWorkflowHandler_AcquireMedia(t *testing.T) {
	t.Run("invalid source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		body, contentType := multipartVideo(t, true, "dashcam")
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/media", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing file maps to cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Acquire(gomock.Any(), "user-1", entities.MediaSourceGallery, nil, "").
			Return(entities.MediaHandle{}, usecase.ErrUserCancelled)

		body, contentType := multipartVideo(t, false, "gallery")
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/media", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Acquire(gomock.Any(), "user-1", entities.MediaSourceCamera, gomock.Any(), "crash.mp4").
			Return(entities.MediaHandle{}, usecase.ErrPermissionDenied)

		body, contentType := multipartVideo(t, true, "camera")
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/media", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unsupported media", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Acquire(gomock.Any(), "user-1", entities.MediaSourceCamera, gomock.Any(), "crash.mp4").
			Return(entities.MediaHandle{}, interfaces.ErrUnsupportedMedia)

		body, contentType := multipartVideo(t, true, "camera")
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/media", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415, got %d", w.Code)
		}
	})

	t.Run("success streams the upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Acquire(gomock.Any(), "user-1", entities.MediaSourceCamera, gomock.Any(), "crash.mp4").DoAndReturn(
			func(_ any, _ string, source entities.MediaSource, upload io.Reader, _ string) (entities.MediaHandle, error) {
				data, err := io.ReadAll(upload)
				if err != nil || string(data) != "video-bytes" {
					t.Fatalf("upload body = %q err=%v", data, err)
				}
				return entities.MediaHandle{LocalURI: "/tmp/x.mp4", MimeType: "video/mp4", Source: source}, nil
			},
		)

		body, contentType := multipartVideo(t, true, "camera")
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/media", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["mime_type"] != "video/mp4" || resp["source"] != "camera" {
			t.Fatalf("unexpected body: %v", resp)
		}
		if _, leaked := resp["local_uri"]; leaked {
			t.Fatalf("local path must not be exposed")
		}
	})
}

func TestWorkflowHandler_SubmitAnalysis(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "in flight", err: usecase.ErrSubmissionInFlight, status: http.StatusConflict},
		{name: "no damage", err: usecase.ErrNoDamageDetected, status: http.StatusUnprocessableEntity},
		{name: "stale response", err: usecase.ErrStaleResponse, status: http.StatusConflict},
		{name: "transport", err: interfaces.ErrAnalysisTransport, status: http.StatusBadGateway},
		{name: "rejected", err: interfaces.ErrAnalysisRejected, status: http.StatusBadGateway},
		{name: "malformed", err: usecase.ErrMalformedEstimate, status: http.StatusBadGateway},
		{name: "wrong state", err: usecase.ErrContractViolation, status: http.StatusConflict},
		{name: "media missing", err: interfaces.ErrMediaMissing, status: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIWorkflowUseCase(ctrl)
			r := workflowRouter(NewWorkflowHandler(uc))

			uc.EXPECT().Submit(gomock.Any(), "user-1").Return(entities.DamageEstimate{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/workflow/submit", nil)
			req.Header.Set("X-User-ID", "user-1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "user-1").Return(entities.DamageEstimate{
			PartEstimates: []entities.PartEstimate{
				{PartName: "Hood", UnitPrice: 40, LineTotal: 40, Action: entities.PartActionRepair},
			},
			TotalCost: 40,
			Message:   "Damage detected",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/submit", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["total_cost"] != 40.0 {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestWorkflowHandler_CommitClaim(t *testing.T) {
	t.Run("stale estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Commit(gomock.Any(), "user-1").Return(entities.ClaimRecord{}, usecase.ErrStaleEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/commit", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Commit(gomock.Any(), "user-1").Return(entities.ClaimRecord{}, usecase.ErrPersistence)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/commit", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Commit(gomock.Any(), "user-1").Return(entities.ClaimRecord{
			ClaimID:   "claim-1",
			UserID:    "user-1",
			TotalCost: "100",
			Status:    entities.ClaimStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/commit", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["claim_id"] != "claim-1" || resp["total_cost"] != "100" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestWorkflowHandler_ResetAndSnapshot(t *testing.T) {
	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Reset(gomock.Any(), "user-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/reset", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("discard while analyzing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Discard(gomock.Any(), "user-1").Return(usecase.ErrSubmissionInFlight)

		req := httptest.NewRequest(http.MethodDelete, "/v1/workflow/media", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Snapshot(gomock.Any(), "user-1").Return(usecase.WorkflowSnapshot{
			State:   usecase.StateVerified,
			Vehicle: entities.VehicleRef{ID: "veh-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/workflow", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["state"] != "Verified" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

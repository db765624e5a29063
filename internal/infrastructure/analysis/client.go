package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
)

var ErrMissingAnalysisServiceURL = errors.New("missing ANALYSIS_SERVICE_URL")

const defaultTimeout = 120 * time.Second

// rejectedBodyLimit caps how much of an error body ends up in logs and
// wrapped errors.
const rejectedBodyLimit = 512

// Client talks to the damage-analysis service over its multipart upload
// endpoint. One video in, one estimate payload out; the exchange is not
// idempotent, retries are the caller's decision.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IAnalysisGateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientFromEnv reads ANALYSIS_SERVICE_URL, ANALYSIS_TIMEOUT_SECONDS and
// ANALYSIS_MOCK. Mock mode skips the external service and answers with a
// fixed single-part estimate, mirroring how the payment flow stubs its
// provider in local runs.
func NewClientFromEnv() (*Client, error) {
	if isAnalysisMockEnabled() {
		log.Printf("[analysis][client] mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	baseURL := strings.TrimSpace(os.Getenv("ANALYSIS_SERVICE_URL"))
	if baseURL == "" {
		log.Printf("[analysis][client] missing ANALYSIS_SERVICE_URL")
		return nil, ErrMissingAnalysisServiceURL
	}

	timeout := defaultTimeout
	if v := strings.TrimSpace(os.Getenv("ANALYSIS_TIMEOUT_SECONDS")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	log.Printf("[analysis][client] initialized url=%s timeout=%s", baseURL, timeout)
	return NewClient(baseURL, timeout), nil
}

func (c *Client) AnalyzeVideo(ctx context.Context, video io.Reader, media entities.MediaHandle, vehicle entities.VehicleRef) (entities.AnalysisResult, error) {
	if c.mockMode {
		return mockResult(vehicle), nil
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("video", filenameFor(media))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, video); err != nil {
			pw.CloseWithError(err)
			return
		}
		fields := map[string]string{
			"car_name":   vehicle.Brand,
			"car_model":  vehicle.Model,
			"car_number": vehicle.PlateNumber,
		}
		for k, v := range fields {
			if err := mw.WriteField(k, v); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload_video", pr)
	if err != nil {
		return entities.AnalysisResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	log.Printf("[analysis][client] upload start vehicle_id=%s uri=%s", vehicle.ID, media.LocalURI)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[analysis][client] upload transport failure err=%v", err)
		return entities.AnalysisResult{}, fmt.Errorf("%w: %v", interfaces.ErrAnalysisTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, rejectedBodyLimit))
		log.Printf("[analysis][client] upload rejected status=%d body=%q", resp.StatusCode, snippet)
		return entities.AnalysisResult{}, fmt.Errorf("%w: status %d: %s", interfaces.ErrAnalysisRejected, resp.StatusCode, snippet)
	}

	var wire analysisResponseWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		log.Printf("[analysis][client] response decode failed err=%v", err)
		return entities.AnalysisResult{}, fmt.Errorf("%w: %v", interfaces.ErrAnalysisMalformed, err)
	}

	result, err := wire.toResult()
	if err != nil {
		log.Printf("[analysis][client] response mapping failed err=%v", err)
		return entities.AnalysisResult{}, fmt.Errorf("%w: %v", interfaces.ErrAnalysisMalformed, err)
	}
	log.Printf("[analysis][client] upload success vehicle_id=%s damage=%t", vehicle.ID, result.BestFrame != nil)
	return result, nil
}

func filenameFor(media entities.MediaHandle) string {
	if media.LocalURI == "" {
		return "video.mp4"
	}
	parts := strings.Split(media.LocalURI, "/")
	return parts[len(parts)-1]
}

// analysisResponseWire mirrors the service's JSON. part_prices arrives as a
// JSON object keyed by part name; object key order is meaningful to clients
// rendering the estimate, so decoding goes through the token stream instead
// of a map.
type analysisResponseWire struct {
	Message   string         `json:"message"`
	BestFrame *bestFrameWire `json:"best_frame"`
}

type bestFrameWire struct {
	MaskedImage string         `json:"masked_image"`
	Frame       string         `json:"frame"`
	PartPrices  partPricesWire `json:"part_prices"`
}

type partPriceWire struct {
	Price           float64 `json:"price"`
	Total           float64 `json:"total"`
	RepairOrReplace string  `json:"repair_or_replace"`
}

type partPricesWire []entities.PartPrice

func (p *partPricesWire) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("part_prices: expected object, got %v", tok)
	}

	out := make([]entities.PartPrice, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("part_prices: unexpected key %v", keyTok)
		}

		var entry partPriceWire
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("part_prices entry %q: %w", name, err)
		}
		out = append(out, entities.PartPrice{
			PartName:        name,
			Price:           entry.Price,
			Total:           entry.Total,
			RepairOrReplace: entry.RepairOrReplace,
		})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

func (w analysisResponseWire) toResult() (entities.AnalysisResult, error) {
	result := entities.AnalysisResult{Message: w.Message}
	if w.BestFrame == nil {
		return result, nil
	}

	masked, err := base64.StdEncoding.DecodeString(w.BestFrame.MaskedImage)
	if err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("masked_image: %w", err)
	}
	frame, err := base64.StdEncoding.DecodeString(w.BestFrame.Frame)
	if err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("frame: %w", err)
	}

	result.BestFrame = &entities.BestFrame{
		MaskedImage: masked,
		Frame:       frame,
		PartPrices:  []entities.PartPrice(w.BestFrame.PartPrices),
	}
	return result, nil
}

func mockResult(vehicle entities.VehicleRef) entities.AnalysisResult {
	log.Printf("[analysis][client] mock analysis vehicle_id=%s", vehicle.ID)
	return entities.AnalysisResult{
		Message: "Damage detected",
		BestFrame: &entities.BestFrame{
			MaskedImage: []byte("mock-masked-frame"),
			Frame:       []byte("mock-frame"),
			PartPrices: []entities.PartPrice{
				{PartName: "Front Bumper", Price: 150, Total: 150, RepairOrReplace: "replace"},
			},
		},
	}
}

func isAnalysisMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ANALYSIS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

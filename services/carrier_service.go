package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/brokerdesk/carrier-sales-api/config"
	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/brokerdesk/carrier-sales-api/shared"
	"github.com/sirupsen/logrus"
)

// CarrierService verifies motor carriers against the FMCSA QC registry.
//
// The verification policy is strict: only an explicit, well-shaped carrier
// object in the registry response yields Verified=true. Network errors,
// timeouts and unparseable bodies all produce a clean not-verified result so
// automated workflow callers always receive a uniform envelope.
type CarrierService struct {
	baseURL     string
	webKey      string
	httpClient  *http.Client
	rateLimiter *shared.RequestRateLimiter
	metrics     *shared.ServiceMetrics
}

// NewCarrierService creates a carrier verification service from runtime
// configuration. The outbound call is bounded by config.FMCSATimeout.
func NewCarrierService(cfg *config.Config) *CarrierService {
	service := &CarrierService{
		baseURL:     strings.TrimRight(cfg.FMCSABaseURL, "/"),
		webKey:      cfg.FMCSAAPIKey,
		httpClient:  shared.NewRegistryHTTPClient(config.FMCSATimeout),
		rateLimiter: shared.NewRequestRateLimiter(500 * time.Millisecond),
		metrics:     shared.NewServiceMetrics("CarrierService"),
	}

	logrus.WithFields(logrus.Fields{
		"component": "CarrierService",
		"base_url":  service.baseURL,
		"timeout":   config.FMCSATimeout,
	}).Info("Carrier verification service initialized")

	return service
}

// Verify looks up mcNumber in the FMCSA registry and normalizes the response
// into a VerificationResult. A non-nil error is returned only for an invalid
// identifier; every upstream failure is absorbed into a not-verified result.
func (s *CarrierService) Verify(ctx context.Context, mcNumber string) (*models.VerificationResult, error) {
	mcNumber = strings.TrimSpace(mcNumber)
	if mcNumber == "" {
		return nil, shared.NewServiceError(
			shared.ErrorCategoryValidation,
			"MC_NUMBER_REQUIRED",
			"mc_number required",
			"CarrierService",
			"Verify",
			nil,
		)
	}

	s.rateLimiter.EnforceRateLimit()

	started := time.Now()
	result := s.verify(ctx, mcNumber)
	s.metrics.RecordRequest(result.Verified, time.Since(started))

	logrus.WithFields(logrus.Fields{
		"component": "CarrierService",
		"mc_number": mcNumber,
		"verified":  result.Verified,
	}).Info("Carrier verification completed")

	return result, nil
}

func (s *CarrierService) verify(ctx context.Context, mcNumber string) *models.VerificationResult {
	body, err := s.fetchRegistry(ctx, mcNumber)
	if err != nil {
		shared.WrapError(err, shared.ErrorCategoryNetwork, "FMCSA_REQUEST_FAILED", "CarrierService", "Verify").LogError()
		return &models.VerificationResult{
			Verified: false,
			Carrier:  nil,
			Message:  fmt.Sprintf("FMCSA API error: %v", err),
		}
	}

	carrier, ok := extractCarrierObject(body)
	if !ok {
		return &models.VerificationResult{
			Verified: false,
			Carrier:  nil,
			Message:  "Carrier not found in FMCSA",
		}
	}

	return &models.VerificationResult{
		Verified: true,
		Carrier: &models.CarrierProfile{
			MCNumber:  mcNumber,
			LegalName: firstNonEmpty(fieldAsString(carrier, "legalName"), fieldAsString(carrier, "name"), "Unknown"),
			DOTNumber: firstNonEmpty(fieldAsString(carrier, "dotNumber"), "N/A"),
			City:      firstNonEmpty(fieldAsString(carrier, "phyCity"), "N/A"),
			State:     firstNonEmpty(fieldAsString(carrier, "phyState"), "N/A"),
		},
		Message: "Carrier verified via FMCSA",
	}
}

// fetchRegistry performs the single outbound registry call. No retries: a
// failed attempt reports as not-verified immediately.
func (s *CarrierService) fetchRegistry(ctx context.Context, mcNumber string) ([]byte, error) {
	endpoint := s.baseURL + "/" + url.PathEscape(mcNumber)
	if s.webKey != "" {
		endpoint += "?webKey=" + url.QueryEscape(s.webKey)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build FMCSA request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := s.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	return io.ReadAll(response.Body)
}

// extractCarrierObject normalizes the heterogeneous FMCSA response body into
// a carrier object. The accepted shapes are enumerated explicitly:
//
//	{"content": {"carrier": {...}}}
//	{"content": {...}}
//	{"content": [{"carrier": {...}}, ...]}
//	{"content": [{...}, ...]}
//
// Anything else (non-JSON body, non-object top level, missing or empty
// content) is rejected, which reports as carrier-not-found.
func extractCarrierObject(body []byte) (map[string]json.RawMessage, bool) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, false
	}

	content, exists := top["content"]
	if !exists {
		return nil, false
	}

	candidate, ok := asObject(content)
	if !ok {
		// content is not an object; the only other accepted shape is a
		// non-empty array whose first element is an object.
		var elements []json.RawMessage
		if err := json.Unmarshal(content, &elements); err != nil || len(elements) == 0 {
			return nil, false
		}
		if candidate, ok = asObject(elements[0]); !ok {
			return nil, false
		}
	}

	if nested, exists := candidate["carrier"]; exists {
		if carrier, ok := asObject(nested); ok {
			return carrier, true
		}
	}

	return candidate, true
}

// asObject decodes raw as a JSON object. A JSON null decodes into a nil map
// without error, so that case is rejected explicitly.
func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil || object == nil {
		return nil, false
	}
	return object, true
}

// fieldAsString reads a carrier field that may arrive as a JSON string or
// number (FMCSA serializes dotNumber both ways).
func fieldAsString(object map[string]json.RawMessage, key string) string {
	raw, exists := object[key]
	if !exists {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return strconv.FormatFloat(asNumber, 'f', -1, 64)
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

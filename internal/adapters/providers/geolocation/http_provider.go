package geolocation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sporkart/facility-discovery/internal/domain/providers"
	apperrors "github.com/sporkart/facility-discovery/pkg/errors"
)

const (
	googleGeolocateURL = "https://www.googleapis.com/geolocation/v1/geolocate"
	defaultHTTPTimeout = 8 * time.Second
)

// HTTPPositionProvider resolves the user's position through the Google
// Geolocation API. Responses are never cached: every call is a fresh fix.
type HTTPPositionProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewHTTPPositionProvider creates a new HTTP position provider.
func NewHTTPPositionProvider(apiKey string) providers.PositionProvider {
	return NewHTTPPositionProviderWithOptions(apiKey, "", nil)
}

// NewHTTPPositionProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewHTTPPositionProviderWithOptions(apiKey, baseURL string, httpClient *http.Client) providers.PositionProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleGeolocateURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPPositionProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

type geolocateRequest struct {
	ConsiderIP bool `json:"considerIp"`
}

type geolocateResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}

// CurrentPosition requests one position fix from the geolocation endpoint.
func (p *HTTPPositionProvider) CurrentPosition(ctx context.Context, opts providers.PositionOptions) (*providers.Coordinates, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	payload, err := json.Marshal(geolocateRequest{ConsiderIP: true})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode geolocate request", err)
	}

	endpoint := p.baseURL
	if p.apiKey != "" {
		endpoint = fmt.Sprintf("%s?key=%s", p.baseURL, p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build geolocate request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("position request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalError(fmt.Sprintf("position provider returned status %d", resp.StatusCode), nil)
	}

	var body geolocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewExternalError("failed to decode position response", err)
	}

	return &providers.Coordinates{
		Latitude:  body.Location.Lat,
		Longitude: body.Location.Lng,
	}, nil
}

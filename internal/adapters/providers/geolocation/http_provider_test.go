package geolocation

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporkart/facility-discovery/internal/domain/providers"
	apperrors "github.com/sporkart/facility-discovery/pkg/errors"
)

func TestHTTPPositionProvider_CurrentPosition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"lat":41.0082,"lng":28.9784},"accuracy":20}`))
	}))
	defer server.Close()

	provider := NewHTTPPositionProviderWithOptions("", server.URL, server.Client())

	coords, err := provider.CurrentPosition(context.Background(), providers.DefaultPositionOptions())
	require.NoError(t, err)
	assert.Equal(t, 41.0082, coords.Latitude)
	assert.Equal(t, 28.9784, coords.Longitude)
}

func TestHTTPPositionProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	provider := NewHTTPPositionProviderWithOptions("", server.URL, server.Client())

	_, err := provider.CurrentPosition(context.Background(), providers.DefaultPositionOptions())
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
}

func TestHTTPPositionProvider_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect and
		// cancel the request context; otherwise server.Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	provider := NewHTTPPositionProviderWithOptions("", server.URL, server.Client())

	opts := providers.PositionOptions{Timeout: 50 * time.Millisecond}
	_, err := provider.CurrentPosition(context.Background(), opts)
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
}

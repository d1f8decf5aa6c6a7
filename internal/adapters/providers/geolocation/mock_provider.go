package geolocation

import (
	"context"

	"github.com/sporkart/facility-discovery/internal/domain/providers"
)

// MockPositionProvider implements a fixed-position provider for development
// and tests.
type MockPositionProvider struct {
	position providers.Coordinates
	err      error
}

// NewMockPositionProvider creates a provider that always resolves to the
// Kadıköy waterfront.
func NewMockPositionProvider() *MockPositionProvider {
	return &MockPositionProvider{
		position: providers.Coordinates{Latitude: 40.9819, Longitude: 29.0253},
	}
}

// NewMockPositionProviderAt creates a provider resolving to a fixed coordinate.
func NewMockPositionProviderAt(lat, lon float64) *MockPositionProvider {
	return &MockPositionProvider{
		position: providers.Coordinates{Latitude: lat, Longitude: lon},
	}
}

// NewFailingPositionProvider creates a provider that always reports the given
// acquisition failure.
func NewFailingPositionProvider(err error) *MockPositionProvider {
	return &MockPositionProvider{err: err}
}

// CurrentPosition returns the configured position or failure.
func (m *MockPositionProvider) CurrentPosition(ctx context.Context, opts providers.PositionOptions) (*providers.Coordinates, error) {
	if m.err != nil {
		return nil, m.err
	}
	pos := m.position
	return &pos, nil
}

package providers

import (
	"context"
	"time"
)

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// PositionOptions mirror the options handed to the underlying platform
// provider when requesting a position fix.
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaxAge bounds how stale a cached fix may be. Zero forces a fresh fix.
	MaxAge time.Duration
}

// DefaultPositionOptions returns the standard single-shot acquisition options:
// high accuracy, a 5 second bound and no cached positions.
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{
		HighAccuracy: true,
		Timeout:      5 * time.Second,
		MaxAge:       0,
	}
}

// PositionProvider is the external source of the user's current position.
type PositionProvider interface {
	// CurrentPosition requests one position fix. It either resolves to a
	// coordinate or reports a failure (denied, unavailable, timeout).
	CurrentPosition(ctx context.Context, opts PositionOptions) (*Coordinates, error)
}

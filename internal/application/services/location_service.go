package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
	"github.com/sporkart/facility-discovery/internal/domain/providers"
	apperrors "github.com/sporkart/facility-discovery/pkg/errors"
)

// AcquisitionState is the caller-visible state of position acquisition.
type AcquisitionState int

const (
	// StateIdle is the initial state: no acquisition has been requested yet.
	StateIdle AcquisitionState = iota

	// StateLoading means a request is in flight.
	StateLoading

	// StateSuccess means the last request resolved to a position.
	StateSuccess

	// StateError means the last request failed or the platform has no
	// location capability.
	StateError
)

func (s AcquisitionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// LocationService drives single-shot position acquisition through the
// configured provider. A nil provider models a platform without location
// capability: every request fails immediately without entering loading.
type LocationService struct {
	provider providers.PositionProvider
	opts     providers.PositionOptions

	mu       sync.Mutex
	state    AcquisitionState
	position *entities.Location
	lastErr  error
}

// NewLocationService creates a new location service
func NewLocationService(provider providers.PositionProvider, opts providers.PositionOptions) *LocationService {
	return &LocationService{
		provider: provider,
		opts:     opts,
		state:    StateIdle,
	}
}

// Acquire requests one fresh position fix. A call while a request is already
// in flight is rejected rather than racing two provider calls. On failure the
// stored position is cleared; a new user-initiated call is the only retry
// path.
func (s *LocationService) Acquire(ctx context.Context) (*entities.Location, error) {
	s.mu.Lock()
	if s.state == StateLoading {
		s.mu.Unlock()
		return nil, apperrors.NewValidationError("a position request is already in flight")
	}
	if s.provider == nil {
		s.state = StateError
		s.position = nil
		s.lastErr = apperrors.NewUnsupportedError("position acquisition is not available on this platform")
		err := s.lastErr
		s.mu.Unlock()
		return nil, err
	}
	s.state = StateLoading
	s.mu.Unlock()

	// The provider honors the requested timeout; the outer bound covers a
	// provider that never responds.
	reqCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	coords, err := s.provider.CurrentPosition(reqCtx, s.opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Warn().Err(err).Msg("position acquisition failed")
		s.state = StateError
		s.position = nil
		s.lastErr = err
		return nil, err
	}

	s.state = StateSuccess
	s.position = &entities.Location{Latitude: coords.Latitude, Longitude: coords.Longitude}
	s.lastErr = nil
	return s.position, nil
}

// State returns the current acquisition state.
func (s *LocationService) State() AcquisitionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Position returns the acquired position, or nil when none is known. Absence
// is explicit: there is no zero-value default coordinate.
func (s *LocationService) Position() *entities.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Err returns the failure of the last acquisition, if any.
func (s *LocationService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/misterclayt0n/fittrack/internal/models"
)

// StateKey is the key the whole AppState blob lives under.
const StateKey = "fitnessTrackerState"

// CorruptSuffix is appended to the state key when an unreadable blob is set
// aside before being overwritten.
const CorruptSuffix = ".corrupt"

var (
	// ErrNotFound is returned by a Backend when the key holds nothing.
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt marks a stored blob that could not be decoded.
	ErrCorrupt = errors.New("stored state is corrupt")
)

// Backend is a key-value store holding opaque blobs.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Storage reads and writes the AppState as a single JSON blob. Every Save is
// a full overwrite.
type Storage struct {
	backend Backend
	key     string
	log     zerolog.Logger
}

func NewStorage(backend Backend, log zerolog.Logger) *Storage {
	return &Storage{backend: backend, key: StateKey, log: log}
}

// Load returns the stored state. A missing blob yields an error matching
// ErrNotFound; an undecodable one an error matching ErrCorrupt.
func (s *Storage) Load(ctx context.Context) (*models.AppState, error) {
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("Failed to read state: %w", err)
	}

	state, err := Decode(data)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("bytes", len(data)).Int("workouts", len(state.Workouts)).Int("meals", len(state.Meals)).Msg("state loaded")
	return state, nil
}

func (s *Storage) Save(ctx context.Context, state *models.AppState) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("Failed to write state: %w", err)
	}
	s.log.Debug().Int("bytes", len(data)).Msg("state saved")
	return nil
}

// Backup copies the raw stored blob to the state key plus CorruptSuffix.
func (s *Storage) Backup(ctx context.Context) (string, error) {
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("Failed to read state for backup: %w", err)
	}
	backupKey := s.key + CorruptSuffix
	if err := s.backend.Put(ctx, backupKey, data); err != nil {
		return "", fmt.Errorf("Failed to write backup %s: %w", backupKey, err)
	}
	s.log.Warn().Str("key", backupKey).Int("bytes", len(data)).Msg("unreadable state backed up")
	return backupKey, nil
}

func (s *Storage) Close() error {
	return s.backend.Close()
}

func Encode(state *models.AppState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("Failed to encode state: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (*models.AppState, error) {
	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := validateState(&state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	state.Normalize()
	return &state, nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go-demobank/models"
)

// Adapter persists the whole aggregate state as one JSON blob at a fixed
// file path. Reads never fail from the caller's perspective: anything
// that cannot be loaded and parsed is reported as "no saved state".
type Adapter struct {
	path   string
	logger *slog.Logger
}

// NewAdapter returns an adapter bound to the given blob path.
func NewAdapter(path string, logger *slog.Logger) *Adapter {
	return &Adapter{path: path, logger: logger}
}

// Load reads the persisted state. The second return value is false when
// the file is missing, empty, unreadable, not valid JSON, or carries a
// different schema version; callers fall back to seed defaults.
func (a *Adapter) Load() (*models.State, bool) {
	raw, err := os.ReadFile(a.path)
	if err != nil {
		if !os.IsNotExist(err) {
			a.logger.Warn("could not read saved state, using defaults", "path", a.path, "error", err)
		}
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}

	var state models.State
	if err := json.Unmarshal(raw, &state); err != nil {
		a.logger.Warn("saved state is not valid JSON, using defaults", "path", a.path, "error", err)
		return nil, false
	}
	if state.Version != models.StateVersion {
		a.logger.Warn("saved state has unexpected schema version, using defaults",
			"path", a.path, "version", state.Version, "expected", models.StateVersion)
		return nil, false
	}
	return &state, true
}

// Save rewrites the entire blob. The error is returned so callers can
// observe persistence failures, but the store deliberately treats them
// as non-fatal: the in-memory state stays authoritative for the session.
func (a *Adapter) Save(state *models.State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create state directory '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(a.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write state to '%s': %w", a.path, err)
	}
	return nil
}

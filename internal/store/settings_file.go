// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// InMemoryPath keeps settings in process instead of on disk.
const InMemoryPath = ":memory:"

type settingsFile struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	current models.LocalSettings
}

// NewSettingsFile returns a [SettingsRepository] persisting to the JSON file
// at path. An empty path or [InMemoryPath] keeps settings in memory.
func NewSettingsFile(path string) SettingsRepository {
	if path == "" {
		path = InMemoryPath
	}

	return &settingsFile{
		path:     path,
		inMemory: path == InMemoryPath,
	}
}

func (s *settingsFile) Load(ctx context.Context) (models.LocalSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.inMemory {
		return cloneSettings(s.current), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.LocalSettings{}, nil
		}
		return models.LocalSettings{}, fmt.Errorf("read settings file: %w", err)
	}

	var settings models.LocalSettings
	if err = json.Unmarshal(data, &settings); err != nil {
		return models.LocalSettings{}, fmt.Errorf("%w: %w", ErrSettingsCorrupted, err)
	}

	return settings, nil
}

func (s *settingsFile) Save(ctx context.Context, settings models.LocalSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inMemory {
		s.current = cloneSettings(settings)
		return nil
	}

	return s.persist(settings)
}

// persist writes through a temporary file in the same directory so a crash
// never leaves a truncated settings file behind.
func (s *settingsFile) persist(settings models.LocalSettings) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod settings file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close settings file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

func cloneSettings(in models.LocalSettings) models.LocalSettings {
	out := in
	if in.PendingRebase != nil {
		checkpoint := *in.PendingRebase
		checkpoint.Done = slices.Clone(in.PendingRebase.Done)
		out.PendingRebase = &checkpoint
	}
	return out
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-folder-cleanup/pkg/helper"
)

var ErrInvalidInterval = errors.New("interval must be a positive number of seconds")

// Settings is the cleanup tuple, round-tripped through a JSON file so
// a restart keeps the previously accepted configuration.
type Settings struct {
	Folder   string   `json:"folder"`
	KeepList []string `json:"keep_list"`
	Interval int      `json:"interval"` // seconds
}

// IntervalDuration returns the delay between cycles.
func (s *Settings) IntervalDuration() time.Duration {
	return time.Duration(s.Interval) * time.Second
}

// LoadSettings reads the settings file. A missing file is reported as
// os.ErrNotExist so callers can fall back to interactive setup.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if settings.Interval == 0 {
		settings.Interval = 3600
	}
	if settings.Interval < 0 {
		return nil, ErrInvalidInterval
	}
	if settings.Folder == "" {
		return nil, errors.New("settings file has no folder")
	}

	return &settings, nil
}

// SaveSettings writes the settings file, creating its directory if
// needed.
func SaveSettings(path string, settings *Settings) error {
	if err := helper.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

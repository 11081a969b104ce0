// Package state keeps the few display preferences that outlive a single
// quote, such as whether the results screen opens with the breakdown shown.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mark3labs/quoter/internal/logger"
)

const fileName = "ui-state.json"

// UIState is the content of <data_dir>/ui-state.json.
type UIState struct {
	Results ResultsState `json:"results"`
}

// ResultsState is the results screen preference. The breakdown starts hidden
// so a customer sees the range before the arithmetic.
type ResultsState struct {
	ShowBreakdown bool `json:"show_breakdown"`
}

// DefaultUIState is what a first run sees.
func DefaultUIState() *UIState {
	return &UIState{}
}

// Path returns where the preferences for dataDir are stored.
func Path(dataDir string) string {
	return filepath.Join(dataDir, fileName)
}

// Load returns the saved preferences. A missing or unreadable file is not an
// error for the caller: the quote goes on with defaults and a warning is logged.
func Load(dataDir string) *UIState {
	data, err := os.ReadFile(Path(dataDir))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultUIState()
	}
	if err != nil {
		logger.Warn("Ignoring unreadable preferences: %v", err)
		return DefaultUIState()
	}

	ui := DefaultUIState()
	if err := json.Unmarshal(data, ui); err != nil {
		logger.Warn("Ignoring malformed preferences in %s: %v", Path(dataDir), err)
		return DefaultUIState()
	}
	return ui
}

// Save writes ui to dataDir, creating it if needed. The file is replaced via
// rename so an interrupted write leaves the previous preferences intact.
func Save(dataDir string, ui *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(ui, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	path := Path(dataDir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing preferences: %w", err)
	}

	logger.Debug("Preferences saved to %s", path)
	return nil
}

// SaveShowBreakdown records the results screen breakdown toggle, keeping any
// other saved preferences.
func SaveShowBreakdown(dataDir string, show bool) error {
	ui := Load(dataDir)
	ui.Results.ShowBreakdown = show
	return Save(dataDir, ui)
}

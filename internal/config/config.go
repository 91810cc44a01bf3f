package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// BoardConfig holds the tunables shared by every retro board match.
type BoardConfig struct {
	CardWidth               float64 `json:"card_width" yaml:"card_width"`
	CardHeight              float64 `json:"card_height" yaml:"card_height"`
	OverlapThresholdPercent float64 `json:"overlap_threshold_percent" yaml:"overlap_threshold_percent"`
	VoteBudget              int     `json:"vote_budget" yaml:"vote_budget"`
	MaxVotesPerGroup        int     `json:"max_votes_per_group" yaml:"max_votes_per_group"`
	LabelPreviewLength      int     `json:"label_preview_length" yaml:"label_preview_length"`
	LinkedLabelLength       int     `json:"linked_label_length" yaml:"linked_label_length"`
	MaxResponseLength       int     `json:"max_response_length" yaml:"max_response_length"`
	MaxTimerSeconds         int     `json:"max_timer_seconds" yaml:"max_timer_seconds"`
	TickRate                int     `json:"tick_rate" yaml:"tick_rate"`
	// IdleTerminateSeconds is how long a match with nobody online survives.
	IdleTerminateSeconds int `json:"idle_terminate_seconds" yaml:"idle_terminate_seconds"`
}

// DefaultBoardConfig returns the values used when no config file is loaded.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		CardWidth:               192,
		CardHeight:              120,
		OverlapThresholdPercent: 70,
		VoteBudget:              4,
		MaxVotesPerGroup:        4,
		LabelPreviewLength:      30,
		LinkedLabelLength:       60,
		MaxResponseLength:       500,
		MaxTimerSeconds:         3600,
		TickRate:                5,
		IdleTerminateSeconds:    300,
	}
}

var (
	cfg      *BoardConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadBoardConfig loads the board configuration from the given path.
// Fields missing from the file keep their default values.
func LoadBoardConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read board config: %w", err)
			return
		}

		c, err := ParseBoardConfig(path, data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// ParseBoardConfig decodes a config file body. Files named *.yaml or *.yml
// are read as YAML, anything else as JSON.
func ParseBoardConfig(name string, data []byte) (BoardConfig, error) {
	c := DefaultBoardConfig()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return BoardConfig{}, fmt.Errorf("failed to unmarshal board config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return BoardConfig{}, fmt.Errorf("failed to unmarshal board config: %w", err)
		}
	}
	if err := c.Validate(); err != nil {
		return BoardConfig{}, err
	}
	return c, nil
}

// GetBoardConfig returns the loaded configuration, or the defaults if none was loaded.
func GetBoardConfig() BoardConfig {
	if cfg == nil {
		return DefaultBoardConfig()
	}
	return *cfg
}

// Validate rejects configurations the engine cannot run with.
func (c BoardConfig) Validate() error {
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		return fmt.Errorf("card dimensions must be positive")
	}
	if c.OverlapThresholdPercent <= 0 || c.OverlapThresholdPercent > 100 {
		return fmt.Errorf("overlap threshold must be in (0,100]")
	}
	if c.VoteBudget <= 0 || c.MaxVotesPerGroup <= 0 {
		return fmt.Errorf("vote budget and per-group cap must be positive")
	}
	if c.LabelPreviewLength <= 0 || c.LinkedLabelLength <= 0 || c.MaxResponseLength <= 0 {
		return fmt.Errorf("length limits must be positive")
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBoardConfigIsValid(t *testing.T) {
	if err := DefaultBoardConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoardConfig)
	}{
		{name: "ZeroWidth", mutate: func(c *BoardConfig) { c.CardWidth = 0 }},
		{name: "ThresholdAbove100", mutate: func(c *BoardConfig) { c.OverlapThresholdPercent = 120 }},
		{name: "NoBudget", mutate: func(c *BoardConfig) { c.VoteBudget = 0 }},
		{name: "NoPreview", mutate: func(c *BoardConfig) { c.LabelPreviewLength = 0 }},
		{name: "NoTickRate", mutate: func(c *BoardConfig) { c.TickRate = 0 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := DefaultBoardConfig()
			test.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadBoardConfigKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board_config.json")
	if err := os.WriteFile(path, []byte(`{"vote_budget": 6}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := LoadBoardConfig(path); err != nil {
		t.Fatalf("load config: %v", err)
	}

	got := GetBoardConfig()
	if got.VoteBudget != 6 {
		t.Fatalf("VoteBudget = %d, want 6", got.VoteBudget)
	}
	if got.CardWidth != 192 || got.CardHeight != 120 {
		t.Fatalf("card size = %vx%v, want 192x120", got.CardWidth, got.CardHeight)
	}
}

func TestParseBoardConfigFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		budget  int
		wantErr bool
	}{
		{name: "JSON", file: "board.json", body: `{"vote_budget": 5}`, budget: 5},
		{name: "YAML", file: "board.yaml", body: "vote_budget: 7\nmax_votes_per_group: 2\n", budget: 7},
		{name: "YML", file: "board.YML", body: "vote_budget: 3\n", budget: 3},
		{name: "BadYAML", file: "board.yaml", body: "vote_budget: [", wantErr: true},
		{name: "InvalidValues", file: "board.yaml", body: "tick_rate: 0\n", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseBoardConfig(test.file, []byte(test.body))
			if test.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got.VoteBudget != test.budget {
				t.Fatalf("VoteBudget = %d, want %d", got.VoteBudget, test.budget)
			}
			if got.CardWidth != 192 {
				t.Fatalf("CardWidth = %v, want default 192", got.CardWidth)
			}
		})
	}
}

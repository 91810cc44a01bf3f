package domain

import (
	"math"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		to   Phase
		want bool
	}{
		{name: "SetupToInput", from: PhaseSetup, to: PhaseInput, want: true},
		{name: "InputToGrouping", from: PhaseInput, to: PhaseGrouping, want: true},
		{name: "GroupingToVoting", from: PhaseGrouping, to: PhaseVoting, want: true},
		{name: "VotingToResults", from: PhaseVoting, to: PhaseResults, want: true},
		{name: "SkipForward", from: PhaseSetup, to: PhaseGrouping, want: false},
		{name: "SkipToResults", from: PhaseInput, to: PhaseResults, want: false},
		{name: "Same", from: PhaseVoting, to: PhaseVoting, want: false},
		{name: "BackOne", from: PhaseVoting, to: PhaseGrouping, want: true},
		{name: "BackToSetupFromResults", from: PhaseResults, to: PhaseSetup, want: true},
		{name: "Unknown", from: PhaseInput, to: Phase("LOBBY"), want: false},
		{name: "ResultsIsTerminalForward", from: PhaseResults, to: PhaseResults, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := CanTransition(test.from, test.to); got != test.want {
				t.Fatalf("CanTransition(%s, %s) = %t, want %t", test.from, test.to, got, test.want)
			}
		})
	}
}

func TestNextPhase(t *testing.T) {
	if next, ok := NextPhase(PhaseInput); !ok || next != PhaseGrouping {
		t.Fatalf("NextPhase(INPUT) = %s,%t, want GROUPING,true", next, ok)
	}
	if _, ok := NextPhase(PhaseResults); ok {
		t.Fatal("RESULTS should have no next phase")
	}
}

func TestOverlapPercent(t *testing.T) {
	size := CardSize{Width: 192, Height: 120}

	tests := []struct {
		name string
		a    Position
		b    Position
		want float64
	}{
		{name: "Identical", a: Position{X: 100, Y: 100}, b: Position{X: 100, Y: 100}, want: 100},
		{name: "SlightOffset", a: Position{X: 105, Y: 105}, b: Position{X: 100, Y: 100}, want: 187.0 * 115.0 / (192.0 * 120.0) * 100},
		{name: "FortyPercent", a: Position{X: 100 + 192*0.6, Y: 100}, b: Position{X: 100, Y: 100}, want: 40},
		{name: "Disjoint", a: Position{X: 500, Y: 500}, b: Position{X: 100, Y: 100}, want: 0},
		{name: "Touching", a: Position{X: 292, Y: 100}, b: Position{X: 100, Y: 100}, want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := OverlapPercent(test.a, test.b, size)
			if math.Abs(got-test.want) > 1e-9 {
				t.Fatalf("OverlapPercent() = %f, want %f", got, test.want)
			}
		})
	}
}

func TestMergeCandidatePicksLargestOverlapAboveThreshold(t *testing.T) {
	size := CardSize{Width: 192, Height: 120}
	self := &Response{ID: "r0"}
	near := &Response{ID: "near", Position: Position{X: 110, Y: 110}}
	nearest := &Response{ID: "nearest", Position: Position{X: 101, Y: 101}}
	far := &Response{ID: "far", Position: Position{X: 400, Y: 400}}

	got, overlap := MergeCandidate(self, Position{X: 100, Y: 100}, []*Response{self, near, far, nearest}, size, 70)
	if got == nil || got.ID != "nearest" {
		t.Fatalf("MergeCandidate() = %v, want nearest", got)
	}
	if overlap < 70 {
		t.Fatalf("overlap = %f, want >= 70", overlap)
	}

	got, _ = MergeCandidate(self, Position{X: 100, Y: 100}, []*Response{far}, size, 70)
	if got != nil {
		t.Fatalf("MergeCandidate() = %s, want nil", got.ID)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 30); got != "short" {
		t.Fatalf("Preview() = %q, want short", got)
	}
	long := "The deployment pipeline was much faster this sprint"
	got := Preview(long, 30)
	if got != "The deployment pipeline was mu..." {
		t.Fatalf("Preview() = %q", got)
	}
}

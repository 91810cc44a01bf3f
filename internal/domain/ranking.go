package domain

import (
	"sort"
	"strings"
	"time"
)

// VirtualTargetPrefix marks a voting target addressed through a response
// rather than a persisted group.
const VirtualTargetPrefix = "individual-"

// TargetKind distinguishes the two shapes of a voting target.
type TargetKind int

const (
	TargetGroup TargetKind = iota
	TargetResponse
)

// VotingTarget is either a persisted group or a response that has not been
// materialized into a group yet.
type VotingTarget struct {
	Kind TargetKind
	ID   string
}

// ParseVotingTarget decodes the wire form of a target.
func ParseVotingTarget(raw string) VotingTarget {
	if strings.HasPrefix(raw, VirtualTargetPrefix) {
		return VotingTarget{Kind: TargetResponse, ID: strings.TrimPrefix(raw, VirtualTargetPrefix)}
	}
	return VotingTarget{Kind: TargetGroup, ID: raw}
}

// String returns the wire form of the target.
func (t VotingTarget) String() string {
	if t.Kind == TargetResponse {
		return VirtualTargetPrefix + t.ID
	}
	return t.ID
}

// LabelLimits bounds derived labels.
type LabelLimits struct {
	Preview int
	Linked  int
}

// RankedEntry is one votable / presentable unit: a real group or a virtual
// group built from ungrouped responses.
type RankedEntry struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"groupId,omitempty"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	VoteCount   int       `json:"voteCount"`
	ResponseIDs []string  `json:"responseIds"`
	Virtual     bool      `json:"virtual"`
	CreatedAt   time.Time `json:"-"`
}

// VotingTargets lists every real group with members followed by one virtual
// entry per connected component of ungrouped responses, so each response is
// represented exactly once.
func (b *Board) VotingTargets(limits LabelLimits) []RankedEntry {
	var entries []RankedEntry
	for _, g := range b.SortedGroups() {
		members := b.Members(g.ID)
		if len(members) == 0 {
			continue
		}
		entries = append(entries, RankedEntry{
			ID:          g.ID,
			GroupID:     g.ID,
			Label:       g.Label,
			Color:       g.Color,
			VoteCount:   g.VoteCount,
			ResponseIDs: responseIDs(members),
			CreatedAt:   g.CreatedAt,
		})
	}

	for _, component := range b.UngroupedComponents() {
		first := component[0]
		entries = append(entries, RankedEntry{
			ID:          VirtualTargetPrefix + first.ID,
			Label:       ComponentLabel(component, limits),
			Color:       CategoryColor(first.Category),
			ResponseIDs: responseIDs(component),
			Virtual:     true,
			CreatedAt:   first.CreatedAt,
		})
	}
	return entries
}

// UngroupedComponents groups the ungrouped responses by explicit connections.
func (b *Board) UngroupedComponents() [][]*Response {
	var ungrouped []*Response
	for _, r := range b.SortedResponses() {
		if !r.Grouped() {
			ungrouped = append(ungrouped, r)
		}
	}
	return ConnectedComponents(ungrouped, b.Connections)
}

// ComponentLabel derives the label of a virtual or materialized component.
func ComponentLabel(component []*Response, limits LabelLimits) string {
	if len(component) == 1 {
		return Preview(component[0].Content, limits.Preview)
	}
	return LinkedLabel(component, limits.Linked)
}

// Rank orders entries by votes, then by number of member responses, then by
// age. The input slice is not modified.
func Rank(entries []RankedEntry) []RankedEntry {
	out := append([]RankedEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].VoteCount != out[j].VoteCount {
			return out[i].VoteCount > out[j].VoteCount
		}
		if len(out[i].ResponseIDs) != len(out[j].ResponseIDs) {
			return len(out[i].ResponseIDs) > len(out[j].ResponseIDs)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Ranking returns the presentation order of the board.
func (b *Board) Ranking(limits LabelLimits) []RankedEntry {
	return Rank(b.VotingTargets(limits))
}

func responseIDs(rs []*Response) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

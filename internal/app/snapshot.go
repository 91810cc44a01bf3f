package app

import (
	"sort"

	"retroflow/internal/domain"
)

// Snapshot is the full board state as seen by one participant. Reconnecting
// clients replace their state with it instead of replaying missed events.
type Snapshot struct {
	Session      domain.Session       `json:"session"`
	Participants []domain.Participant `json:"participants"`
	Responses    []domain.Response    `json:"responses"`
	Groups       []GroupPayload       `json:"groups"`
	Votes        []domain.Vote        `json:"votes"`
	Connections  []domain.Connection  `json:"connections"`
	Presentation domain.Presentation  `json:"presentation"`
	Ranking      []domain.RankedEntry `json:"ranking"`
	VoteBudget   int                  `json:"voteBudget"`
	// RemainingVotes is the viewer's own unspent budget.
	RemainingVotes int `json:"remainingVotes"`
	// RemainingBudgets is only filled in for the host.
	RemainingBudgets map[string]int `json:"remainingBudgets,omitempty"`
}

// Snapshot builds the board state for viewerID. Non-hosts only see their own
// vote records; the host sees every record and every remaining budget.
// An empty viewerID yields the host-less public view.
func (s *Service) Snapshot(board *domain.Board, viewerID string) Snapshot {
	isHost := board.IsHost(viewerID)
	snap := Snapshot{
		Session:        board.Session,
		Presentation:   board.Presentation,
		Ranking:        board.Ranking(s.labelLimits()),
		VoteBudget:     s.cfg.VoteBudget,
		RemainingVotes: s.cfg.VoteBudget - board.VotesUsed(viewerID),
		Participants:   []domain.Participant{},
		Responses:      []domain.Response{},
		Groups:         []GroupPayload{},
		Votes:          []domain.Vote{},
		Connections:    []domain.Connection{},
	}
	if isHost {
		snap.RemainingBudgets = board.RemainingBudgets(s.cfg.VoteBudget)
	}

	for _, p := range board.Participants {
		snap.Participants = append(snap.Participants, *p)
	}
	sort.Slice(snap.Participants, func(i, j int) bool {
		a, b := snap.Participants[i], snap.Participants[j]
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return a.ID < b.ID
	})

	for _, r := range board.SortedResponses() {
		snap.Responses = append(snap.Responses, *r)
	}
	for _, g := range board.SortedGroups() {
		snap.Groups = append(snap.Groups, groupPayload(board, g))
	}
	for _, g := range board.SortedGroups() {
		for _, v := range board.GroupVotes(g.ID) {
			if isHost || v.ParticipantID == viewerID {
				snap.Votes = append(snap.Votes, *v)
			}
		}
	}

	for _, c := range board.Connections {
		snap.Connections = append(snap.Connections, *c)
	}
	sort.Slice(snap.Connections, func(i, j int) bool {
		a, b := snap.Connections[i], snap.Connections[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return snap
}

func (s *Service) snapshotEvent(board *domain.Board, participantID string) Event {
	return Event{
		Kind:       EventSessionSnapshot,
		Payload:    s.Snapshot(board, participantID),
		Recipients: []string{participantID},
	}
}

// snapshotEvents sends every online participant its own fresh snapshot.
func (s *Service) snapshotEvents(board *domain.Board) []Event {
	ids := make([]string, 0, len(board.Participants))
	for id, p := range board.Participants {
		if p.Online {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	events := make([]Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, s.snapshotEvent(board, id))
	}
	return events
}

// SnapshotFor wraps the snapshot of participantID as a targeted event.
func (s *Service) SnapshotFor(board *domain.Board, participantID string) Event {
	return s.snapshotEvent(board, participantID)
}

package replica

import (
	"sort"
	"time"

	"retroflow/internal/app"
	"retroflow/internal/domain"
)

// State is one participant's copy of a board. Group membership is derived
// from Response.GroupID, as on the server.
type State struct {
	Session          domain.Session
	Participants     map[string]domain.Participant
	Responses        map[string]domain.Response
	Groups           map[string]domain.Group
	Votes            map[domain.VoteKey]domain.Vote
	Connections      map[string]domain.Connection
	Presentation     domain.Presentation
	Ranking          []domain.RankedEntry
	VoteBudget       int
	RemainingBudgets map[string]int // host only
}

func newState() State {
	return State{
		Participants: make(map[string]domain.Participant),
		Responses:    make(map[string]domain.Response),
		Groups:       make(map[string]domain.Group),
		Votes:        make(map[domain.VoteKey]domain.Vote),
		Connections:  make(map[string]domain.Connection),
	}
}

// fromSnapshot builds a state from a server snapshot.
func fromSnapshot(snap app.Snapshot) State {
	s := newState()
	s.Session = snap.Session
	s.Presentation = snap.Presentation
	s.Ranking = append([]domain.RankedEntry(nil), snap.Ranking...)
	s.VoteBudget = snap.VoteBudget
	for _, p := range snap.Participants {
		s.Participants[p.ID] = p
	}
	for _, r := range snap.Responses {
		s.Responses[r.ID] = r
	}
	for _, g := range snap.Groups {
		s.setGroup(g)
	}
	for _, v := range snap.Votes {
		s.Votes[domain.VoteKey{ParticipantID: v.ParticipantID, GroupID: v.GroupID}] = v
	}
	for _, c := range snap.Connections {
		s.Connections[c.ID] = c
	}
	if snap.RemainingBudgets != nil {
		s.RemainingBudgets = copyBudgets(snap.RemainingBudgets)
	}
	return s
}

func (s State) clone() State {
	out := newState()
	out.Session = s.Session
	out.Presentation = s.Presentation
	out.Ranking = append([]domain.RankedEntry(nil), s.Ranking...)
	out.VoteBudget = s.VoteBudget
	for k, v := range s.Participants {
		out.Participants[k] = v
	}
	for k, v := range s.Responses {
		out.Responses[k] = v
	}
	for k, v := range s.Groups {
		out.Groups[k] = v
	}
	for k, v := range s.Votes {
		out.Votes[k] = v
	}
	for k, v := range s.Connections {
		out.Connections[k] = v
	}
	if s.RemainingBudgets != nil {
		out.RemainingBudgets = copyBudgets(s.RemainingBudgets)
	}
	return out
}

// setGroup stores a group with its full member list. Responses that are no
// longer listed leave the group.
func (s *State) setGroup(p app.GroupPayload) {
	s.Groups[p.Group.ID] = p.Group
	members := make(map[string]bool, len(p.ResponseIDs))
	for _, id := range p.ResponseIDs {
		members[id] = true
	}
	for id, r := range s.Responses {
		switch {
		case members[id] && r.GroupID != p.Group.ID:
			r.GroupID = p.Group.ID
			s.Responses[id] = r
		case !members[id] && r.GroupID == p.Group.ID:
			r.GroupID = ""
			s.Responses[id] = r
		}
	}
}

func (s *State) removeGroup(groupID string) {
	delete(s.Groups, groupID)
	for id, r := range s.Responses {
		if r.GroupID == groupID {
			r.GroupID = ""
			s.Responses[id] = r
		}
	}
	for key := range s.Votes {
		if key.GroupID == groupID {
			delete(s.Votes, key)
		}
	}
}

func (s *State) removeResponse(responseID string) {
	delete(s.Responses, responseID)
	for id, c := range s.Connections {
		if c.FromResponseID == responseID || c.ToResponseID == responseID {
			delete(s.Connections, id)
		}
	}
}

// Members returns the responses of a group ordered by creation time.
func (s State) Members(groupID string) []domain.Response {
	var out []domain.Response
	for _, r := range s.Responses {
		if r.GroupID == groupID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// VotesUsed returns how many votes participantID has allocated.
func (s State) VotesUsed(participantID string) int {
	n := 0
	for key, v := range s.Votes {
		if key.ParticipantID == participantID {
			n += v.VoteCount
		}
	}
	return n
}

// ConnectionBetween returns the link between two responses, in either direction.
func (s State) ConnectionBetween(a, b string) (domain.Connection, bool) {
	for _, c := range s.Connections {
		if (c.FromResponseID == a && c.ToResponseID == b) || (c.FromResponseID == b && c.ToResponseID == a) {
			return c, true
		}
	}
	return domain.Connection{}, false
}

func copyBudgets(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// typingTTL is how long a typing indicator lives without a refresh.
const typingTTL = 3 * time.Second

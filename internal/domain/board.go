package domain

import (
	"sort"
	"time"
)

// Board is the entity store for one session. It is owned by a single match
// and must only be touched from that match's loop.
type Board struct {
	Session      Session
	Participants map[string]*Participant
	Responses    map[string]*Response
	Groups       map[string]*Group
	Votes        map[VoteKey]*Vote
	Connections  map[string]*Connection
	Presentation Presentation

	// removed remembers ids of entities deleted during this session so a
	// late reference can be told apart from a malformed one.
	removed map[string]struct{}
}

// NewBoard creates an empty board for the given session.
func NewBoard(session Session) *Board {
	if session.Phase == "" {
		session.Phase = PhaseSetup
	}
	if session.Settings == nil {
		session.Settings = make(map[string]string)
	}
	return &Board{
		Session:      session,
		Participants: make(map[string]*Participant),
		Responses:    make(map[string]*Response),
		Groups:       make(map[string]*Group),
		Votes:        make(map[VoteKey]*Vote),
		Connections:  make(map[string]*Connection),
		removed:      make(map[string]struct{}),
	}
}

// UpsertParticipant inserts or refreshes a participant. Host status follows
// Session.HostID so exactly one participant is host at any time.
func (b *Board) UpsertParticipant(p Participant) *Participant {
	p.SessionID = b.Session.ID
	existing, ok := b.Participants[p.ID]
	if !ok {
		existing = &p
		b.Participants[p.ID] = existing
	} else {
		if p.DisplayName != "" {
			existing.DisplayName = p.DisplayName
		}
		if p.AvatarID != "" {
			existing.AvatarID = p.AvatarID
		}
		if !p.LastActive.IsZero() {
			existing.LastActive = p.LastActive
		}
	}
	existing.IsHost = existing.ID == b.Session.HostID
	return existing
}

// SetHost moves host status to participantID.
func (b *Board) SetHost(participantID string) bool {
	if _, ok := b.Participants[participantID]; !ok {
		return false
	}
	b.Session.HostID = participantID
	for id, p := range b.Participants {
		p.IsHost = id == participantID
	}
	return true
}

// IsHost reports whether participantID is the session host.
func (b *Board) IsHost(participantID string) bool {
	return participantID != "" && participantID == b.Session.HostID
}

// OnlineCount returns the number of participants with a live connection.
func (b *Board) OnlineCount() int {
	n := 0
	for _, p := range b.Participants {
		if p.Online {
			n++
		}
	}
	return n
}

// WasRemoved reports whether id belonged to an entity deleted earlier in the session.
func (b *Board) WasRemoved(id string) bool {
	_, ok := b.removed[id]
	return ok
}

func (b *Board) markRemoved(id string) {
	b.removed[id] = struct{}{}
}

// SortedResponses returns every response ordered by creation time then id.
func (b *Board) SortedResponses() []*Response {
	out := make([]*Response, 0, len(b.Responses))
	for _, r := range b.Responses {
		out = append(out, r)
	}
	sortResponses(out)
	return out
}

// Members returns the responses belonging to groupID in creation order.
func (b *Board) Members(groupID string) []*Response {
	var out []*Response
	for _, r := range b.Responses {
		if r.GroupID == groupID {
			out = append(out, r)
		}
	}
	sortResponses(out)
	return out
}

// SortedGroups returns every group ordered by creation time then id.
func (b *Board) SortedGroups() []*Group {
	out := make([]*Group, 0, len(b.Groups))
	for _, g := range b.Groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RemoveResponse deletes a response and every connection touching it.
// It returns the ids of the removed connections. Group bookkeeping is left
// to the caller.
func (b *Board) RemoveResponse(responseID string) []string {
	if _, ok := b.Responses[responseID]; !ok {
		return nil
	}
	delete(b.Responses, responseID)
	b.markRemoved(responseID)

	var dropped []string
	for id, c := range b.Connections {
		if c.Touches(responseID) {
			dropped = append(dropped, id)
		}
	}
	sort.Strings(dropped)
	for _, id := range dropped {
		b.RemoveConnection(id)
	}
	return dropped
}

// RemoveGroup deletes a group and every vote on it. Member responses must
// already be detached by the caller.
func (b *Board) RemoveGroup(groupID string) {
	for key := range b.Votes {
		if key.GroupID == groupID {
			delete(b.Votes, key)
		}
	}
	delete(b.Groups, groupID)
	b.markRemoved(groupID)
}

// RemoveConnection deletes a connection.
func (b *Board) RemoveConnection(connectionID string) {
	delete(b.Connections, connectionID)
	b.markRemoved(connectionID)
}

// ConnectionBetween returns the connection linking a and b in either direction.
func (b *Board) ConnectionBetween(a, c string) *Connection {
	for _, conn := range b.Connections {
		if (conn.FromResponseID == a && conn.ToResponseID == c) || (conn.FromResponseID == c && conn.ToResponseID == a) {
			return conn
		}
	}
	return nil
}

// Allocation returns participantID's current votes on groupID.
func (b *Board) Allocation(participantID, groupID string) int {
	if v, ok := b.Votes[VoteKey{ParticipantID: participantID, GroupID: groupID}]; ok {
		return v.VoteCount
	}
	return 0
}

// VotesUsed returns the sum of participantID's allocations across all groups.
func (b *Board) VotesUsed(participantID string) int {
	total := 0
	for key, v := range b.Votes {
		if key.ParticipantID == participantID {
			total += v.VoteCount
		}
	}
	return total
}

// GroupVotes returns the votes cast on groupID ordered by participant.
func (b *Board) GroupVotes(groupID string) []*Vote {
	var out []*Vote
	for key, v := range b.Votes {
		if key.GroupID == groupID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantID < out[j].ParticipantID })
	return out
}

// RecountGroup recomputes a group's aggregate from its vote records.
func (b *Board) RecountGroup(groupID string) int {
	g, ok := b.Groups[groupID]
	if !ok {
		return 0
	}
	total := 0
	for key, v := range b.Votes {
		if key.GroupID == groupID {
			total += v.VoteCount
		}
	}
	g.VoteCount = total
	return total
}

// RemainingBudgets returns every participant's unspent votes.
func (b *Board) RemainingBudgets(budget int) map[string]int {
	out := make(map[string]int, len(b.Participants))
	for id := range b.Participants {
		out[id] = budget - b.VotesUsed(id)
	}
	return out
}

// MoveVotes reassigns every vote on fromGroupID to toGroupID, merging
// allocations of the same participant. A merged allocation is clamped to
// perGroupCap when it is positive. Both aggregates are recounted.
func (b *Board) MoveVotes(fromGroupID, toGroupID string, now time.Time, perGroupCap int) {
	for key, v := range b.Votes {
		if key.GroupID != fromGroupID {
			continue
		}
		delete(b.Votes, key)
		target := VoteKey{ParticipantID: key.ParticipantID, GroupID: toGroupID}
		if existing, ok := b.Votes[target]; ok {
			existing.VoteCount += v.VoteCount
			if perGroupCap > 0 && existing.VoteCount > perGroupCap {
				existing.VoteCount = perGroupCap
			}
			existing.UpdatedAt = now
			continue
		}
		v.GroupID = toGroupID
		v.UpdatedAt = now
		b.Votes[target] = v
	}
	b.RecountGroup(fromGroupID)
	b.RecountGroup(toGroupID)
}

func sortResponses(rs []*Response) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}

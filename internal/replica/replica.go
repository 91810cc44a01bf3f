// Package replica keeps a client's view of a board: the authoritative state
// built from server events plus the client's own intents that the server has
// not answered yet.
package replica

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"retroflow/internal/domain"
	"retroflow/internal/wire"
	pb "retroflow/proto"
)

// ErrUnknownEvent is returned for server messages the replica cannot interpret.
var ErrUnknownEvent = errors.New("unknown server event")

type pendingIntent struct {
	opID    string
	op      int64
	payload wire.Payload
}

// Replica is not safe for concurrent use.
type Replica struct {
	self    string
	base    State
	pending []pendingIntent
	typing  map[string]time.Time // participant id -> last refresh
	now     func() time.Time
	lastErr *pb.Error
}

// New creates an empty replica for participantID. The base stays empty
// until the first session_snapshot arrives.
func New(participantID string) *Replica {
	return &Replica{
		self:   participantID,
		base:   newState(),
		typing: make(map[string]time.Time),
		now:    time.Now,
	}
}

// WithClock replaces the time source used for typing indicators.
func (r *Replica) WithClock(now func() time.Time) *Replica {
	r.now = now
	return r
}

// Predict records an intent the client just sent so View reflects it before
// the server answers. opID must be the envelope's opId.
func (r *Replica) Predict(opID string, op int64, payload wire.Payload) {
	if opID == "" {
		return
	}
	for _, p := range r.pending {
		if p.opID == opID {
			return
		}
	}
	r.pending = append(r.pending, pendingIntent{opID: opID, op: op, payload: payload})
}

// Pending returns the opIds still awaiting a server answer, oldest first.
func (r *Replica) Pending() []string {
	out := make([]string, 0, len(r.pending))
	for _, p := range r.pending {
		out = append(out, p.opID)
	}
	return out
}

// Base returns a copy of the authoritative state.
func (r *Replica) Base() State {
	return r.base.clone()
}

// View returns the authoritative state with pending intents replayed on top.
func (r *Replica) View() State {
	view := r.base.clone()
	for _, p := range r.pending {
		predict(&view, r.self, p)
	}
	return view
}

// LastError returns the most recent error reported by the server, if any.
func (r *Replica) LastError() *pb.Error {
	return r.lastErr
}

// Typing returns the participants currently typing, excluding self.
func (r *Replica) Typing() []string {
	now := r.now()
	var out []string
	for id, at := range r.typing {
		if now.Sub(at) >= typingTTL {
			delete(r.typing, id)
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Apply folds one server message into the authoritative state. Applying the
// same message twice leaves the state unchanged. The pending intent with the
// message's opId, if any, is retired.
func (r *Replica) Apply(op int64, raw []byte) error {
	ev, err := wire.DecodeEvent(op, raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownEvent, err)
	}

	switch p := ev.Payload.(type) {
	case *pb.Snapshot:
		r.base = fromSnapshot(wire.SnapshotFrom(p))
		r.pending = nil
		return nil
	case *pb.Error:
		r.lastErr = p
	case *pb.Ack:
	default:
		if err := r.applyEvent(ev); err != nil {
			return err
		}
	}
	r.retire(ev.OpID)
	return nil
}

// retire drops the pending intent with opID.
func (r *Replica) retire(opID string) {
	if opID == "" {
		return
	}
	for i, p := range r.pending {
		if p.opID == opID {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return
		}
	}
}

func (r *Replica) applyEvent(ev wire.Event) error {
	s := &r.base
	switch p := ev.Payload.(type) {
	case *pb.Response:
		s.Responses[p.GetId()] = wire.ResponseFrom(p)
	case *pb.ResponseDeleted:
		s.removeResponse(p.GetResponseId())
		for _, id := range p.GetConnectionIds() {
			delete(s.Connections, id)
		}
	case *pb.GroupState:
		s.setGroup(wire.GroupStateFrom(p))
	case *pb.GroupDeleted:
		s.removeGroup(p.GetGroupId())
	case *pb.ResponseUngrouped:
		if resp, ok := s.Responses[p.GetResponseId()]; ok {
			resp.GroupID = ""
			s.Responses[p.GetResponseId()] = resp
		}
	case *pb.Connection:
		c := wire.ConnectionFrom(p)
		s.Connections[c.ID] = c
	case *pb.ConnectionRemoved:
		delete(s.Connections, p.GetConnectionId())
	case *pb.VotesUpdated:
		votes := wire.VotesUpdatedFrom(p)
		if g, ok := s.Groups[votes.GroupID]; ok {
			g.VoteCount = votes.TotalVotes
			s.Groups[votes.GroupID] = g
		}
		// Every copy carries the recipient's own allocation, including
		// votes a regroup moved here.
		setVote(s, r.self, votes.GroupID, votes.OwnVotes, false)
		if votes.RemainingBudgets != nil {
			s.RemainingBudgets = votes.RemainingBudgets
		}
	case *pb.PhaseChanged:
		change := wire.PhaseChangedFrom(p)
		s.Session.Phase = change.Phase
		s.Session.TimerEndTime = change.TimerEndTime
	case *pb.PresentationState:
		s.Presentation = domain.Presentation{Active: p.GetActive(), CurrentIndex: int(p.GetItemIndex())}
	case *pb.Participant:
		participant := wire.ParticipantFrom(p)
		participant.Online = true
		s.Participants[participant.ID] = participant
	case *pb.ParticipantLeft:
		if participant, ok := s.Participants[p.GetParticipantId()]; ok {
			participant.Online = false
			s.Participants[p.GetParticipantId()] = participant
		}
		delete(r.typing, p.GetParticipantId())
	case *pb.ParticipantTyping:
		if p.GetParticipantId() == r.self {
			return nil
		}
		if p.GetTyping() {
			r.typing[p.GetParticipantId()] = r.now()
		} else {
			delete(r.typing, p.GetParticipantId())
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Name)
	}
	return nil
}

package replica

import (
	"strings"

	"retroflow/internal/domain"
	pb "retroflow/proto"
)

// pendingPrefix marks ids of entities that only exist in a prediction.
const pendingPrefix = "pending-"

// predict applies the optimistic effect of one intent to a view. Intents that
// no longer make sense against the view are skipped; the server will answer
// them with an error or a snapshot.
func predict(s *State, self string, p pendingIntent) {
	switch in := p.payload.(type) {
	case *pb.AddResponse:
		s.Responses[pendingPrefix+p.opID] = domain.Response{
			ID:            pendingPrefix + p.opID,
			SessionID:     s.Session.ID,
			ParticipantID: self,
			Category:      domain.Category(in.GetCategory()),
			Content:       strings.TrimSpace(in.GetContent()),
		}
	case *pb.UpdateResponse:
		if r, ok := s.Responses[in.GetResponseId()]; ok {
			r.Content = strings.TrimSpace(in.GetContent())
			s.Responses[in.GetResponseId()] = r
		}
	case *pb.DeleteResponse:
		s.removeResponse(in.GetResponseId())
	case *pb.DragResponse:
		if r, ok := s.Responses[in.GetResponseId()]; ok {
			r.Position = domain.Position{X: in.GetX(), Y: in.GetY()}
			s.Responses[in.GetResponseId()] = r
		}
	case *pb.CreateGroup:
		var members []string
		for _, id := range in.GetResponseIds() {
			if _, ok := s.Responses[id]; ok {
				members = append(members, id)
			}
		}
		if len(members) < 2 {
			return
		}
		id := pendingPrefix + p.opID
		s.Groups[id] = domain.Group{ID: id, SessionID: s.Session.ID, Label: in.GetLabel(), Color: in.GetColor()}
		for _, rid := range members {
			r := s.Responses[rid]
			r.GroupID = id
			s.Responses[rid] = r
		}
	case *pb.UngroupResponse:
		if r, ok := s.Responses[in.GetResponseId()]; ok {
			r.GroupID = ""
			s.Responses[in.GetResponseId()] = r
		}
	case *pb.CreateConnection:
		if _, exists := s.ConnectionBetween(in.GetFromResponseId(), in.GetToResponseId()); exists {
			return
		}
		id := pendingPrefix + p.opID
		s.Connections[id] = domain.Connection{
			ID:             id,
			SessionID:      s.Session.ID,
			FromResponseID: in.GetFromResponseId(),
			ToResponseID:   in.GetToResponseId(),
		}
	case *pb.RemoveConnection:
		if in.GetConnectionId() != "" {
			delete(s.Connections, in.GetConnectionId())
			return
		}
		if c, ok := s.ConnectionBetween(in.GetFromResponseId(), in.GetToResponseId()); ok {
			delete(s.Connections, c.ID)
		}
	case *pb.CastVote:
		predictVote(s, self, in)
	case *pb.ChangePhase:
		s.Session.Phase = domain.Phase(in.GetPhase())
	case *pb.StartPresentation:
		s.Presentation = domain.Presentation{Active: true}
	case *pb.NavigatePresentation:
		if s.Presentation.Active {
			s.Presentation.CurrentIndex = int(in.GetItemIndex())
		}
	case *pb.EndPresentation:
		s.Presentation = domain.Presentation{}
	}
}

// voteGroup resolves a voting target to the group id it currently maps to
// in s, or "" when the target is an ungrouped response.
func voteGroup(s *State, target string) (groupID, responseID string) {
	t := domain.ParseVotingTarget(target)
	if t.Kind == domain.TargetGroup {
		return t.ID, ""
	}
	if r, ok := s.Responses[t.ID]; ok && r.GroupID != "" {
		return r.GroupID, ""
	}
	return "", t.ID
}

func predictVote(s *State, self string, in *pb.CastVote) {
	groupID, responseID := voteGroup(s, in.GetGroupId())
	if groupID == "" {
		if in.GetVoteCount() == 0 {
			return
		}
		r, ok := s.Responses[responseID]
		if !ok {
			return
		}
		// Stand-in for the group the server will materialize.
		groupID = pendingPrefix + responseID
		s.Groups[groupID] = domain.Group{ID: groupID, SessionID: s.Session.ID, Label: r.Content, Color: domain.CategoryColor(r.Category)}
		r.GroupID = groupID
		s.Responses[responseID] = r
	}
	setVote(s, self, groupID, int(in.GetVoteCount()), true)
}

func setVote(s *State, self, groupID string, count int, adjustTotal bool) {
	key := domain.VoteKey{ParticipantID: self, GroupID: groupID}
	previous := s.Votes[key].VoteCount
	if count == 0 {
		delete(s.Votes, key)
	} else {
		v := s.Votes[key]
		v.ParticipantID = self
		v.GroupID = groupID
		v.SessionID = s.Session.ID
		v.VoteCount = count
		s.Votes[key] = v
	}
	if adjustTotal {
		if g, ok := s.Groups[groupID]; ok {
			g.VoteCount += count - previous
			s.Groups[groupID] = g
		}
	}
}

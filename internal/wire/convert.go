package wire

import (
	"fmt"
	"sort"
	"time"

	"retroflow/internal/app"
	"retroflow/internal/domain"
	pb "retroflow/proto"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ToMessage converts an app event payload into its wire message. Generated
// messages pass through unchanged.
func ToMessage(v any) (proto.Message, error) {
	switch p := v.(type) {
	case proto.Message:
		return p, nil
	case domain.Response:
		return toResponse(p), nil
	case app.ResponseDeletedPayload:
		return &pb.ResponseDeleted{ResponseId: p.ResponseID, ConnectionIds: p.ConnectionIDs}, nil
	case app.GroupPayload:
		return toGroupState(p), nil
	case app.GroupDeletedPayload:
		return &pb.GroupDeleted{GroupId: p.GroupID}, nil
	case app.ResponseUngroupedPayload:
		return &pb.ResponseUngrouped{ResponseId: p.ResponseID, GroupId: p.GroupID}, nil
	case domain.Connection:
		return toConnection(p), nil
	case app.ConnectionRemovedPayload:
		return &pb.ConnectionRemoved{ConnectionId: p.ConnectionID}, nil
	case app.VotesUpdatedPayload:
		return &pb.VotesUpdated{
			GroupId:          p.GroupID,
			TotalVotes:       int32(p.TotalVotes),
			OwnVotes:         int32(p.OwnVotes),
			RemainingBudgets: toBudgets(p.RemainingBudgets),
		}, nil
	case app.PhaseChangedPayload:
		return &pb.PhaseChanged{Phase: string(p.Phase), TimerEndTime: toTimestampPtr(p.TimerEndTime)}, nil
	case app.PresentationPayload:
		return &pb.PresentationState{Active: p.Active, ItemIndex: int32(p.ItemIndex), ItemCount: int32(p.ItemCount)}, nil
	case domain.Participant:
		return toParticipant(p), nil
	case app.ParticipantLeftPayload:
		return &pb.ParticipantLeft{ParticipantId: p.ParticipantID}, nil
	case app.TypingPayload:
		return &pb.ParticipantTyping{ParticipantId: p.ParticipantID, Typing: p.Typing}, nil
	case app.Snapshot:
		return toSnapshot(p), nil
	default:
		return nil, fmt.Errorf("no wire message for %T", v)
	}
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toTimestampPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return toTimestamp(*t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fromTimestampPtr(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func toPosition(p domain.Position) *pb.Position {
	return &pb.Position{X: p.X, Y: p.Y}
}

func fromPosition(p *pb.Position) domain.Position {
	return domain.Position{X: p.GetX(), Y: p.GetY()}
}

// toBudgets flattens a budget map in participant order. A nil map stays nil.
func toBudgets(in map[string]int) []*pb.Budget {
	if in == nil {
		return nil
	}
	out := make([]*pb.Budget, 0, len(in))
	for id, remaining := range in {
		out = append(out, &pb.Budget{ParticipantId: id, Remaining: int32(remaining)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantId < out[j].ParticipantId })
	return out
}

func fromBudgets(in []*pb.Budget) map[string]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]int, len(in))
	for _, b := range in {
		out[b.GetParticipantId()] = int(b.GetRemaining())
	}
	return out
}

func toSession(s domain.Session) *pb.Session {
	out := &pb.Session{
		Id:           s.ID,
		InviteCode:   s.InviteCode,
		HostId:       s.HostID,
		Title:        s.Title,
		CurrentPhase: string(s.Phase),
		TimerEndTime: toTimestampPtr(s.TimerEndTime),
		CreatedAt:    toTimestamp(s.CreatedAt),
		UpdatedAt:    toTimestamp(s.UpdatedAt),
	}
	keys := make([]string, 0, len(s.Settings))
	for k := range s.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Settings = append(out.Settings, &pb.Setting{Key: k, Value: s.Settings[k]})
	}
	return out
}

func fromSession(s *pb.Session) domain.Session {
	out := domain.Session{
		ID:           s.GetId(),
		InviteCode:   s.GetInviteCode(),
		HostID:       s.GetHostId(),
		Title:        s.GetTitle(),
		Phase:        domain.Phase(s.GetCurrentPhase()),
		TimerEndTime: fromTimestampPtr(s.GetTimerEndTime()),
		CreatedAt:    fromTimestamp(s.GetCreatedAt()),
		UpdatedAt:    fromTimestamp(s.GetUpdatedAt()),
	}
	if len(s.GetSettings()) > 0 {
		out.Settings = make(map[string]string, len(s.GetSettings()))
		for _, kv := range s.GetSettings() {
			out.Settings[kv.GetKey()] = kv.GetValue()
		}
	}
	return out
}

func toParticipant(p domain.Participant) *pb.Participant {
	return &pb.Participant{
		Id:          p.ID,
		SessionId:   p.SessionID,
		DisplayName: p.DisplayName,
		AvatarId:    p.AvatarID,
		IsHost:      p.IsHost,
		IsOnline:    p.Online,
		LastActive:  toTimestamp(p.LastActive),
		JoinedAt:    toTimestamp(p.JoinedAt),
	}
}

// ParticipantFrom converts a wire participant.
func ParticipantFrom(p *pb.Participant) domain.Participant {
	return domain.Participant{
		ID:          p.GetId(),
		SessionID:   p.GetSessionId(),
		DisplayName: p.GetDisplayName(),
		AvatarID:    p.GetAvatarId(),
		IsHost:      p.GetIsHost(),
		Online:      p.GetIsOnline(),
		LastActive:  fromTimestamp(p.GetLastActive()),
		JoinedAt:    fromTimestamp(p.GetJoinedAt()),
	}
}

func toResponse(r domain.Response) *pb.Response {
	return &pb.Response{
		Id:            r.ID,
		SessionId:     r.SessionID,
		ParticipantId: r.ParticipantID,
		Category:      string(r.Category),
		Content:       r.Content,
		Position:      toPosition(r.Position),
		GroupId:       r.GroupID,
		CreatedAt:     toTimestamp(r.CreatedAt),
		UpdatedAt:     toTimestamp(r.UpdatedAt),
	}
}

// ResponseFrom converts a wire response.
func ResponseFrom(r *pb.Response) domain.Response {
	return domain.Response{
		ID:            r.GetId(),
		SessionID:     r.GetSessionId(),
		ParticipantID: r.GetParticipantId(),
		Category:      domain.Category(r.GetCategory()),
		Content:       r.GetContent(),
		Position:      fromPosition(r.GetPosition()),
		GroupID:       r.GetGroupId(),
		CreatedAt:     fromTimestamp(r.GetCreatedAt()),
		UpdatedAt:     fromTimestamp(r.GetUpdatedAt()),
	}
}

func toGroupState(g app.GroupPayload) *pb.GroupState {
	return &pb.GroupState{
		Detail: &pb.Group{
			Id:        g.Group.ID,
			SessionId: g.Group.SessionID,
			Label:     g.Group.Label,
			Color:     g.Group.Color,
			Position:  toPosition(g.Group.Position),
			VoteCount: int32(g.Group.VoteCount),
			CreatedAt: toTimestamp(g.Group.CreatedAt),
		},
		ResponseIds: g.ResponseIDs,
	}
}

// GroupStateFrom converts a wire group with its member list.
func GroupStateFrom(g *pb.GroupState) app.GroupPayload {
	d := g.GetDetail()
	return app.GroupPayload{
		Group: domain.Group{
			ID:        d.GetId(),
			SessionID: d.GetSessionId(),
			Label:     d.GetLabel(),
			Color:     d.GetColor(),
			Position:  fromPosition(d.GetPosition()),
			VoteCount: int(d.GetVoteCount()),
			CreatedAt: fromTimestamp(d.GetCreatedAt()),
		},
		ResponseIDs: g.GetResponseIds(),
	}
}

func toVote(v domain.Vote) *pb.Vote {
	return &pb.Vote{
		Id:            v.ID,
		SessionId:     v.SessionID,
		ParticipantId: v.ParticipantID,
		GroupId:       v.GroupID,
		VoteCount:     int32(v.VoteCount),
		CreatedAt:     toTimestamp(v.CreatedAt),
		UpdatedAt:     toTimestamp(v.UpdatedAt),
	}
}

func fromVote(v *pb.Vote) domain.Vote {
	return domain.Vote{
		ID:            v.GetId(),
		SessionID:     v.GetSessionId(),
		ParticipantID: v.GetParticipantId(),
		GroupID:       v.GetGroupId(),
		VoteCount:     int(v.GetVoteCount()),
		CreatedAt:     fromTimestamp(v.GetCreatedAt()),
		UpdatedAt:     fromTimestamp(v.GetUpdatedAt()),
	}
}

func toConnection(c domain.Connection) *pb.Connection {
	return &pb.Connection{
		Id:             c.ID,
		SessionId:      c.SessionID,
		FromResponseId: c.FromResponseID,
		ToResponseId:   c.ToResponseID,
		CreatedAt:      toTimestamp(c.CreatedAt),
	}
}

// ConnectionFrom converts a wire connection.
func ConnectionFrom(c *pb.Connection) domain.Connection {
	return domain.Connection{
		ID:             c.GetId(),
		SessionID:      c.GetSessionId(),
		FromResponseID: c.GetFromResponseId(),
		ToResponseID:   c.GetToResponseId(),
		CreatedAt:      fromTimestamp(c.GetCreatedAt()),
	}
}

func toRankedEntry(e domain.RankedEntry) *pb.RankedEntry {
	return &pb.RankedEntry{
		Id:          e.ID,
		GroupId:     e.GroupID,
		Label:       e.Label,
		Color:       e.Color,
		VoteCount:   int32(e.VoteCount),
		ResponseIds: e.ResponseIDs,
		Virtual:     e.Virtual,
	}
}

func fromRankedEntry(e *pb.RankedEntry) domain.RankedEntry {
	return domain.RankedEntry{
		ID:          e.GetId(),
		GroupID:     e.GetGroupId(),
		Label:       e.GetLabel(),
		Color:       e.GetColor(),
		VoteCount:   int(e.GetVoteCount()),
		ResponseIDs: e.GetResponseIds(),
		Virtual:     e.GetVirtual(),
	}
}

func toSnapshot(s app.Snapshot) *pb.Snapshot {
	out := &pb.Snapshot{
		Session:          toSession(s.Session),
		Presentation:     &pb.Presentation{Active: s.Presentation.Active, CurrentIndex: int32(s.Presentation.CurrentIndex)},
		VoteBudget:       int32(s.VoteBudget),
		RemainingVotes:   int32(s.RemainingVotes),
		RemainingBudgets: toBudgets(s.RemainingBudgets),
	}
	for _, p := range s.Participants {
		out.Participants = append(out.Participants, toParticipant(p))
	}
	for _, r := range s.Responses {
		out.Responses = append(out.Responses, toResponse(r))
	}
	for _, g := range s.Groups {
		out.Groups = append(out.Groups, toGroupState(g))
	}
	for _, v := range s.Votes {
		out.Votes = append(out.Votes, toVote(v))
	}
	for _, c := range s.Connections {
		out.Connections = append(out.Connections, toConnection(c))
	}
	for _, e := range s.Ranking {
		out.Ranking = append(out.Ranking, toRankedEntry(e))
	}
	return out
}

// SnapshotFrom converts a wire snapshot. Budgets stay nil unless the snapshot
// was built for the host.
func SnapshotFrom(s *pb.Snapshot) app.Snapshot {
	out := app.Snapshot{
		Session: fromSession(s.GetSession()),
		Presentation: domain.Presentation{
			Active:       s.GetPresentation().GetActive(),
			CurrentIndex: int(s.GetPresentation().GetCurrentIndex()),
		},
		VoteBudget:       int(s.GetVoteBudget()),
		RemainingVotes:   int(s.GetRemainingVotes()),
		RemainingBudgets: fromBudgets(s.GetRemainingBudgets()),
		Participants:     []domain.Participant{},
		Responses:        []domain.Response{},
		Groups:           []app.GroupPayload{},
		Votes:            []domain.Vote{},
		Connections:      []domain.Connection{},
	}
	for _, p := range s.GetParticipants() {
		out.Participants = append(out.Participants, ParticipantFrom(p))
	}
	for _, r := range s.GetResponses() {
		out.Responses = append(out.Responses, ResponseFrom(r))
	}
	for _, g := range s.GetGroups() {
		out.Groups = append(out.Groups, GroupStateFrom(g))
	}
	for _, v := range s.GetVotes() {
		out.Votes = append(out.Votes, fromVote(v))
	}
	for _, c := range s.GetConnections() {
		out.Connections = append(out.Connections, ConnectionFrom(c))
	}
	for _, e := range s.GetRanking() {
		out.Ranking = append(out.Ranking, fromRankedEntry(e))
	}
	return out
}

// VotesUpdatedFrom converts a wire vote aggregate.
func VotesUpdatedFrom(v *pb.VotesUpdated) app.VotesUpdatedPayload {
	return app.VotesUpdatedPayload{
		GroupID:          v.GetGroupId(),
		TotalVotes:       int(v.GetTotalVotes()),
		OwnVotes:         int(v.GetOwnVotes()),
		RemainingBudgets: fromBudgets(v.GetRemainingBudgets()),
	}
}

// PhaseChangedFrom converts a wire phase change.
func PhaseChangedFrom(p *pb.PhaseChanged) app.PhaseChangedPayload {
	return app.PhaseChangedPayload{
		Phase:        domain.Phase(p.GetPhase()),
		TimerEndTime: fromTimestampPtr(p.GetTimerEndTime()),
	}
}

package replica

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"retroflow/internal/app"
	"retroflow/internal/domain"
	"retroflow/internal/wire"
	pb "retroflow/proto"

	"google.golang.org/protobuf/proto"
)

var epoch = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func encode(t *testing.T, op int64, opID string, data any) []byte {
	t.Helper()
	raw, err := wire.Encode(op, opID, data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return raw
}

func apply(t *testing.T, r *Replica, op int64, opID string, data any) {
	t.Helper()
	if err := r.Apply(op, encode(t, op, opID, data)); err != nil {
		t.Fatalf("Apply(%s): %v", wire.Name(op), err)
	}
}

func baseSnapshot(phase domain.Phase) app.Snapshot {
	return app.Snapshot{
		Session: domain.Session{ID: "s1", HostID: "host", Phase: phase},
		Participants: []domain.Participant{
			{ID: "host", IsHost: true, Online: true},
			{ID: "me", Online: true},
		},
		Responses: []domain.Response{
			{ID: "r1", ParticipantID: "me", Category: domain.CategoryWentWell, Content: "Pairing", CreatedAt: epoch},
			{ID: "r2", ParticipantID: "host", Category: domain.CategoryWentWell, Content: "Demos", CreatedAt: epoch.Add(time.Second)},
		},
		Groups:      []app.GroupPayload{},
		Votes:       []domain.Vote{},
		Connections: []domain.Connection{},
		VoteBudget:  4,
	}
}

func newReplica(t *testing.T, phase domain.Phase) *Replica {
	t.Helper()
	r := New("me")
	apply(t, r, wire.OpSessionSnapshot, "", baseSnapshot(phase))
	return r
}

func TestSnapshotReplacesBaseAndClearsPending(t *testing.T) {
	r := newReplica(t, domain.PhaseInput)
	r.Predict("op-1", wire.OpAddResponse, &pb.AddResponse{Content: "x", Category: "WENT_WELL"})

	apply(t, r, wire.OpSessionSnapshot, "", baseSnapshot(domain.PhaseGrouping))

	if len(r.Pending()) != 0 {
		t.Fatalf("expected pending cleared, got %v", r.Pending())
	}
	view := r.View()
	if view.Session.Phase != domain.PhaseGrouping || len(view.Responses) != 2 {
		t.Fatalf("unexpected view after snapshot: phase %s, %d responses", view.Session.Phase, len(view.Responses))
	}
}

func TestPredictedResponseIsReplacedOnAck(t *testing.T) {
	r := newReplica(t, domain.PhaseInput)
	r.Predict("op-1", wire.OpAddResponse, &pb.AddResponse{Content: " Retro ran long ", Category: "DIDNT_GO_WELL"})

	view := r.View()
	predicted, ok := view.Responses["pending-op-1"]
	if !ok || predicted.Content != "Retro ran long" || predicted.ParticipantID != "me" {
		t.Fatalf("expected predicted response, got %+v", view.Responses)
	}
	if _, ok := r.Base().Responses["pending-op-1"]; ok {
		t.Fatal("prediction leaked into the base")
	}

	apply(t, r, wire.OpResponseAdded, "op-1", domain.Response{ID: "r3", ParticipantID: "me", Category: domain.CategoryDidntGoWell, Content: "Retro ran long"})

	view = r.View()
	if _, ok := view.Responses["pending-op-1"]; ok {
		t.Fatal("expected prediction retired")
	}
	if view.Responses["r3"].Content != "Retro ran long" {
		t.Fatalf("expected authoritative response, got %+v", view.Responses["r3"])
	}
}

func TestErrorRetiresPrediction(t *testing.T) {
	r := newReplica(t, domain.PhaseGrouping)
	r.Predict("op-drag", wire.OpDragResponse, &pb.DragResponse{ResponseId: "r1", X: proto.Float64(400), Y: proto.Float64(80)})
	if got := r.View().Responses["r1"].Position; got.X != 400 || got.Y != 80 {
		t.Fatalf("expected predicted position, got %+v", got)
	}

	apply(t, r, wire.OpError, "op-drag", &pb.Error{Code: "validation_error", Message: "nope"})

	if got := r.View().Responses["r1"].Position; got.X != 0 || got.Y != 0 {
		t.Fatalf("expected position rolled back, got %+v", got)
	}
	if r.LastError().GetCode() != "validation_error" {
		t.Fatalf("expected last error recorded, got %+v", r.LastError())
	}
}

func TestAckRetiresNoOpPrediction(t *testing.T) {
	r := newReplica(t, domain.PhaseVoting)
	r.Predict("op-zero", wire.OpCastVote, &pb.CastVote{ParticipantId: "me", GroupId: "individual-r1", VoteCount: proto.Int32(0)})
	r.Predict("op-end", wire.OpEndPresentation, &pb.EndPresentation{})

	apply(t, r, wire.OpAck, "op-zero", &pb.Ack{})
	apply(t, r, wire.OpAck, "op-end", &pb.Ack{})

	if len(r.Pending()) != 0 {
		t.Fatalf("expected acks to retire predictions, got %v", r.Pending())
	}
	if !reflect.DeepEqual(r.View(), r.Base()) {
		t.Fatal("expected view to match base once nothing is pending")
	}
	if r.LastError() != nil {
		t.Fatalf("ack must not record an error, got %+v", r.LastError())
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	r := newReplica(t, domain.PhaseGrouping)
	events := []struct {
		op   int64
		data any
	}{
		{wire.OpGroupCreated, app.GroupPayload{Group: domain.Group{ID: "g1", Label: "Pairing"}, ResponseIDs: []string{"r1", "r2"}}},
		{wire.OpConnectionCreated, domain.Connection{ID: "c1", FromResponseID: "r1", ToResponseID: "r2"}},
		{wire.OpResponseUngrouped, app.ResponseUngroupedPayload{ResponseID: "r2", GroupID: "g1"}},
		{wire.OpPhaseChanged, app.PhaseChangedPayload{Phase: domain.PhaseVoting}},
		{wire.OpParticipantLeft, app.ParticipantLeftPayload{ParticipantID: "host"}},
	}
	for _, ev := range events {
		apply(t, r, ev.op, "", ev.data)
		once := r.Base()
		apply(t, r, ev.op, "", ev.data)
		if twice := r.Base(); !reflect.DeepEqual(once, twice) {
			t.Fatalf("%s applied twice changed state", wire.Name(ev.op))
		}
	}

	base := r.Base()
	if base.Responses["r1"].GroupID != "g1" || base.Responses["r2"].GroupID != "" {
		t.Fatalf("unexpected membership r1=%q r2=%q", base.Responses["r1"].GroupID, base.Responses["r2"].GroupID)
	}
	if base.Participants["host"].Online {
		t.Fatal("expected host offline")
	}
}

func TestGroupUpdatedDropsUnlistedMembers(t *testing.T) {
	r := newReplica(t, domain.PhaseGrouping)
	apply(t, r, wire.OpGroupCreated, "", app.GroupPayload{Group: domain.Group{ID: "g1"}, ResponseIDs: []string{"r1", "r2"}})
	apply(t, r, wire.OpGroupUpdated, "", app.GroupPayload{Group: domain.Group{ID: "g1"}, ResponseIDs: []string{"r1"}})

	if got := r.Base().Responses["r2"].GroupID; got != "" {
		t.Fatalf("expected r2 to leave g1, got %q", got)
	}
}

func TestGroupDeletedClearsMembersAndVotes(t *testing.T) {
	r := New("me")
	snap := baseSnapshot(domain.PhaseVoting)
	snap.Responses[0].GroupID = "g1"
	snap.Responses[1].GroupID = "g1"
	snap.Groups = []app.GroupPayload{{Group: domain.Group{ID: "g1", VoteCount: 2}, ResponseIDs: []string{"r1", "r2"}}}
	snap.Votes = []domain.Vote{{ParticipantID: "me", GroupID: "g1", VoteCount: 2}}
	apply(t, r, wire.OpSessionSnapshot, "", snap)

	apply(t, r, wire.OpGroupDeleted, "", app.GroupDeletedPayload{GroupID: "g1"})

	base := r.Base()
	if _, ok := base.Groups["g1"]; ok {
		t.Fatal("expected g1 removed")
	}
	if base.Responses["r1"].GroupID != "" || base.VotesUsed("me") != 0 {
		t.Fatalf("expected membership and votes cleared, used=%d", base.VotesUsed("me"))
	}
}

func TestVoteOnUngroupedResponse(t *testing.T) {
	r := newReplica(t, domain.PhaseVoting)
	r.Predict("op-vote", wire.OpCastVote, &pb.CastVote{ParticipantId: "me", GroupId: "individual-r1", VoteCount: proto.Int32(3)})

	view := r.View()
	if view.VotesUsed("me") != 3 {
		t.Fatalf("expected 3 predicted votes, got %d", view.VotesUsed("me"))
	}
	if g := view.Groups[view.Responses["r1"].GroupID]; g.VoteCount != 3 {
		t.Fatalf("expected predicted total 3, got %d", g.VoteCount)
	}

	apply(t, r, wire.OpGroupCreated, "op-vote", app.GroupPayload{Group: domain.Group{ID: "g9", Label: "Pairing"}, ResponseIDs: []string{"r1"}})
	apply(t, r, wire.OpVotesUpdated, "op-vote", app.VotesUpdatedPayload{GroupID: "g9", TotalVotes: 3, OwnVotes: 3})

	if len(r.Pending()) != 0 {
		t.Fatalf("expected vote retired, got %v", r.Pending())
	}
	base := r.Base()
	if base.Votes[domain.VoteKey{ParticipantID: "me", GroupID: "g9"}].VoteCount != 3 {
		t.Fatalf("expected own vote committed to g9, got %+v", base.Votes)
	}
	if base.Groups["g9"].VoteCount != 3 {
		t.Fatalf("expected total 3, got %d", base.Groups["g9"].VoteCount)
	}
}

func TestMovedVotesFollowOwnAllocation(t *testing.T) {
	r := New("me")
	snap := baseSnapshot(domain.PhaseVoting)
	snap.Responses[0].GroupID = "g1"
	snap.Responses[1].GroupID = "g1"
	snap.Groups = []app.GroupPayload{{Group: domain.Group{ID: "g1", VoteCount: 2}, ResponseIDs: []string{"r1", "r2"}}}
	snap.Votes = []domain.Vote{{ParticipantID: "me", GroupID: "g1", VoteCount: 2}}
	apply(t, r, wire.OpSessionSnapshot, "", snap)

	// The host ungroups r2; r1 survives in a fresh singleton that inherits g1's votes.
	apply(t, r, wire.OpResponseUngrouped, "", app.ResponseUngroupedPayload{ResponseID: "r2", GroupID: "g1"})
	apply(t, r, wire.OpResponseUngrouped, "", app.ResponseUngroupedPayload{ResponseID: "r1", GroupID: "g1"})
	apply(t, r, wire.OpGroupCreated, "", app.GroupPayload{Group: domain.Group{ID: "g2", VoteCount: 2}, ResponseIDs: []string{"r1"}})
	apply(t, r, wire.OpVotesUpdated, "", app.VotesUpdatedPayload{GroupID: "g2", TotalVotes: 2, OwnVotes: 2})
	apply(t, r, wire.OpGroupDeleted, "", app.GroupDeletedPayload{GroupID: "g1"})

	base := r.Base()
	if base.VotesUsed("me") != 2 {
		t.Fatalf("expected moved votes to stay counted, used=%d", base.VotesUsed("me"))
	}
	if base.Votes[domain.VoteKey{ParticipantID: "me", GroupID: "g2"}].VoteCount != 2 {
		t.Fatalf("expected own record on g2, got %+v", base.Votes)
	}

	// A public copy tells everyone without votes on the group that they hold none.
	apply(t, r, wire.OpVotesUpdated, "", app.VotesUpdatedPayload{GroupID: "g2", TotalVotes: 1})
	if base := r.Base(); base.VotesUsed("me") != 0 || base.Groups["g2"].VoteCount != 1 {
		t.Fatalf("expected own record cleared, used=%d total=%d", base.VotesUsed("me"), base.Groups["g2"].VoteCount)
	}
}

func TestHostBudgetsFollowVotesUpdated(t *testing.T) {
	r := newReplica(t, domain.PhaseVoting)
	apply(t, r, wire.OpGroupCreated, "", app.GroupPayload{Group: domain.Group{ID: "g1"}, ResponseIDs: []string{"r1"}})
	apply(t, r, wire.OpVotesUpdated, "", app.VotesUpdatedPayload{GroupID: "g1", TotalVotes: 1, RemainingBudgets: map[string]int{"me": 3, "host": 4}})
	apply(t, r, wire.OpVotesUpdated, "", app.VotesUpdatedPayload{GroupID: "g1", TotalVotes: 2})

	base := r.Base()
	if base.Groups["g1"].VoteCount != 2 {
		t.Fatalf("expected total 2, got %d", base.Groups["g1"].VoteCount)
	}
	if base.RemainingBudgets["me"] != 3 {
		t.Fatalf("expected budgets kept from the host copy, got %v", base.RemainingBudgets)
	}
}

func TestPresentationEvents(t *testing.T) {
	r := newReplica(t, domain.PhaseResults)
	apply(t, r, wire.OpPresentationStarted, "", app.PresentationPayload{Active: true, ItemIndex: 0, ItemCount: 2})
	apply(t, r, wire.OpPresentationNavigate, "", app.PresentationPayload{Active: true, ItemIndex: 1, ItemCount: 2})
	if got := r.Base().Presentation; !got.Active || got.CurrentIndex != 1 {
		t.Fatalf("unexpected presentation %+v", got)
	}
	apply(t, r, wire.OpPresentationEnded, "", app.PresentationPayload{})
	if r.Base().Presentation.Active {
		t.Fatal("expected presentation ended")
	}
}

func TestTypingIndicatorsExpire(t *testing.T) {
	now := epoch
	r := newReplica(t, domain.PhaseInput).WithClock(func() time.Time { return now })

	apply(t, r, wire.OpParticipantTyping, "", app.TypingPayload{ParticipantID: "host", Typing: true})
	apply(t, r, wire.OpParticipantTyping, "", app.TypingPayload{ParticipantID: "me", Typing: true})
	if got := r.Typing(); len(got) != 1 || got[0] != "host" {
		t.Fatalf("expected host typing, got %v", got)
	}

	now = now.Add(2 * time.Second)
	apply(t, r, wire.OpParticipantTyping, "", app.TypingPayload{ParticipantID: "host", Typing: true})
	now = now.Add(2 * time.Second)
	if got := r.Typing(); len(got) != 1 {
		t.Fatalf("expected refresh to extend the indicator, got %v", got)
	}

	now = now.Add(typingTTL)
	if got := r.Typing(); len(got) != 0 {
		t.Fatalf("expected indicator expired, got %v", got)
	}

	apply(t, r, wire.OpParticipantTyping, "", app.TypingPayload{ParticipantID: "host", Typing: true})
	apply(t, r, wire.OpParticipantTyping, "", app.TypingPayload{ParticipantID: "host", Typing: false})
	if got := r.Typing(); len(got) != 0 {
		t.Fatalf("expected typing_stop to clear, got %v", got)
	}
}

func TestApplyRejectsUnknownMessages(t *testing.T) {
	r := newReplica(t, domain.PhaseInput)

	if err := r.Apply(wire.OpResponseAdded, encode(t, wire.OpPhaseChanged, "", app.PhaseChangedPayload{})); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent for mismatched op, got %v", err)
	}
	clientOp, err := proto.Marshal(&pb.EventEnvelope{V: wire.Version, Event: "add_response"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := r.Apply(wire.OpAddResponse, clientOp); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent for client op, got %v", err)
	}
	future, err := proto.Marshal(&pb.EventEnvelope{V: 2, Event: "response_added"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := r.Apply(wire.OpResponseAdded, future); err == nil {
		t.Fatal("expected version error")
	}
	if err := r.Apply(wire.OpResponseAdded, []byte(`{"v":1}`)); err == nil {
		t.Fatal("expected error for a message that is not protobuf")
	}
}

func TestConnectionPredictions(t *testing.T) {
	r := newReplica(t, domain.PhaseGrouping)
	r.Predict("op-link", wire.OpCreateConnection, &pb.CreateConnection{FromResponseId: "r1", ToResponseId: "r2"})
	if _, ok := r.View().ConnectionBetween("r2", "r1"); !ok {
		t.Fatal("expected predicted connection")
	}

	apply(t, r, wire.OpConnectionCreated, "op-link", domain.Connection{ID: "c1", FromResponseID: "r1", ToResponseID: "r2"})
	r.Predict("op-unlink", wire.OpRemoveConnection, &pb.RemoveConnection{FromResponseId: "r2", ToResponseId: "r1"})
	if _, ok := r.View().ConnectionBetween("r1", "r2"); ok {
		t.Fatal("expected predicted removal")
	}
	if _, ok := r.Base().Connections["c1"]; !ok {
		t.Fatal("expected base to keep the connection until acknowledged")
	}
}

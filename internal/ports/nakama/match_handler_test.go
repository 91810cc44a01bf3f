package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"retroflow/internal/app"
	"retroflow/internal/config"
	"retroflow/internal/domain"
	"retroflow/internal/ports"
	"retroflow/internal/wire"
	pb "retroflow/proto"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// sentMessage is one BroadcastMessage call. to is nil for a full broadcast.
type sentMessage struct {
	opCode int64
	data   []byte
	to     []string
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	runtime.MatchDispatcher
	sent         []sentMessage
	labelUpdates int
	lastLabel    string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	msg := sentMessage{opCode: opCode, data: append([]byte(nil), data...)}
	for _, p := range presences {
		msg.to = append(msg.to, p.GetUserId())
	}
	md.sent = append(md.sent, msg)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) reset() {
	md.sent = nil
}

// received returns the messages delivered to userID, in order.
func (md *mockDispatcher) received(userID string) []sentMessage {
	var out []sentMessage
	for _, m := range md.sent {
		if m.to == nil || containsString(m.to, userID) {
			out = append(out, m)
		}
	}
	return out
}

type fakePresence struct {
	runtime.Presence
	userID string
}

func (p fakePresence) GetUserId() string    { return p.userID }
func (p fakePresence) GetSessionId() string { return "session-" + p.userID }
func (p fakePresence) GetUsername() string  { return p.userID }

type fakeMatchData struct {
	runtime.MatchData
	userID string
	opCode int64
	data   []byte
}

func (m fakeMatchData) GetUserId() string { return m.userID }
func (m fakeMatchData) GetOpCode() int64  { return m.opCode }
func (m fakeMatchData) GetData() []byte   { return m.data }

type fakeMirror struct {
	published map[string][]byte
	calls     int
}

func (f *fakeMirror) Publish(ctx context.Context, sessionID string, snapshot []byte) error {
	if f.published == nil {
		f.published = make(map[string][]byte)
	}
	f.calls++
	f.published[sessionID] = append([]byte(nil), snapshot...)
	return nil
}

func (f *fakeMirror) Fetch(ctx context.Context, sessionID string) ([]byte, error) {
	data, ok := f.published[sessionID]
	if !ok {
		return nil, ports.ErrSnapshotNotFound
	}
	return data, nil
}

func decode(t *testing.T, m sentMessage) wire.Event {
	t.Helper()
	out, err := wire.DecodeEvent(m.opCode, m.data)
	if err != nil {
		t.Fatalf("decode sent message: %v", err)
	}
	return out
}

func events(t *testing.T, msgs []sentMessage) []string {
	t.Helper()
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, decode(t, m).Name)
	}
	return out
}

// only keeps the messages carrying the named event.
func only(t *testing.T, msgs []sentMessage, event string) []sentMessage {
	t.Helper()
	var out []sentMessage
	for _, m := range msgs {
		if decode(t, m).Name == event {
			out = append(out, m)
		}
	}
	return out
}

const (
	testSessionID = "session-1"
	testSecret    = "test-secret"
	testIssuer    = "retroflow"
)

type testMatch struct {
	t          *testing.T
	handler    *matchHandler
	state      *BoardState
	dispatcher *mockDispatcher
	tickets    *app.TicketService
	mirror     *fakeMirror
	tick       int64
}

func testSeed() ports.SessionSeed {
	return ports.SessionSeed{
		SessionID:  testSessionID,
		InviteCode: "ABC123",
		HostID:     "p-host",
		Title:      "Sprint 42",
		Participants: []ports.ParticipantSeed{
			{ID: "p-host", UserID: "u-host", DisplayName: "Host", AvatarID: "🦁"},
			{ID: "p-1", UserID: "u-1", DisplayName: "One", AvatarID: "🦊"},
		},
		CreatedAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}
}

func newTestMatch(t *testing.T, cfg config.BoardConfig) *testMatch {
	t.Helper()
	tickets := app.NewTicketService(testSecret, testIssuer)
	mirror := &fakeMirror{}
	handler := &matchHandler{deps: matchDeps{
		cfg:     cfg,
		tickets: tickets,
		mirror:  mirror,
		newService: func(cfg config.BoardConfig) *app.Service {
			return app.NewService(cfg, rand.New(rand.NewSource(1)))
		},
	}}

	seed, err := json.Marshal(testSeed())
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	state, tickRate, label := handler.MatchInit(context.Background(), noopLogger{}, nil, nil, map[string]interface{}{paramSeed: string(seed)})
	if state == nil {
		t.Fatal("MatchInit returned nil state")
	}
	if tickRate != cfg.TickRate || label == "" {
		t.Fatalf("unexpected tick rate %d or empty label", tickRate)
	}

	return &testMatch{
		t:          t,
		handler:    handler,
		state:      state.(*BoardState),
		dispatcher: &mockDispatcher{},
		tickets:    tickets,
		mirror:     mirror,
	}
}

func (m *testMatch) ticket(userID, participantID string) string {
	m.t.Helper()
	raw, err := m.tickets.Issue(app.Ticket{UserID: userID, SessionID: testSessionID, ParticipantID: participantID, DisplayName: participantID})
	if err != nil {
		m.t.Fatalf("Issue: %v", err)
	}
	return raw
}

func (m *testMatch) join(userID, participantID string) {
	m.t.Helper()
	presence := fakePresence{userID: userID}
	_, ok, reason := m.handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, m.dispatcher, m.tick, m.state, presence, map[string]string{metadataTicket: m.ticket(userID, participantID)})
	if !ok {
		m.t.Fatalf("join attempt for %s rejected: %s", userID, reason)
	}
	m.handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, m.dispatcher, m.tick, m.state, []runtime.Presence{presence})
}

func (m *testMatch) leave(userID string) {
	m.handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, m.dispatcher, m.tick, m.state, []runtime.Presence{fakePresence{userID: userID}})
}

// send runs one loop tick carrying a single intent.
func (m *testMatch) send(userID string, op int64, opID string, payload wire.Payload) interface{} {
	m.t.Helper()
	data, err := wire.EncodeIntent(opID, payload)
	if err != nil {
		m.t.Fatalf("EncodeIntent: %v", err)
	}
	return m.loop(fakeMatchData{userID: userID, opCode: op, data: data})
}

func (m *testMatch) loop(msgs ...runtime.MatchData) interface{} {
	m.tick++
	return m.handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, m.dispatcher, m.tick, m.state, msgs)
}

// rawIntent wraps hand-built payload bytes in an envelope of version v.
func rawIntent(t *testing.T, v uint32, payload []byte) []byte {
	t.Helper()
	raw, err := proto.Marshal(&pb.IntentEnvelope{V: v, Data: payload})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return raw
}

func mustMarshal(t *testing.T, m proto.Message) []byte {
	t.Helper()
	raw, err := proto.Marshal(m)
	if err != nil {
		t.Fatalf("marshal %T: %v", m, err)
	}
	return raw
}

func TestMatchInitBuildsBoardFromSeed(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	board := m.state.Board

	if board.Session.Phase != domain.PhaseSetup {
		t.Fatalf("expected SETUP, got %s", board.Session.Phase)
	}
	if len(board.Participants) != 2 {
		t.Fatalf("expected 2 seeded participants, got %d", len(board.Participants))
	}
	if !board.Participants["p-host"].IsHost || board.Participants["p-1"].IsHost {
		t.Fatal("expected only p-host to be host")
	}
	if board.OnlineCount() != 0 {
		t.Fatalf("expected seeded participants offline, got %d online", board.OnlineCount())
	}
}

func TestMatchInitRejectsMissingSeed(t *testing.T) {
	handler := &matchHandler{deps: matchDeps{cfg: config.DefaultBoardConfig()}}
	state, _, _ := handler.MatchInit(context.Background(), noopLogger{}, nil, nil, map[string]interface{}{})
	if state != nil {
		t.Fatal("expected nil state without a seed")
	}
}

func TestMatchLabel_Marshal(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")

	var label map[string]interface{}
	if err := json.Unmarshal([]byte(m.dispatcher.lastLabel), &label); err != nil {
		t.Fatalf("unmarshal label: %v", err)
	}
	want := map[string]interface{}{
		"game":    "retroflow",
		"session": testSessionID,
		"invite":  "ABC123",
		"phase":   "SETUP",
		"online":  float64(1),
	}
	for key, value := range want {
		if label[key] != value {
			t.Errorf("label[%s] = %v, want %v", key, label[key], value)
		}
	}
}

func TestMatchJoinAttemptRequiresTicket(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	foreign, err := m.tickets.Issue(app.Ticket{UserID: "u-1", SessionID: "other", ParticipantID: "p-1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name     string
		metadata map[string]string
		want     bool
	}{
		{name: "valid", metadata: map[string]string{metadataTicket: m.ticket("u-1", "p-1")}, want: true},
		{name: "missing", metadata: nil, want: false},
		{name: "other user", metadata: map[string]string{metadataTicket: m.ticket("u-2", "p-1")}, want: false},
		{name: "other session", metadata: map[string]string{metadataTicket: foreign}, want: false},
		{name: "garbage", metadata: map[string]string{metadataTicket: "not-a-token"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, _ := m.handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, m.dispatcher, 0, m.state, fakePresence{userID: "u-1"}, tt.metadata)
			if ok != tt.want {
				t.Fatalf("accepted = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestMatchJoinSendsSnapshotAndAnnounces(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.dispatcher.reset()

	m.join("u-1", "p-1")

	hostGot := events(t, m.dispatcher.received("u-host"))
	if len(hostGot) != 1 || hostGot[0] != "participant_joined" {
		t.Fatalf("host expected participant_joined, got %v", hostGot)
	}
	joinerGot := events(t, m.dispatcher.received("u-1"))
	if len(joinerGot) != 1 || joinerGot[0] != "session_snapshot" {
		t.Fatalf("joiner expected session_snapshot, got %v", joinerGot)
	}
	if !m.state.Board.Participants["p-1"].Online {
		t.Fatal("expected p-1 online")
	}
}

func TestMatchLoopAppliesIntentAndEchoesOpID(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	m.dispatcher.reset()

	m.send("u-host", wire.OpChangePhase, "op-phase", &pb.ChangePhase{SessionId: testSessionID, Phase: "INPUT", TimerDuration: proto.Int32(60)})
	if m.state.Board.Session.Phase != domain.PhaseInput {
		t.Fatalf("expected INPUT, got %s", m.state.Board.Session.Phase)
	}
	if m.state.Board.Session.TimerEndTime == nil {
		t.Fatal("expected timer to be set")
	}
	if m.mirror.calls != 1 {
		t.Fatalf("expected snapshot mirrored on phase change, got %d publishes", m.mirror.calls)
	}
	m.dispatcher.reset()

	m.send("u-1", wire.OpAddResponse, "op-add", &pb.AddResponse{Content: "  Pairing helped  ", Category: "WENT_WELL"})
	if len(m.dispatcher.sent) != 1 {
		t.Fatalf("expected one broadcast, got %d", len(m.dispatcher.sent))
	}
	msg := m.dispatcher.sent[0]
	if msg.to != nil {
		t.Fatalf("expected broadcast to everyone, got %v", msg.to)
	}
	got := decode(t, msg)
	if got.Name != "response_added" || got.OpID != "op-add" {
		t.Fatalf("unexpected event %s with opId %q", got.Name, got.OpID)
	}
	response := got.Payload.(*pb.Response)
	if response.GetContent() != "Pairing helped" || response.GetParticipantId() != "p-1" {
		t.Fatalf("unexpected response %+v", response)
	}
}

func TestMatchLoopValidationErrorGoesToActorOnly(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	m.dispatcher.reset()

	// Adding is only allowed during INPUT.
	m.send("u-1", wire.OpAddResponse, "op-1", &pb.AddResponse{Content: "too early", Category: "WENT_WELL"})

	if len(m.dispatcher.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(m.dispatcher.sent))
	}
	msg := m.dispatcher.sent[0]
	if msg.opCode != wire.OpError || len(msg.to) != 1 || msg.to[0] != "u-1" {
		t.Fatalf("expected error to u-1 only, got op %d to %v", msg.opCode, msg.to)
	}
	got := decode(t, msg)
	payload := got.Payload.(*pb.Error)
	if payload.GetCode() != "validation_error" || got.OpID != "op-1" {
		t.Fatalf("unexpected error %+v (opId %q)", payload, got.OpID)
	}
	if len(m.state.Board.Responses) != 0 {
		t.Fatal("rejected intent must not mutate the board")
	}
}

func TestMatchLoopRejectsMalformedAndForeignSession(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")

	input := mustMarshal(t, &pb.ChangePhase{Phase: "INPUT"})
	bogus := protowire.AppendVarint(protowire.AppendTag(append([]byte(nil), input...), 42, protowire.VarintType), 1)
	tests := []struct {
		name string
		msg  fakeMatchData
	}{
		{name: "unknown field", msg: fakeMatchData{userID: "u-host", opCode: wire.OpChangePhase, data: rawIntent(t, 1, bogus)}},
		{name: "bad version", msg: fakeMatchData{userID: "u-host", opCode: wire.OpChangePhase, data: rawIntent(t, 2, input)}},
		{name: "unknown op", msg: fakeMatchData{userID: "u-host", opCode: 77, data: rawIntent(t, 1, nil)}},
		{name: "not protobuf", msg: fakeMatchData{userID: "u-host", opCode: wire.OpChangePhase, data: []byte(`{"v":1,"data":{"phase":"INPUT"}}`)}},
		{name: "foreign session", msg: fakeMatchData{userID: "u-host", opCode: wire.OpChangePhase, data: rawIntent(t, 1, mustMarshal(t, &pb.ChangePhase{SessionId: "other", Phase: "INPUT"}))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.dispatcher.reset()
			m.loop(tt.msg)
			if len(m.dispatcher.sent) != 1 || m.dispatcher.sent[0].opCode != wire.OpError {
				t.Fatalf("expected a single error message, got %d messages", len(m.dispatcher.sent))
			}
			if m.state.Board.Session.Phase != domain.PhaseSetup {
				t.Fatalf("phase changed to %s", m.state.Board.Session.Phase)
			}
		})
	}
}

func TestMatchLoopSilentlyDropsNonHostPhaseChange(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	m.dispatcher.reset()

	m.send("u-1", wire.OpChangePhase, "op-1", &pb.ChangePhase{Phase: "INPUT"})
	m.send("u-host", wire.OpChangePhase, "op-2", &pb.ChangePhase{Phase: "RESULTS"})
	m.send("u-1", wire.OpChangePhase, "", &pb.ChangePhase{Phase: "INPUT"})

	// Only the senders hear back, and only to settle their opIds.
	if len(m.dispatcher.sent) != 2 {
		t.Fatalf("expected two acks, got %v", events(t, m.dispatcher.sent))
	}
	for i, want := range []struct{ user, opID string }{{"u-1", "op-1"}, {"u-host", "op-2"}} {
		msg := m.dispatcher.sent[i]
		got := decode(t, msg)
		if got.Name != "ack" || got.OpID != want.opID || len(msg.to) != 1 || msg.to[0] != want.user {
			t.Fatalf("message %d = %s %q to %v", i, got.Name, got.OpID, msg.to)
		}
	}
	if m.state.Board.Session.Phase != domain.PhaseSetup {
		t.Fatalf("phase changed to %s", m.state.Board.Session.Phase)
	}
}

func TestMatchLoopAcksNoOpIntents(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	board := m.state.Board
	board.Session.Phase = domain.PhaseVoting
	board.Responses["r1"] = &domain.Response{ID: "r1", ParticipantID: "p-1", Category: domain.CategoryWentWell, Content: "Retro cadence"}
	m.dispatcher.reset()

	// Zero votes on a card that was never materialized changes nothing.
	m.send("u-1", wire.OpCastVote, "op-zero", &pb.CastVote{ParticipantId: "p-1", GroupId: "individual-r1", VoteCount: proto.Int32(0)})
	// Ending a presentation that is not running changes nothing either.
	m.send("u-host", wire.OpEndPresentation, "op-end", &pb.EndPresentation{})

	if len(m.dispatcher.sent) != 2 {
		t.Fatalf("expected two acks, got %v", events(t, m.dispatcher.sent))
	}
	vote, end := m.dispatcher.sent[0], m.dispatcher.sent[1]
	if got := decode(t, vote); vote.opCode != wire.OpAck || got.OpID != "op-zero" || len(vote.to) != 1 || vote.to[0] != "u-1" {
		t.Fatalf("vote answer = %s %q to %v", got.Name, got.OpID, vote.to)
	}
	if got := decode(t, end); end.opCode != wire.OpAck || got.OpID != "op-end" || len(end.to) != 1 || end.to[0] != "u-host" {
		t.Fatalf("end answer = %s %q to %v", got.Name, got.OpID, end.to)
	}
	if len(board.Groups) != 0 || len(board.Votes) != 0 {
		t.Fatal("no-op vote must not materialize anything")
	}
}

func TestMatchLoopTypingAcksSenderOnly(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	m.dispatcher.reset()

	m.send("u-1", wire.OpTypingStart, "op-typing", &pb.Typing{})

	if got := events(t, m.dispatcher.received("u-host")); len(got) != 1 || got[0] != "participant_typing" {
		t.Fatalf("host expected participant_typing, got %v", got)
	}
	if got := events(t, m.dispatcher.received("u-1")); len(got) != 1 || got[0] != "ack" {
		t.Fatalf("sender expected ack, got %v", got)
	}
}

func TestMatchLoopStaleReferenceSendsSnapshot(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	m.send("u-host", wire.OpChangePhase, "", &pb.ChangePhase{Phase: "INPUT"})
	m.send("u-1", wire.OpAddResponse, "", &pb.AddResponse{Content: "gone soon", Category: "DIDNT_GO_WELL"})

	var responseID string
	for id := range m.state.Board.Responses {
		responseID = id
	}
	m.send("u-1", wire.OpDeleteResponse, "", &pb.DeleteResponse{ResponseId: responseID})
	m.dispatcher.reset()

	m.send("u-1", wire.OpUpdateResponse, "op-late", &pb.UpdateResponse{ResponseId: responseID, Content: "edit"})

	got := events(t, m.dispatcher.sent)
	if len(got) != 2 || got[0] != "error" || got[1] != "session_snapshot" {
		t.Fatalf("expected error then snapshot, got %v", got)
	}
	for _, msg := range m.dispatcher.sent {
		if len(msg.to) != 1 || msg.to[0] != "u-1" {
			t.Fatalf("expected message to u-1 only, got %v", msg.to)
		}
	}
	payload := decode(t, m.dispatcher.sent[0]).Payload.(*pb.Error)
	if payload.GetCode() != "stale_reference" {
		t.Fatalf("expected stale_reference, got %s", payload.GetCode())
	}
}

func TestMatchLoopVoteCopiesDifferPerRecipient(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	board := m.state.Board
	board.Session.Phase = domain.PhaseVoting
	board.Responses["r1"] = &domain.Response{ID: "r1", ParticipantID: "p-1", Category: domain.CategoryWentWell, Content: "Retro cadence"}
	m.join("u-2", "p-2")
	m.dispatcher.reset()

	m.send("u-1", wire.OpCastVote, "op-vote", &pb.CastVote{ParticipantId: "p-1", GroupId: "individual-r1", VoteCount: proto.Int32(2)})

	hostMsgs := only(t, m.dispatcher.received("u-host"), "votes_updated")
	voterMsgs := only(t, m.dispatcher.received("u-1"), "votes_updated")
	otherMsgs := only(t, m.dispatcher.received("u-2"), "votes_updated")
	if len(hostMsgs) != 1 || len(voterMsgs) != 1 || len(otherMsgs) != 1 {
		t.Fatalf("expected one votes_updated each, got host=%v voter=%v other=%v", events(t, hostMsgs), events(t, voterMsgs), events(t, otherMsgs))
	}

	host := decode(t, hostMsgs[0]).Payload.(*pb.VotesUpdated)
	voter := decode(t, voterMsgs[0]).Payload.(*pb.VotesUpdated)
	other := decode(t, otherMsgs[0]).Payload.(*pb.VotesUpdated)
	if host.GetTotalVotes() != 2 || voter.GetTotalVotes() != 2 || other.GetTotalVotes() != 2 {
		t.Fatalf("expected total 2, got host=%d voter=%d other=%d", host.GetTotalVotes(), voter.GetTotalVotes(), other.GetTotalVotes())
	}
	budgets := wire.VotesUpdatedFrom(host).RemainingBudgets
	if budgets["p-1"] != 2 || budgets["p-2"] != 4 {
		t.Fatalf("expected host copy to carry budgets, got %v", budgets)
	}
	if len(voter.GetRemainingBudgets()) != 0 || len(other.GetRemainingBudgets()) != 0 {
		t.Fatal("expected participant copies without budgets")
	}
	if voter.GetOwnVotes() != 2 || other.GetOwnVotes() != 0 || host.GetOwnVotes() != 0 {
		t.Fatalf("own votes: voter=%d other=%d host=%d", voter.GetOwnVotes(), other.GetOwnVotes(), host.GetOwnVotes())
	}
}

func TestMatchJoinStampsLateJoiner(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.dispatcher.reset()

	m.join("u-late", "p-late")

	late, ok := m.state.Board.Participants["p-late"]
	if !ok || !late.Online {
		t.Fatal("expected p-late on the board and online")
	}
	if late.JoinedAt.IsZero() {
		t.Fatal("expected JoinedAt to be set for a participant missing from the seed")
	}
	announced := only(t, m.dispatcher.received("u-host"), "participant_joined")
	if len(announced) != 1 {
		t.Fatalf("expected participant_joined for the host, got %v", events(t, m.dispatcher.received("u-host")))
	}
	if p := decode(t, announced[0]).Payload.(*pb.Participant); p.GetJoinedAt() == nil || p.GetId() != "p-late" {
		t.Fatalf("announced participant = %+v", p)
	}
	snapshots := only(t, m.dispatcher.received("u-late"), "session_snapshot")
	if len(snapshots) != 1 {
		t.Fatalf("expected a snapshot for the joiner, got %v", events(t, m.dispatcher.received("u-late")))
	}
	snap := wire.SnapshotFrom(decode(t, snapshots[0]).Payload.(*pb.Snapshot))
	for _, p := range snap.Participants {
		if p.ID == "p-late" && !p.JoinedAt.IsZero() {
			return
		}
	}
	t.Fatalf("expected stamped p-late in snapshot, got %+v", snap.Participants)
}

func TestMatchLeaveKeepsDataAndAnnounces(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.join("u-1", "p-1")
	m.state.Board.Responses["r1"] = &domain.Response{ID: "r1", ParticipantID: "p-1"}
	m.dispatcher.reset()

	m.leave("u-1")

	got := events(t, m.dispatcher.received("u-host"))
	if len(got) != 1 || got[0] != "participant_left" {
		t.Fatalf("expected participant_left, got %v", got)
	}
	if m.state.Board.Participants["p-1"].Online {
		t.Fatal("expected p-1 offline")
	}
	if _, ok := m.state.Board.Responses["r1"]; !ok {
		t.Fatal("expected responses to survive a leave")
	}
}

func TestMatchLeaveWaitsForLastConnection(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	// A second device signed in as the same participant.
	presence := fakePresence{userID: "u-host-2"}
	raw := m.ticket("u-host-2", "p-host")
	if _, ok, _ := m.handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, m.dispatcher, 0, m.state, presence, map[string]string{metadataTicket: raw}); !ok {
		t.Fatal("second device rejected")
	}
	m.handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, m.dispatcher, 0, m.state, []runtime.Presence{presence})

	m.leave("u-host")
	if !m.state.Board.Participants["p-host"].Online {
		t.Fatal("expected host to stay online while another connection is bound")
	}
	m.leave("u-host-2")
	if m.state.Board.Participants["p-host"].Online {
		t.Fatal("expected host offline after the last connection left")
	}
}

func TestMatchLoopTerminatesWhenIdle(t *testing.T) {
	cfg := config.DefaultBoardConfig()
	cfg.TickRate = 2
	cfg.IdleTerminateSeconds = 1
	m := newTestMatch(t, cfg)

	if m.loop() == nil {
		t.Fatal("terminated too early")
	}
	if m.loop() != nil {
		t.Fatal("expected idle match to terminate")
	}
	if m.mirror.calls != 1 {
		t.Fatalf("expected final snapshot to be mirrored, got %d publishes", m.mirror.calls)
	}
}

func TestMatchLoopExpiresInputTimer(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-host", "p-host")
	m.send("u-host", wire.OpChangePhase, "", &pb.ChangePhase{Phase: "INPUT", TimerDuration: proto.Int32(30)})
	past := time.Now().Add(-time.Second)
	m.state.Board.Session.TimerEndTime = &past
	m.dispatcher.reset()

	m.loop()

	if m.state.Board.Session.Phase != domain.PhaseGrouping {
		t.Fatalf("expected GROUPING after expiry, got %s", m.state.Board.Session.Phase)
	}
	got := events(t, m.dispatcher.sent)
	if len(got) < 1 || got[0] != "phase_changed" {
		t.Fatalf("expected phase_changed first, got %v", got)
	}
	if decode(t, m.dispatcher.sent[0]).OpID != "" {
		t.Fatal("timer events must not carry an opId")
	}
}

func TestMatchSignalReturnsViewerSnapshot(t *testing.T) {
	m := newTestMatch(t, config.DefaultBoardConfig())
	m.join("u-1", "p-1")

	_, out := m.handler.MatchSignal(context.Background(), noopLogger{}, nil, nil, m.dispatcher, 0, m.state, `{"userId":"u-1"}`)
	var snap app.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.Session.ID != testSessionID || snap.RemainingVotes != config.DefaultBoardConfig().VoteBudget {
		t.Fatalf("unexpected snapshot %+v", snap.Session)
	}
	if snap.RemainingBudgets != nil {
		t.Fatal("non-host snapshot must not carry budgets")
	}
}

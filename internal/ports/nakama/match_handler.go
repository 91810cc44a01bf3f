package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"retroflow/internal/app"
	"retroflow/internal/config"
	"retroflow/internal/domain"
	"retroflow/internal/ports"
	"retroflow/internal/wire"
	pb "retroflow/proto"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BoardState holds the authoritative runtime state for the Nakama match handler.
// It is only touched from the match loop goroutine.
type BoardState struct {
	Board     *domain.Board
	App       *app.Service
	Tickets   *app.TicketService
	Mirror    ports.SnapshotMirrorPort    // optional
	Presences map[string]runtime.Presence // user id -> presence
	Bindings  map[string]string           // user id -> participant id
	Pending   map[string]app.Ticket       // verified tickets awaiting MatchJoin
	TickRate  int
	IdleTicks int
}

// presencesOf returns the live presences bound to participantID, sorted by user id.
func (s *BoardState) presencesOf(participantID string) []runtime.Presence {
	var out []runtime.Presence
	for userID, pid := range s.Bindings {
		if pid != participantID {
			continue
		}
		if p, ok := s.Presences[userID]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetUserId() < out[j].GetUserId() })
	return out
}

// connectedTo reports whether any presence other than userID is bound to participantID.
func (s *BoardState) connectedTo(participantID, userID string) bool {
	for uid, pid := range s.Bindings {
		if uid != userID && pid == participantID {
			if _, ok := s.Presences[uid]; ok {
				return true
			}
		}
	}
	return false
}

// matchDeps are the process-wide collaborators shared by every board match.
type matchDeps struct {
	cfg        config.BoardConfig
	tickets    *app.TicketService
	mirror     ports.SnapshotMirrorPort
	newService func(cfg config.BoardConfig) *app.Service
}

// newMatchFactory returns the factory registered with Nakama.
func newMatchFactory(deps matchDeps) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule) (runtime.Match, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return &matchHandler{deps: deps}, nil
	}
}

type matchHandler struct {
	deps matchDeps
}

// MatchInit is called when the match is created. params["seed"] carries the
// JSON encoded ports.SessionSeed the board starts from.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	raw, _ := params[paramSeed].(string)
	seed := ports.SessionSeed{}
	if err := json.Unmarshal([]byte(raw), &seed); err != nil || seed.SessionID == "" {
		logger.Error("MatchInit: invalid session seed: %v", err)
		return nil, 0, ""
	}

	board := domain.NewBoard(domain.Session{
		ID:         seed.SessionID,
		InviteCode: seed.InviteCode,
		HostID:     seed.HostID,
		Title:      seed.Title,
		Phase:      domain.PhaseSetup,
		Settings:   seed.Settings,
		CreatedAt:  seed.CreatedAt,
		UpdatedAt:  seed.CreatedAt,
	})
	for _, p := range seed.Participants {
		board.UpsertParticipant(domain.Participant{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			AvatarID:    p.AvatarID,
			JoinedAt:    seed.CreatedAt,
		})
	}

	newService := mh.deps.newService
	if newService == nil {
		newService = func(cfg config.BoardConfig) *app.Service { return app.NewService(cfg, nil) }
	}

	tickRate := mh.deps.cfg.TickRate
	if tickRate <= 0 {
		tickRate = config.DefaultBoardConfig().TickRate
	}

	state := &BoardState{
		Board:     board,
		App:       newService(mh.deps.cfg),
		Tickets:   mh.deps.tickets,
		Mirror:    mh.deps.mirror,
		Presences: make(map[string]runtime.Presence),
		Bindings:  make(map[string]string),
		Pending:   make(map[string]app.Ticket),
		TickRate:  tickRate,
	}

	label, err := encodeLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	logger.Info("MatchInit: board %s ready (invite %s, %d participants)", seed.SessionID, seed.InviteCode, len(seed.Participants))
	return state, tickRate, label
}

// MatchJoinAttempt admits only users presenting a valid ticket for this session.
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	boardState, ok := state.(*BoardState)
	if !ok {
		return state, false, "state not found"
	}

	ticket, err := boardState.Tickets.Verify(metadata[metadataTicket], presence.GetUserId(), boardState.Board.Session.ID)
	if err != nil {
		logger.Warn("MatchJoinAttempt: rejecting %s: %v", presence.GetUserId(), err)
		return boardState, false, "invalid ticket"
	}
	boardState.Pending[presence.GetUserId()] = ticket
	return boardState, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	boardState, ok := state.(*BoardState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		ticket, ok := boardState.Pending[userID]
		if !ok {
			logger.Warn("MatchJoin: User %s joined without a verified ticket.", userID)
			continue
		}
		delete(boardState.Pending, userID)

		boardState.Presences[userID] = p
		boardState.Bindings[userID] = ticket.ParticipantID

		board := boardState.Board
		board.UpsertParticipant(domain.Participant{
			ID:          ticket.ParticipantID,
			DisplayName: ticket.DisplayName,
			AvatarID:    ticket.AvatarID,
		})
		if ticket.Host && board.Session.HostID == "" {
			board.SetHost(ticket.ParticipantID)
		}

		participant := *board.Participants[ticket.ParticipantID]
		logger.Debug("MatchJoin: user %s bound to participant %s (host=%v)", userID, participant.ID, participant.IsHost)
		mh.broadcastAll(boardState, dispatcher, logger, "", boardState.App.Join(board, participant))
	}

	mh.updateLabel(boardState, dispatcher, logger)
	return boardState
}

// MatchLeave marks participants offline once their last connection is gone.
// The board keeps all their data.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	boardState, ok := state.(*BoardState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		pid, bound := boardState.Bindings[userID]
		delete(boardState.Presences, userID)
		delete(boardState.Bindings, userID)
		delete(boardState.Pending, userID)
		if !bound || boardState.connectedTo(pid, userID) {
			continue
		}
		logger.Debug("MatchLeave: participant %s went offline.", pid)
		mh.broadcastAll(boardState, dispatcher, logger, "", boardState.App.Leave(boardState.Board, pid))
	}

	mh.updateLabel(boardState, dispatcher, logger)
	return boardState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	boardState, ok := state.(*BoardState)
	if !ok {
		return state
	}

	phaseBefore := boardState.Board.Session.Phase

	for _, msg := range messages {
		mh.handleMessage(boardState, dispatcher, logger, msg)
	}

	// Timer expiry is a system event and carries no opId.
	mh.broadcastAll(boardState, dispatcher, logger, "", boardState.App.ExpireTimer(boardState.Board))

	if phase := boardState.Board.Session.Phase; phase != phaseBefore {
		logger.Info("MatchLoop: board %s moved %s -> %s", boardState.Board.Session.ID, phaseBefore, phase)
		mh.updateLabel(boardState, dispatcher, logger)
		mh.publishSnapshot(ctx, boardState, logger)
	}

	if len(boardState.Presences) == 0 {
		boardState.IdleTicks++
	} else {
		boardState.IdleTicks = 0
	}
	if limit := mh.deps.cfg.IdleTerminateSeconds * boardState.TickRate; limit > 0 && boardState.IdleTicks >= limit {
		logger.Info("MatchLoop: Terminating idle board %s.", boardState.Board.Session.ID)
		mh.publishSnapshot(ctx, boardState, logger)
		return nil
	}

	return boardState
}

// handleMessage decodes one client intent, applies it and fans out the result.
func (mh *matchHandler) handleMessage(state *BoardState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	userID := msg.GetUserId()
	participantID, ok := state.Bindings[userID]
	if !ok {
		logger.Warn("MatchLoop: Dropping op %d from unbound user %s", msg.GetOpCode(), userID)
		return
	}

	intent, err := wire.Decode(msg.GetOpCode(), msg.GetData())
	if err != nil {
		logger.Debug("MatchLoop: malformed op %d from %s: %v", msg.GetOpCode(), userID, err)
		mh.sendError(state, dispatcher, logger, userID, "", app.ClassValidation, err)
		return
	}

	events, err := mh.dispatch(state, participantID, intent)
	if err != nil {
		class := app.Classify(err)
		switch class {
		case app.ClassSilent:
			logger.Debug("MatchLoop: ignoring %s from %s: %v", wire.Name(intent.Op), participantID, err)
			mh.sendAck(state, dispatcher, logger, userID, intent.OpID)
		case app.ClassStale:
			mh.sendError(state, dispatcher, logger, userID, intent.OpID, class, err)
			mh.broadcastEvent(state, dispatcher, logger, intent.OpID, state.App.SnapshotFor(state.Board, participantID))
		case app.ClassNone:
			logger.Error("MatchLoop: %s from %s failed: %v", wire.Name(intent.Op), participantID, err)
			mh.sendError(state, dispatcher, logger, userID, intent.OpID, class, err)
		default:
			mh.sendError(state, dispatcher, logger, userID, intent.OpID, class, err)
		}
		return
	}

	mh.broadcastAll(state, dispatcher, logger, intent.OpID, events)
	if !reaches(events, participantID) {
		mh.sendAck(state, dispatcher, logger, userID, intent.OpID)
	}
}

// reaches reports whether any of events is addressed to participantID.
func reaches(events []app.Event, participantID string) bool {
	for _, ev := range events {
		if len(ev.Recipients) > 0 {
			if containsString(ev.Recipients, participantID) {
				return true
			}
			continue
		}
		if !containsString(ev.Exclude, participantID) {
			return true
		}
	}
	return false
}

func (mh *matchHandler) broadcastAll(state *BoardState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opID string, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, opID, ev)
	}
}

// broadcastEvent encodes ev and sends it to its recipients. Recipients and
// Exclude name participants; every presence bound to them is addressed.
func (mh *matchHandler) broadcastEvent(state *BoardState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opID string, ev app.Event) {
	opCode, ok := wire.OpFor(string(ev.Kind))
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := wire.Encode(opCode, opID, ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	switch {
	case len(ev.Recipients) > 0:
		for _, pid := range ev.Recipients {
			recipients = append(recipients, state.presencesOf(pid)...)
		}
		// Intended recipients that are offline must not turn this into a broadcast.
		if len(recipients) == 0 {
			return
		}
	case len(ev.Exclude) > 0:
		userIDs := make([]string, 0, len(state.Presences))
		for userID := range state.Presences {
			if !containsString(ev.Exclude, state.Bindings[userID]) {
				userIDs = append(userIDs, userID)
			}
		}
		if len(userIDs) == 0 {
			return
		}
		sort.Strings(userIDs)
		for _, userID := range userIDs {
			recipients = append(recipients, state.Presences[userID])
		}
	}

	if err := dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true); err != nil {
		logger.Error("Failed to broadcast %v: %v", ev.Kind, err)
	}
}

// sendError reports a rejected intent to the user that sent it.
func (mh *matchHandler) sendError(state *BoardState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID, opID string, class app.ErrorClass, cause error) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	message := cause.Error()
	if class == app.ClassNone {
		message = "internal error"
	}
	bytes, err := wire.Encode(wire.OpError, opID, &pb.Error{Code: class.Code(), Message: message})
	if err != nil {
		logger.Error("Failed to marshal error payload: %v", err)
		return
	}

	if err := dispatcher.BroadcastMessage(wire.OpError, bytes, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("Failed to send error to %s: %v", userID, err)
	}
}

// sendAck answers an intent that produced nothing for its sender to see, so
// the client can retire the prediction keyed by opID.
func (mh *matchHandler) sendAck(state *BoardState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID, opID string) {
	if opID == "" {
		return
	}
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	bytes, err := wire.Encode(wire.OpAck, opID, &pb.Ack{})
	if err != nil {
		logger.Error("Failed to marshal ack: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(wire.OpAck, bytes, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("Failed to send ack to %s: %v", userID, err)
	}
}

func (mh *matchHandler) updateLabel(state *BoardState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := encodeLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

// publishSnapshot mirrors the public board view for readers outside the match.
func (mh *matchHandler) publishSnapshot(ctx context.Context, state *BoardState, logger runtime.Logger) {
	if state.Mirror == nil {
		return
	}
	data, err := json.Marshal(state.App.Snapshot(state.Board, ""))
	if err != nil {
		logger.Error("PublishSnapshot: Failed to marshal: %v", err)
		return
	}
	if err := state.Mirror.Publish(ctx, state.Board.Session.ID, data); err != nil {
		logger.Warn("PublishSnapshot: board %s: %v", state.Board.Session.ID, err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	if boardState, ok := state.(*BoardState); ok {
		mh.publishSnapshot(ctx, boardState, logger)
	}
	return state
}

// signalRequest is the MatchSignal payload used by the board_snapshot RPC.
type signalRequest struct {
	UserID string `json:"userId"`
}

// MatchSignal returns the snapshot of the participant bound to the requesting
// user, or the public view when the user holds no binding.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	boardState, ok := state.(*BoardState)
	if !ok {
		return state, ""
	}

	req := signalRequest{}
	if data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			logger.Warn("MatchSignal: invalid payload: %v", err)
			return boardState, ""
		}
	}

	snap := boardState.App.Snapshot(boardState.Board, boardState.Bindings[req.UserID])
	out, err := json.Marshal(snap)
	if err != nil {
		logger.Error("MatchSignal: Failed to marshal snapshot: %v", err)
		return boardState, ""
	}
	return boardState, string(out)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// sessionMismatch rejects intents addressed to another board.
func sessionMismatch(board *domain.Board, payload wire.Payload) error {
	if sid := wire.SessionOf(payload); sid != "" && sid != board.Session.ID {
		return fmt.Errorf("%w: intent targets session %s", app.ErrValidation, sid)
	}
	return nil
}

package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"retroflow/internal/app"
	"retroflow/internal/app/onboarding"
	"retroflow/internal/ports"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// gRPC status codes used by runtime.NewError.
const (
	codeInvalidArgument  = 3
	codeNotFound         = 5
	codeAlreadyExists    = 6
	codePermissionDenied = 7
	codeInternal         = 13
	codeUnauthenticated  = 16
)

const (
	inviteCodeLength   = 6
	inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	maxTitleLength     = 120
)

// boardRPC serves the session RPCs. Adapters are built per call because the
// runtime hands every RPC its own NakamaModule.
type boardRPC struct {
	tickets   *app.TicketService
	mirror    ports.SnapshotMirrorPort // optional
	directory func(nk runtime.NakamaModule) ports.SessionDirectoryPort
	accounts  func(nk runtime.NakamaModule) ports.AccountPort
	profiles  *onboarding.Service
	now       func() time.Time

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func newBoardRPC(tickets *app.TicketService, mirror ports.SnapshotMirrorPort) *boardRPC {
	return &boardRPC{
		tickets: tickets,
		mirror:  mirror,
		directory: func(nk runtime.NakamaModule) ports.SessionDirectoryPort {
			return NewNakamaDirectoryAdapter(nk)
		},
		accounts: func(nk runtime.NakamaModule) ports.AccountPort {
			return NewNakamaAccountAdapter(nk)
		},
		profiles: onboarding.NewService(nil, nil),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RegisterSessionRequest creates a session hosted by the caller.
type RegisterSessionRequest struct {
	InviteCode  string            `json:"inviteCode"`
	Title       string            `json:"title"`
	DisplayName string            `json:"displayName"`
	AvatarID    string            `json:"avatarId"`
	Settings    map[string]string `json:"settings,omitempty"`
}

type RegisterSessionResponse struct {
	SessionID     string `json:"sessionId"`
	InviteCode    string `json:"inviteCode"`
	ParticipantID string `json:"participantId"`
}

// JoinBoardRequest resolves an invite code for the caller. ParticipantID is
// only needed to reclaim a participant created before.
type JoinBoardRequest struct {
	InviteCode    string `json:"inviteCode"`
	ParticipantID string `json:"participantId,omitempty"`
	DisplayName   string `json:"displayName"`
	AvatarID      string `json:"avatarId"`
}

type JoinBoardResponse struct {
	MatchID       string `json:"matchId"`
	SessionID     string `json:"sessionId"`
	ParticipantID string `json:"participantId"`
	Ticket        string `json:"ticket"`
	Host          bool   `json:"host"`
}

// BoardSnapshotRequest asks for the current snapshot of a board. SessionID is
// used to fall back to the mirrored snapshot once the match is gone.
type BoardSnapshotRequest struct {
	MatchID   string `json:"matchId"`
	SessionID string `json:"sessionId"`
}

// registerSession stores a new session seed with the caller as host.
//
// Payload: RegisterSessionRequest. Returns: RegisterSessionResponse.
func (r *boardRPC) registerSession(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", codeUnauthenticated)
	}

	var req RegisterSessionRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || len([]rune(req.Title)) > maxTitleLength {
		return "", runtime.NewError("Title is required", codeInvalidArgument)
	}
	inviteCode := normalizeInviteCode(req.InviteCode)
	generated := inviteCode == ""
	if generated {
		inviteCode = r.newInviteCode()
	}

	host := ports.ParticipantSeed{
		ID:          uuid.NewString(),
		UserID:      userID,
		DisplayName: strings.TrimSpace(req.DisplayName),
		AvatarID:    strings.TrimSpace(req.AvatarID),
	}
	r.fillProfile(ctx, logger, nk, &host, nil)

	seed := ports.SessionSeed{
		SessionID:    uuid.NewString(),
		InviteCode:   inviteCode,
		HostID:       host.ID,
		Title:        req.Title,
		Settings:     req.Settings,
		Participants: []ports.ParticipantSeed{host},
		CreatedAt:    r.now(),
	}

	directory := r.directory(nk)
	err := directory.CreateSession(ctx, seed)
	if errors.Is(err, ports.ErrSessionExists) && generated {
		// Collision on a generated code; one retry with a fresh code.
		seed.InviteCode = r.newInviteCode()
		err = directory.CreateSession(ctx, seed)
	}
	if errors.Is(err, ports.ErrSessionExists) {
		return "", runtime.NewError("Invite code already in use", codeAlreadyExists)
	}
	if err != nil {
		logger.Error("RegisterSession [User:%s]: Failed to store session: %v", userID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.Info("RegisterSession [User:%s]: Created session %s (%s)", userID, seed.SessionID, seed.InviteCode)
	return marshalResponse(RegisterSessionResponse{
		SessionID:     seed.SessionID,
		InviteCode:    seed.InviteCode,
		ParticipantID: host.ID,
	})
}

// joinBoard resolves an invite code to the match serving the session, creating
// the match on first use, and issues a join ticket for the caller.
//
// Payload: JoinBoardRequest. Returns: JoinBoardResponse.
func (r *boardRPC) joinBoard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", codeUnauthenticated)
	}

	var req JoinBoardRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	inviteCode := normalizeInviteCode(req.InviteCode)
	if inviteCode == "" {
		return "", runtime.NewError("Invite code required", codeInvalidArgument)
	}

	directory := r.directory(nk)
	seed, err := directory.LookupByInviteCode(ctx, inviteCode)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return "", runtime.NewError("Session not found", codeNotFound)
	}
	if err != nil {
		logger.Error("JoinBoard [User:%s]: Failed to look up %s: %v", userID, inviteCode, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	participant, known := seed.ParticipantByUser(userID)
	if req.ParticipantID != "" && (!known || participant.ID != req.ParticipantID) {
		return "", runtime.NewError("Participant belongs to another user", codePermissionDenied)
	}
	if !known {
		participant = ports.ParticipantSeed{
			ID:          uuid.NewString(),
			UserID:      userID,
			DisplayName: strings.TrimSpace(req.DisplayName),
			AvatarID:    strings.TrimSpace(req.AvatarID),
		}
		r.fillProfile(ctx, logger, nk, &participant, seed.Avatars())
		seed, err = directory.AddParticipant(ctx, inviteCode, participant)
		if err != nil {
			logger.Error("JoinBoard [User:%s]: Failed to add participant: %v", userID, err)
			return "", runtime.NewError("Internal error", codeInternal)
		}
		// A concurrent join by the same user may have won.
		if stored, ok := seed.ParticipantByUser(userID); ok {
			participant = stored
		}
	}

	matchID, err := r.ensureMatch(ctx, logger, nk, directory, seed)
	if err != nil {
		logger.Error("JoinBoard [User:%s]: Failed to open board %s: %v", userID, seed.SessionID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	host := participant.ID == seed.HostID
	ticket, err := r.tickets.Issue(app.Ticket{
		UserID:        userID,
		SessionID:     seed.SessionID,
		ParticipantID: participant.ID,
		DisplayName:   participant.DisplayName,
		AvatarID:      participant.AvatarID,
		Host:          host,
	})
	if err != nil {
		logger.Error("JoinBoard [User:%s]: Failed to issue ticket: %v", userID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.Info("JoinBoard [User:%s]: participant %s -> match %s", userID, participant.ID, matchID)
	return marshalResponse(JoinBoardResponse{
		MatchID:       matchID,
		SessionID:     seed.SessionID,
		ParticipantID: participant.ID,
		Ticket:        ticket,
		Host:          host,
	})
}

// ensureMatch returns the live match serving seed, creating and binding one
// when none is recorded or the recorded one has ended.
func (r *boardRPC) ensureMatch(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, directory ports.SessionDirectoryPort, seed *ports.SessionSeed) (string, error) {
	if seed.MatchID != "" {
		match, err := nk.MatchGet(ctx, seed.MatchID)
		if err == nil && match != nil {
			return seed.MatchID, nil
		}
		logger.Debug("JoinBoard: match %s for session %s is gone", seed.MatchID, seed.SessionID)
	}

	params, err := json.Marshal(seed)
	if err != nil {
		return "", err
	}
	matchID, err := nk.MatchCreate(ctx, MatchNameRetro, map[string]interface{}{paramSeed: string(params)})
	if err != nil {
		return "", err
	}

	bound, err := directory.BindMatch(ctx, seed.InviteCode, matchID)
	if err != nil {
		return "", err
	}
	if bound.MatchID != matchID {
		// Another join bound its match first; the spare one idles out.
		logger.Info("JoinBoard: session %s already served by %s", seed.SessionID, bound.MatchID)
		return bound.MatchID, nil
	}
	logger.Info("JoinBoard: Created match %s for session %s", matchID, seed.SessionID)
	return matchID, nil
}

// boardSnapshot returns the caller's view of a live board, or the mirrored
// public snapshot once the match has ended.
//
// Payload: BoardSnapshotRequest. Returns: the snapshot JSON.
func (r *boardRPC) boardSnapshot(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req BoardSnapshotRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if req.MatchID == "" && req.SessionID == "" {
		return "", runtime.NewError("Match or session id required", codeInvalidArgument)
	}

	if req.MatchID != "" {
		signal, _ := json.Marshal(signalRequest{UserID: userID})
		out, err := nk.MatchSignal(ctx, req.MatchID, string(signal))
		if err == nil && out != "" {
			return out, nil
		}
		logger.Debug("BoardSnapshot [User:%s]: match %s unavailable: %v", userID, req.MatchID, err)
	}

	if r.mirror == nil || req.SessionID == "" {
		return "", runtime.NewError("Snapshot not found", codeNotFound)
	}
	data, err := r.mirror.Fetch(ctx, req.SessionID)
	if errors.Is(err, ports.ErrSnapshotNotFound) {
		return "", runtime.NewError("Snapshot not found", codeNotFound)
	}
	if err != nil {
		logger.Error("BoardSnapshot [User:%s]: Failed to fetch mirror: %v", userID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(data), nil
}

// fillProfile completes missing display name and avatar from the caller's
// account, then from generated values.
func (r *boardRPC) fillProfile(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, p *ports.ParticipantSeed, usedAvatars []string) {
	if p.DisplayName == "" || p.AvatarID == "" {
		profile, err := r.accounts(nk).GetProfile(ctx, p.UserID)
		if err != nil {
			logger.Warn("Profile lookup for %s failed: %v", p.UserID, err)
		}
		if p.DisplayName == "" {
			p.DisplayName = profile.DisplayName
		}
		if p.AvatarID == "" && !containsString(usedAvatars, profile.AvatarID) {
			p.AvatarID = profile.AvatarID
		}
	}
	if p.DisplayName == "" {
		p.DisplayName = r.profiles.GenerateName()
	}
	if p.AvatarID == "" {
		p.AvatarID = r.profiles.PickAvatar(usedAvatars)
	}
}

func (r *boardRPC) newInviteCode() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, inviteCodeLength)
	for i := range b {
		b[i] = inviteCodeAlphabet[r.rng.Intn(len(inviteCodeAlphabet))]
	}
	return string(b)
}

func normalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func marshalResponse(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(b), nil
}

package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when no session matches an invite code.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionExists is returned when an invite code is already taken.
var ErrSessionExists = errors.New("session already exists")

// ParticipantSeed is a participant known to the session service.
type ParticipantSeed struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	AvatarID    string `json:"avatarId"`
}

// SessionSeed is the initial session record that seeds a board.
type SessionSeed struct {
	SessionID    string            `json:"sessionId"`
	InviteCode   string            `json:"inviteCode"`
	HostID       string            `json:"hostId"`
	Title        string            `json:"title"`
	Settings     map[string]string `json:"settings,omitempty"`
	Participants []ParticipantSeed `json:"participants"`
	MatchID      string            `json:"matchId,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Participant returns the seeded participant with the given id.
func (s *SessionSeed) Participant(id string) (ParticipantSeed, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return ParticipantSeed{}, false
}

// ParticipantByUser returns the participant owned by the Nakama user userID.
func (s *SessionSeed) ParticipantByUser(userID string) (ParticipantSeed, bool) {
	for _, p := range s.Participants {
		if p.UserID != "" && p.UserID == userID {
			return p, true
		}
	}
	return ParticipantSeed{}, false
}

// Avatars returns the avatar ids already used in the session.
func (s *SessionSeed) Avatars() []string {
	out := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.AvatarID != "" {
			out = append(out, p.AvatarID)
		}
	}
	return out
}

// SessionDirectoryPort is the session service the engine consumes: session
// and participant records looked up by invite code, plus the id of the match
// currently serving each session.
type SessionDirectoryPort interface {
	// CreateSession stores a new session. Returns ErrSessionExists when the
	// invite code is taken.
	CreateSession(ctx context.Context, seed SessionSeed) error

	// LookupByInviteCode returns the session for an invite code or ErrSessionNotFound.
	LookupByInviteCode(ctx context.Context, inviteCode string) (*SessionSeed, error)

	// AddParticipant registers a participant and returns the updated session.
	AddParticipant(ctx context.Context, inviteCode string, participant ParticipantSeed) (*SessionSeed, error)

	// BindMatch records the match serving the session. When another match
	// was bound concurrently, the stored seed wins and is returned.
	BindMatch(ctx context.Context, inviteCode, matchID string) (*SessionSeed, error)
}

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// ErrInvalidTicket is returned for tickets that are malformed, expired,
// signed with another key or issued for a different user or session.
var ErrInvalidTicket = errors.New("invalid join ticket")

const defaultTicketTTL = time.Hour

// Ticket binds a Nakama user to a participant of one session.
type Ticket struct {
	UserID        string
	SessionID     string
	ParticipantID string
	DisplayName   string
	AvatarID      string
	Host          bool
}

type ticketClaims struct {
	SessionID     string `json:"sid"`
	ParticipantID string `json:"pid"`
	DisplayName   string `json:"name,omitempty"`
	AvatarID      string `json:"avatar,omitempty"`
	Host          bool   `json:"host,omitempty"`
	jwt.StandardClaims
}

// TicketService signs and verifies join tickets.
type TicketService struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTicketService(secret, issuer string) *TicketService {
	return &TicketService{
		secret: secret,
		issuer: issuer,
		ttl:    defaultTicketTTL,
		now:    time.Now,
	}
}

// Issue returns a signed ticket for t.
func (s *TicketService) Issue(t Ticket) (string, error) {
	if s == nil {
		return "", fmt.Errorf("ticket service is nil")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("ticket config is incomplete")
	}
	if t.UserID == "" || t.SessionID == "" || t.ParticipantID == "" {
		return "", fmt.Errorf("user, session and participant are required")
	}

	now := s.now()
	claims := ticketClaims{
		SessionID:     t.SessionID,
		ParticipantID: t.ParticipantID,
		DisplayName:   t.DisplayName,
		AvatarID:      t.AvatarID,
		Host:          t.Host,
		StandardClaims: jwt.StandardClaims{
			Issuer:    s.issuer,
			Subject:   t.UserID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify checks a ticket presented by userID for sessionID.
func (s *TicketService) Verify(raw, userID, sessionID string) (Ticket, error) {
	if s == nil || s.secret == "" {
		return Ticket{}, fmt.Errorf("%w: ticket service not configured", ErrInvalidTicket)
	}
	claims := &ticketClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return Ticket{}, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return Ticket{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidTicket, claims.Issuer)
	}
	if claims.Subject != userID {
		return Ticket{}, fmt.Errorf("%w: issued to another user", ErrInvalidTicket)
	}
	if claims.SessionID != sessionID {
		return Ticket{}, fmt.Errorf("%w: issued for another session", ErrInvalidTicket)
	}

	return Ticket{
		UserID:        claims.Subject,
		SessionID:     claims.SessionID,
		ParticipantID: claims.ParticipantID,
		DisplayName:   claims.DisplayName,
		AvatarID:      claims.AvatarID,
		Host:          claims.Host,
	}, nil
}

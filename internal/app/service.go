package app

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"retroflow/internal/config"
	"retroflow/internal/domain"

	"github.com/google/uuid"
)

// Service contains the retro board use-cases operating on a domain.Board.
// It holds no board state of its own; callers pass the board owned by their
// match on every call.
type Service struct {
	cfg   config.BoardConfig
	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(cfg config.BoardConfig, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		cfg:   cfg,
		rng:   rng,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator replaces the entity id source.
func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// Config returns the board configuration the service enforces.
func (s *Service) Config() config.BoardConfig {
	return s.cfg
}

func (s *Service) cardSize() domain.CardSize {
	return domain.CardSize{Width: s.cfg.CardWidth, Height: s.cfg.CardHeight}
}

func (s *Service) labelLimits() domain.LabelLimits {
	return domain.LabelLimits{Preview: s.cfg.LabelPreviewLength, Linked: s.cfg.LinkedLabelLength}
}

// newColor returns a fresh mid-saturation group color.
func (s *Service) newColor() string {
	channel := func() int { return 64 + s.rng.Intn(160) }
	return fmt.Sprintf("#%02x%02x%02x", channel(), channel(), channel())
}

func requirePhase(board *domain.Board, allowed ...domain.Phase) error {
	for _, p := range allowed {
		if board.Session.Phase == p {
			return nil
		}
	}
	return ErrPhaseLocked
}

func requireParticipant(board *domain.Board, participantID string) (*domain.Participant, error) {
	p, ok := board.Participants[participantID]
	if !ok {
		return nil, ErrUnknownParticipant
	}
	return p, nil
}

func lookupResponse(board *domain.Board, responseID string) (*domain.Response, error) {
	r, ok := board.Responses[responseID]
	if !ok {
		return nil, missing(board, "response", responseID)
	}
	return r, nil
}

func finite(p domain.Position) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (s *Service) touch(board *domain.Board) {
	board.Session.UpdatedAt = s.now()
}

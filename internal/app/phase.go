package app

import (
	"fmt"
	"time"

	"retroflow/internal/domain"
)

// PhaseChange is a host request to move the session to another phase.
type PhaseChange struct {
	Phase        domain.Phase
	TimerSeconds int  // only honored when entering INPUT; 0 means no timer
	StopTimer    bool // clears a running timer without starting a new one
}

// ChangePhase moves the session along the phase graph. Only the host may
// change phases; any request off the graph is rejected silently.
func (s *Service) ChangePhase(board *domain.Board, actorID string, change PhaseChange) ([]Event, error) {
	if !board.IsHost(actorID) {
		return nil, ErrNotHost
	}
	from := board.Session.Phase
	if !domain.CanTransition(from, change.Phase) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalPhaseTransition, from, change.Phase)
	}
	if change.TimerSeconds < 0 {
		return nil, ErrInvalidTimer
	}

	var timerEnd *time.Time
	if change.Phase == domain.PhaseInput && change.TimerSeconds > 0 && !change.StopTimer {
		seconds := change.TimerSeconds
		if s.cfg.MaxTimerSeconds > 0 && seconds > s.cfg.MaxTimerSeconds {
			seconds = s.cfg.MaxTimerSeconds
		}
		end := s.now().Add(time.Duration(seconds) * time.Second)
		timerEnd = &end
	}

	return s.enterPhase(board, change.Phase, timerEnd), nil
}

// ExpireTimer performs the INPUT -> GROUPING transition once the input timer
// has run out. It is a no-op when the host already moved on or the timer is
// not due yet, so it is safe to call on every tick.
func (s *Service) ExpireTimer(board *domain.Board) []Event {
	end := board.Session.TimerEndTime
	if board.Session.Phase != domain.PhaseInput || end == nil || s.now().Before(*end) {
		return nil
	}
	return s.enterPhase(board, domain.PhaseGrouping, nil)
}

func (s *Service) enterPhase(board *domain.Board, phase domain.Phase, timerEnd *time.Time) []Event {
	var events []Event
	if board.Session.Phase == domain.PhaseResults && phase != domain.PhaseResults && board.Presentation.Active {
		board.Presentation = domain.Presentation{}
		events = append(events, broadcast(EventPresentationEnded, PresentationPayload{}))
	}

	board.Session.Phase = phase
	board.Session.TimerEndTime = timerEnd
	s.touch(board)
	events = append(events, broadcast(EventPhaseChanged, PhaseChangedPayload{Phase: phase, TimerEndTime: timerEnd}))

	switch phase {
	case domain.PhaseGrouping, domain.PhaseVoting, domain.PhaseResults:
		events = append(events, s.snapshotEvents(board)...)
	}
	return events
}

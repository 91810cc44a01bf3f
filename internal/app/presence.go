package app

import "retroflow/internal/domain"

// Join marks a participant online, creating it on first join. The joiner
// receives a full snapshot and everyone else a participant_joined event.
func (s *Service) Join(board *domain.Board, p domain.Participant) []Event {
	now := s.now()
	p.LastActive = now
	joined := board.UpsertParticipant(p)
	// The transport may have created the record already; the first join
	// stamps it either way.
	if joined.JoinedAt.IsZero() {
		joined.JoinedAt = now
	}
	joined.Online = true
	s.touch(board)

	return []Event{
		{Kind: EventParticipantJoined, Payload: *joined, Exclude: []string{joined.ID}},
		s.snapshotEvent(board, joined.ID),
	}
}

// Leave marks a participant offline. Its responses and votes are kept.
func (s *Service) Leave(board *domain.Board, participantID string) []Event {
	p, ok := board.Participants[participantID]
	if !ok || !p.Online {
		return nil
	}
	p.Online = false
	p.LastActive = s.now()
	return []Event{{
		Kind:    EventParticipantLeft,
		Payload: ParticipantLeftPayload{ParticipantID: participantID},
		Exclude: []string{participantID},
	}}
}

// Typing relays an ephemeral typing indicator to the other participants.
func (s *Service) Typing(board *domain.Board, actorID string, typing bool) ([]Event, error) {
	p, err := requireParticipant(board, actorID)
	if err != nil {
		return nil, err
	}
	p.LastActive = s.now()
	return []Event{{
		Kind:    EventParticipantTyping,
		Payload: TypingPayload{ParticipantID: actorID, Typing: typing},
		Exclude: []string{actorID},
	}}, nil
}

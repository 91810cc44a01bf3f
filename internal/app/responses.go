package app

import (
	"strings"
	"unicode/utf8"

	"retroflow/internal/domain"
)

// AddResponse records a new response authored by actorID.
func (s *Service) AddResponse(board *domain.Board, actorID string, category domain.Category, content string) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseInput); err != nil {
		return nil, err
	}
	if _, err := requireParticipant(board, actorID); err != nil {
		return nil, err
	}
	if !domain.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	content, err := s.cleanContent(content)
	if err != nil {
		return nil, err
	}

	now := s.now()
	r := &domain.Response{
		ID:            s.newID(),
		SessionID:     board.Session.ID,
		ParticipantID: actorID,
		Category:      category,
		Content:       content,
		Position:      s.initialPosition(board, category),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	board.Responses[r.ID] = r
	s.touch(board)

	return []Event{broadcast(EventResponseAdded, *r)}, nil
}

// UpdateResponse replaces the content of one of actorID's responses.
func (s *Service) UpdateResponse(board *domain.Board, actorID, responseID, content string) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseInput, domain.PhaseGrouping); err != nil {
		return nil, err
	}
	r, err := lookupResponse(board, responseID)
	if err != nil {
		return nil, err
	}
	if r.ParticipantID != actorID {
		return nil, ErrNotAuthor
	}
	content, err = s.cleanContent(content)
	if err != nil {
		return nil, err
	}

	r.Content = content
	r.UpdatedAt = s.now()
	s.touch(board)
	return []Event{broadcast(EventResponseUpdated, *r)}, nil
}

// DeleteResponse removes one of actorID's responses, its connections, and
// settles the group it belonged to.
func (s *Service) DeleteResponse(board *domain.Board, actorID, responseID string) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseInput, domain.PhaseGrouping); err != nil {
		return nil, err
	}
	r, err := lookupResponse(board, responseID)
	if err != nil {
		return nil, err
	}
	if r.ParticipantID != actorID {
		return nil, ErrNotAuthor
	}

	groupID := r.GroupID
	dropped := board.RemoveResponse(responseID)
	events := []Event{broadcast(EventResponseDeleted, ResponseDeletedPayload{
		ResponseID:    responseID,
		ConnectionIDs: dropped,
	})}
	if groupID != "" {
		events = append(events, s.settleGroup(board, groupID, "")...)
	}
	s.touch(board)
	return events, nil
}

func (s *Service) cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > s.cfg.MaxResponseLength {
		return "", ErrInvalidContent
	}
	return content, nil
}

// initialPosition stacks new cards below the lowest card of their category
// column so that fresh cards never overlap enough to merge.
func (s *Service) initialPosition(board *domain.Board, category domain.Category) domain.Position {
	column := 0.0
	if category == domain.CategoryDidntGoWell {
		column = 1
	}
	pos := domain.Position{X: column * (s.cfg.CardWidth * 2)}
	placed := false
	for _, r := range board.Responses {
		if r.Category != category {
			continue
		}
		below := r.Position.Y + s.cfg.CardHeight + cardSpacing
		if !placed || below > pos.Y {
			pos.Y = below
			placed = true
		}
	}
	return pos
}

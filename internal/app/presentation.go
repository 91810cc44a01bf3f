package app

import "retroflow/internal/domain"

// StartPresentation opens the walkthrough of the ranked results at index 0.
func (s *Service) StartPresentation(board *domain.Board, actorID string) ([]Event, error) {
	if !board.IsHost(actorID) {
		return nil, ErrNotHost
	}
	if err := requirePhase(board, domain.PhaseResults); err != nil {
		return nil, err
	}
	count := len(board.Ranking(s.labelLimits()))
	if count == 0 {
		return nil, ErrNothingToPresent
	}

	board.Presentation = domain.Presentation{Active: true, CurrentIndex: 0}
	return []Event{broadcast(EventPresentationStarted, PresentationPayload{Active: true, ItemIndex: 0, ItemCount: count})}, nil
}

// NavigatePresentation moves every client to the absolute item index.
func (s *Service) NavigatePresentation(board *domain.Board, actorID string, index int) ([]Event, error) {
	if !board.IsHost(actorID) {
		return nil, ErrNotHost
	}
	if err := requirePhase(board, domain.PhaseResults); err != nil {
		return nil, err
	}
	if !board.Presentation.Active {
		return nil, ErrPresentationInactive
	}
	count := len(board.Ranking(s.labelLimits()))
	if index < 0 || index >= count {
		return nil, ErrIndexOutOfRange
	}

	board.Presentation.CurrentIndex = index
	return []Event{broadcast(EventPresentationNavigate, PresentationPayload{Active: true, ItemIndex: index, ItemCount: count})}, nil
}

// EndPresentation returns every client to the summary view.
func (s *Service) EndPresentation(board *domain.Board, actorID string) ([]Event, error) {
	if !board.IsHost(actorID) {
		return nil, ErrNotHost
	}
	if !board.Presentation.Active {
		return nil, nil
	}
	board.Presentation = domain.Presentation{}
	return []Event{broadcast(EventPresentationEnded, PresentationPayload{})}, nil
}

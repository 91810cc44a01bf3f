package app

import (
	"strings"

	"retroflow/internal/domain"
)

// DragResponse moves a response and, during GROUPING, merges it into a group
// when the drop covers another card by at least the overlap threshold.
// A response that already belongs to a group only moves.
func (s *Service) DragResponse(board *domain.Board, actorID, responseID string, pos domain.Position) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseInput, domain.PhaseGrouping); err != nil {
		return nil, err
	}
	if _, err := requireParticipant(board, actorID); err != nil {
		return nil, err
	}
	r, err := lookupResponse(board, responseID)
	if err != nil {
		return nil, err
	}
	if !finite(pos) {
		return nil, ErrInvalidPosition
	}

	now := s.now()
	r.Position = pos
	r.UpdatedAt = now
	events := []Event{broadcast(EventResponseUpdated, *r)}
	s.touch(board)

	if board.Session.Phase != domain.PhaseGrouping || r.Grouped() {
		return events, nil
	}

	target, _ := domain.MergeCandidate(r, pos, board.SortedResponses(), s.cardSize(), s.cfg.OverlapThresholdPercent)
	if target == nil {
		return events, nil
	}

	if target.Grouped() {
		r.GroupID = target.GroupID
		g := board.Groups[target.GroupID]
		return append(events, s.groupEvent(board, EventGroupUpdated, g)), nil
	}

	leader := domain.Topmost(r, target)
	g := &domain.Group{
		ID:        s.newID(),
		SessionID: board.Session.ID,
		Label:     domain.Preview(leader.Content, s.cfg.LabelPreviewLength),
		Color:     s.newColor(),
		Position:  leader.Position,
		CreatedAt: now,
	}
	board.Groups[g.ID] = g
	r.GroupID = g.ID
	target.GroupID = g.ID
	return append(events, s.groupEvent(board, EventGroupCreated, g)), nil
}

// CreateGroup explicitly groups responseIDs, bypassing overlap detection.
// Members leave their previous groups, which are settled afterwards.
func (s *Service) CreateGroup(board *domain.Board, actorID, label, color string, responseIDs []string) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseGrouping); err != nil {
		return nil, err
	}
	if _, err := requireParticipant(board, actorID); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(responseIDs))
	var members []*domain.Response
	for _, id := range responseIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		r, err := lookupResponse(board, id)
		if err != nil {
			return nil, err
		}
		members = append(members, r)
	}
	if len(members) < MinResponsesPerGroup {
		return nil, ErrTooFewResponses
	}

	leader := members[0]
	var previous []string
	for _, m := range members {
		leader = domain.Topmost(leader, m)
		if m.Grouped() && !containsString(previous, m.GroupID) {
			previous = append(previous, m.GroupID)
		}
	}

	label = strings.TrimSpace(label)
	if label == "" {
		label = leader.Content
	}
	if strings.TrimSpace(color) == "" {
		color = s.newColor()
	}
	g := &domain.Group{
		ID:        s.newID(),
		SessionID: board.Session.ID,
		Label:     domain.Preview(label, s.cfg.LinkedLabelLength),
		Color:     strings.TrimSpace(color),
		Position:  leader.Position,
		CreatedAt: s.now(),
	}
	board.Groups[g.ID] = g
	for _, m := range members {
		m.GroupID = g.ID
	}

	events := []Event{s.groupEvent(board, EventGroupCreated, g)}
	for _, groupID := range previous {
		events = append(events, s.settleGroup(board, groupID, g.ID)...)
	}
	s.touch(board)
	return events, nil
}

// UngroupResponse detaches one response from its group. A group left with a
// single member is dissolved.
func (s *Service) UngroupResponse(board *domain.Board, actorID, responseID string) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseGrouping); err != nil {
		return nil, err
	}
	if _, err := requireParticipant(board, actorID); err != nil {
		return nil, err
	}
	r, err := lookupResponse(board, responseID)
	if err != nil {
		return nil, err
	}
	if !r.Grouped() {
		return nil, ErrNotGrouped
	}
	groupID := r.GroupID
	if len(board.Members(groupID)) < MinResponsesPerGroup {
		return nil, ErrAlreadyIndividual
	}

	r.GroupID = ""
	r.UpdatedAt = s.now()
	events := []Event{broadcast(EventResponseUngrouped, ResponseUngroupedPayload{ResponseID: r.ID, GroupID: groupID})}
	events = append(events, s.settleGroup(board, groupID, "")...)
	s.touch(board)
	return events, nil
}

// CreateConnection links two responses.
func (s *Service) CreateConnection(board *domain.Board, actorID, fromID, toID string) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseGrouping); err != nil {
		return nil, err
	}
	if _, err := requireParticipant(board, actorID); err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, ErrSelfConnection
	}
	if _, err := lookupResponse(board, fromID); err != nil {
		return nil, err
	}
	if _, err := lookupResponse(board, toID); err != nil {
		return nil, err
	}
	if board.ConnectionBetween(fromID, toID) != nil {
		return nil, ErrDuplicateConnection
	}

	c := &domain.Connection{
		ID:             s.newID(),
		SessionID:      board.Session.ID,
		FromResponseID: fromID,
		ToResponseID:   toID,
		CreatedAt:      s.now(),
	}
	board.Connections[c.ID] = c
	s.touch(board)
	return []Event{broadcast(EventConnectionCreated, *c)}, nil
}

// RemoveConnection unlinks two responses, addressed by connection id or by
// endpoint pair.
func (s *Service) RemoveConnection(board *domain.Board, actorID, connectionID, fromID, toID string) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseGrouping); err != nil {
		return nil, err
	}
	if _, err := requireParticipant(board, actorID); err != nil {
		return nil, err
	}

	var c *domain.Connection
	if connectionID != "" {
		found, ok := board.Connections[connectionID]
		if !ok {
			return nil, missing(board, "connection", connectionID)
		}
		c = found
	} else {
		if c = board.ConnectionBetween(fromID, toID); c == nil {
			return nil, ErrNotConnected
		}
	}

	board.RemoveConnection(c.ID)
	s.touch(board)
	return []Event{broadcast(EventConnectionRemoved, ConnectionRemovedPayload{ConnectionID: c.ID})}, nil
}

// settleGroup restores the group invariants after groupID lost members.
// Votes follow the members: an emptied group hands its votes to heirID when
// set, a group reduced to one member hands them to a singleton group for the
// survivor, and otherwise they are released back to the voters.
func (s *Service) settleGroup(board *domain.Board, groupID, heirID string) []Event {
	g, ok := board.Groups[groupID]
	if !ok {
		return nil
	}
	members := board.Members(groupID)
	if len(members) >= MinResponsesPerGroup {
		return []Event{s.groupEvent(board, EventGroupUpdated, g)}
	}

	now := s.now()
	hadVotes := g.VoteCount > 0
	var events []Event

	switch {
	case len(members) == 1:
		survivor := members[0]
		survivor.GroupID = ""
		events = append(events, broadcast(EventResponseUngrouped, ResponseUngroupedPayload{ResponseID: survivor.ID, GroupID: groupID}))
		if hadVotes {
			single := s.materialize(board, []*domain.Response{survivor})
			board.MoveVotes(groupID, single.ID, now, s.cfg.MaxVotesPerGroup)
			events = append(events, s.groupEvent(board, EventGroupCreated, single))
			events = append(events, s.voteEvents(board, single.ID)...)
		}
	case heirID != "":
		if _, ok := board.Groups[heirID]; ok && hadVotes {
			board.MoveVotes(groupID, heirID, now, s.cfg.MaxVotesPerGroup)
			events = append(events, s.voteEvents(board, heirID)...)
		}
	}

	board.RemoveGroup(groupID)
	if hadVotes && g.VoteCount > 0 {
		// Votes were not handed on; announce the refund.
		g.VoteCount = 0
		events = append(events, s.voteEvents(board, groupID)...)
	}
	return append(events, broadcast(EventGroupDeleted, GroupDeletedPayload{GroupID: groupID}))
}

// materialize turns a set of ungrouped responses into a persisted group.
func (s *Service) materialize(board *domain.Board, members []*domain.Response) *domain.Group {
	first := members[0]
	g := &domain.Group{
		ID:        s.newID(),
		SessionID: board.Session.ID,
		Label:     domain.ComponentLabel(members, s.labelLimits()),
		Color:     domain.CategoryColor(first.Category),
		Position:  first.Position,
		CreatedAt: s.now(),
	}
	board.Groups[g.ID] = g
	for _, m := range members {
		m.GroupID = g.ID
	}
	return g
}

func (s *Service) groupEvent(board *domain.Board, kind EventKind, g *domain.Group) Event {
	return broadcast(kind, groupPayload(board, g))
}

func groupPayload(board *domain.Board, g *domain.Group) GroupPayload {
	members := board.Members(g.ID)
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return GroupPayload{Group: *g, ResponseIDs: ids}
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

package app

import (
	"retroflow/internal/domain"
)

// CastVote sets participantID's absolute allocation on target. The target is
// either a group id or the virtual id of an ungrouped response; a virtual
// target is materialized into a real group only once the budget check passes.
func (s *Service) CastVote(board *domain.Board, actorID, participantID, target string, voteCount int) ([]Event, error) {
	if err := requirePhase(board, domain.PhaseVoting); err != nil {
		return nil, err
	}
	if _, err := requireParticipant(board, actorID); err != nil {
		return nil, err
	}
	if participantID != actorID {
		return nil, ErrParticipantMismatch
	}
	if voteCount < 0 || voteCount > s.cfg.MaxVotesPerGroup {
		return nil, ErrVoteOutOfRange
	}

	groupID, component, err := s.resolveTarget(board, domain.ParseVotingTarget(target))
	if err != nil {
		return nil, err
	}

	current := 0
	if groupID != "" {
		current = board.Allocation(actorID, groupID)
	}
	delta := voteCount - current
	if delta > s.cfg.VoteBudget-board.VotesUsed(actorID) {
		return nil, ErrInsufficientVoteBudget
	}
	if delta == 0 && groupID == "" {
		// Zero votes on something that was never materialized changes nothing.
		return nil, nil
	}

	var events []Event
	if groupID == "" {
		g := s.materialize(board, component)
		groupID = g.ID
		events = append(events, s.groupEvent(board, EventGroupCreated, g))
	}

	now := s.now()
	key := domain.VoteKey{ParticipantID: actorID, GroupID: groupID}
	v, ok := board.Votes[key]
	if !ok {
		v = &domain.Vote{
			ID:            s.newID(),
			SessionID:     board.Session.ID,
			ParticipantID: actorID,
			GroupID:       groupID,
			CreatedAt:     now,
		}
		board.Votes[key] = v
	}
	v.VoteCount = voteCount
	v.UpdatedAt = now
	board.RecountGroup(groupID)
	s.touch(board)

	return append(events, s.voteEvents(board, groupID)...), nil
}

// resolveTarget maps a voting target to a persisted group id. For an
// ungrouped response it returns an empty id and the connected component the
// vote would materialize.
func (s *Service) resolveTarget(board *domain.Board, target domain.VotingTarget) (string, []*domain.Response, error) {
	if target.ID == "" {
		return "", nil, ErrValidation
	}
	if target.Kind == domain.TargetGroup {
		if _, ok := board.Groups[target.ID]; !ok {
			return "", nil, missing(board, "group", target.ID)
		}
		return target.ID, nil, nil
	}

	r, err := lookupResponse(board, target.ID)
	if err != nil {
		return "", nil, err
	}
	if r.Grouped() {
		return r.GroupID, nil, nil
	}
	if component := domain.ComponentOf(board.UngroupedComponents(), r.ID); component != nil {
		return "", component, nil
	}
	return "", []*domain.Response{r}, nil
}

// voteEvents announces groupID's aggregate. Every copy carries the
// recipient's own allocation on the group, so voters whose votes were moved
// by a regroup learn where they went. Voters get a copy of their own, the
// host copy also carries every participant's remaining budget, and everyone
// else shares the public copy with no allocation.
func (s *Service) voteEvents(board *domain.Board, groupID string) []Event {
	total := 0
	if g, ok := board.Groups[groupID]; ok {
		total = g.VoteCount
	}
	host := board.Session.HostID
	public := VotesUpdatedPayload{GroupID: groupID, TotalVotes: total}

	exclude := []string{host}
	var voters []Event
	for _, v := range board.GroupVotes(groupID) {
		if v.ParticipantID == host || v.VoteCount == 0 {
			continue
		}
		own := public
		own.OwnVotes = v.VoteCount
		voters = append(voters, Event{Kind: EventVotesUpdated, Payload: own, Recipients: []string{v.ParticipantID}})
		exclude = append(exclude, v.ParticipantID)
	}

	private := public
	private.OwnVotes = board.Allocation(host, groupID)
	private.RemainingBudgets = board.RemainingBudgets(s.cfg.VoteBudget)

	events := []Event{{Kind: EventVotesUpdated, Payload: public, Exclude: exclude}}
	events = append(events, voters...)
	return append(events, Event{Kind: EventVotesUpdated, Payload: private, Recipients: []string{host}})
}

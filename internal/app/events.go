package app

import (
	"time"

	"retroflow/internal/domain"
)

// EventKind identifies emitted events for transport dispatch.
type EventKind string

const (
	EventResponseAdded        EventKind = "response_added"
	EventResponseUpdated      EventKind = "response_updated"
	EventResponseDeleted      EventKind = "response_deleted"
	EventGroupCreated         EventKind = "group_created"
	EventGroupUpdated         EventKind = "group_updated"
	EventGroupDeleted         EventKind = "group_deleted"
	EventResponseUngrouped    EventKind = "response_ungrouped"
	EventConnectionCreated    EventKind = "connection_created"
	EventConnectionRemoved    EventKind = "connection_removed"
	EventVotesUpdated         EventKind = "votes_updated"
	EventPhaseChanged         EventKind = "phase_changed"
	EventPresentationStarted  EventKind = "presentation_started"
	EventPresentationNavigate EventKind = "presentation_navigate"
	EventPresentationEnded    EventKind = "presentation_ended"
	EventParticipantJoined    EventKind = "participant_joined"
	EventParticipantLeft      EventKind = "participant_left"
	EventParticipantTyping    EventKind = "participant_typing"
	EventSessionSnapshot      EventKind = "session_snapshot"
)

// Event is an accepted change to fan out, with optional targeting.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // participant IDs; empty means broadcast
	Exclude    []string // participant IDs skipped by a broadcast
}

// ResponseDeletedPayload announces a removed response and the links that went with it.
type ResponseDeletedPayload struct {
	ResponseID    string   `json:"responseId"`
	ConnectionIDs []string `json:"connectionIds,omitempty"`
}

// GroupPayload carries a group with its full member list so that applying it
// twice yields the same state.
type GroupPayload struct {
	Group       domain.Group `json:"group"`
	ResponseIDs []string     `json:"responseIds"`
}

type GroupDeletedPayload struct {
	GroupID string `json:"groupId"`
}

type ResponseUngroupedPayload struct {
	ResponseID string `json:"responseId"`
	GroupID    string `json:"groupId"`
}

type ConnectionRemovedPayload struct {
	ConnectionID string `json:"connectionId"`
}

// VotesUpdatedPayload carries a group's new aggregate. OwnVotes is the
// recipient's own allocation on the group. RemainingBudgets is only
// populated on the copy sent to the host.
type VotesUpdatedPayload struct {
	GroupID          string         `json:"groupId"`
	TotalVotes       int            `json:"totalVotes"`
	OwnVotes         int            `json:"ownVotes"`
	RemainingBudgets map[string]int `json:"remainingBudgets,omitempty"`
}

type PhaseChangedPayload struct {
	Phase        domain.Phase `json:"phase"`
	TimerEndTime *time.Time   `json:"timerEndTime"`
}

type PresentationPayload struct {
	Active    bool `json:"presentationActive"`
	ItemIndex int  `json:"itemIndex"`
	ItemCount int  `json:"itemCount,omitempty"`
}

type ParticipantLeftPayload struct {
	ParticipantID string `json:"participantId"`
}

type TypingPayload struct {
	ParticipantID string `json:"participantId"`
	Typing        bool   `json:"typing"`
}

func broadcast(kind EventKind, payload any) Event {
	return Event{Kind: kind, Payload: payload}
}

package wire

// Op codes for client intents and server events.
const (
	// Client -> Server
	OpAddResponse          int64 = 1
	OpUpdateResponse       int64 = 2
	OpDeleteResponse       int64 = 3
	OpDragResponse         int64 = 4
	OpCreateGroup          int64 = 5
	OpUngroupResponse      int64 = 6
	OpCreateConnection     int64 = 7
	OpRemoveConnection     int64 = 8
	OpCastVote             int64 = 9
	OpChangePhase          int64 = 10
	OpStartPresentation    int64 = 11
	OpNavigatePresentation int64 = 12
	OpEndPresentation      int64 = 13
	OpTypingStart          int64 = 14
	OpTypingStop           int64 = 15
	OpRequestSnapshot      int64 = 16

	// Server -> Client events
	OpResponseAdded        int64 = 101
	OpResponseUpdated      int64 = 102
	OpResponseDeleted      int64 = 103
	OpGroupCreated         int64 = 104
	OpGroupUpdated         int64 = 105
	OpGroupDeleted         int64 = 106
	OpResponseUngrouped    int64 = 107
	OpConnectionCreated    int64 = 108
	OpConnectionRemoved    int64 = 109
	OpVotesUpdated         int64 = 110 // host copy carries remaining budgets
	OpPhaseChanged         int64 = 111
	OpPresentationStarted  int64 = 112
	OpPresentationNavigate int64 = 113
	OpPresentationEnded    int64 = 114
	OpParticipantJoined    int64 = 115
	OpParticipantLeft      int64 = 116
	OpParticipantTyping    int64 = 117
	OpSessionSnapshot      int64 = 118 // sent privately
	OpAck                  int64 = 119 // sent privately
	OpError                int64 = 199 // sent privately
)

var opNames = map[int64]string{
	OpAddResponse:          "add_response",
	OpUpdateResponse:       "update_response",
	OpDeleteResponse:       "delete_response",
	OpDragResponse:         "drag_response",
	OpCreateGroup:          "create_group",
	OpUngroupResponse:      "ungroup_response",
	OpCreateConnection:     "create_connection",
	OpRemoveConnection:     "remove_connection",
	OpCastVote:             "cast_vote",
	OpChangePhase:          "change_phase",
	OpStartPresentation:    "start_presentation",
	OpNavigatePresentation: "navigate_presentation",
	OpEndPresentation:      "end_presentation",
	OpTypingStart:          "typing_start",
	OpTypingStop:           "typing_stop",
	OpRequestSnapshot:      "request_snapshot",

	OpResponseAdded:        "response_added",
	OpResponseUpdated:      "response_updated",
	OpResponseDeleted:      "response_deleted",
	OpGroupCreated:         "group_created",
	OpGroupUpdated:         "group_updated",
	OpGroupDeleted:         "group_deleted",
	OpResponseUngrouped:    "response_ungrouped",
	OpConnectionCreated:    "connection_created",
	OpConnectionRemoved:    "connection_removed",
	OpVotesUpdated:         "votes_updated",
	OpPhaseChanged:         "phase_changed",
	OpPresentationStarted:  "presentation_started",
	OpPresentationNavigate: "presentation_navigate",
	OpPresentationEnded:    "presentation_ended",
	OpParticipantJoined:    "participant_joined",
	OpParticipantLeft:      "participant_left",
	OpParticipantTyping:    "participant_typing",
	OpSessionSnapshot:      "session_snapshot",
	OpAck:                  "ack",
	OpError:                "error",
}

// Name returns the event name of an op code, or "" when unknown.
func Name(op int64) string {
	return opNames[op]
}

// OpFor returns the op code for an event name.
func OpFor(name string) (int64, bool) {
	for op, n := range opNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

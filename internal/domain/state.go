package domain

import "time"

// Phase represents the lifecycle stage of a retro session.
type Phase string

const (
	// PhaseSetup is the lobby where participants gather before the retro starts.
	PhaseSetup Phase = "SETUP"
	// PhaseInput is where participants privately submit responses.
	PhaseInput Phase = "INPUT"
	// PhaseGrouping is where responses are clustered into groups.
	PhaseGrouping Phase = "GROUPING"
	// PhaseVoting is where participants allocate their vote budget.
	PhaseVoting Phase = "VOTING"
	// PhaseResults shows the ranked outcome and hosts the presentation mode.
	PhaseResults Phase = "RESULTS"
)

// Category classifies a response.
type Category string

const (
	CategoryWentWell    Category = "WENT_WELL"
	CategoryDidntGoWell Category = "DIDNT_GO_WELL"
)

// Position is a card's top-left corner on the grouping canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Session is the root entity of one retro.
type Session struct {
	ID           string            `json:"id"`
	InviteCode   string            `json:"inviteCode"`
	HostID       string            `json:"hostId"`
	Title        string            `json:"title"`
	Phase        Phase             `json:"currentPhase"`
	TimerEndTime *time.Time        `json:"timerEndTime"`
	Settings     map[string]string `json:"settings"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Participant is a member of a session.
type Participant struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	DisplayName string    `json:"displayName"`
	AvatarID    string    `json:"avatarId"`
	IsHost      bool      `json:"isHost"`
	Online      bool      `json:"isOnline"`
	LastActive  time.Time `json:"lastActive"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// Response is a single submitted feedback item.
type Response struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"sessionId"`
	ParticipantID string    `json:"participantId"`
	Category      Category  `json:"category"`
	Content       string    `json:"content"`
	Position      Position  `json:"position"`
	GroupID       string    `json:"groupId,omitempty"` // empty means ungrouped
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Grouped reports whether the response currently belongs to a group.
func (r *Response) Grouped() bool {
	return r.GroupID != ""
}

// Group is a cluster of responses voted on as one unit.
// Membership is derived from Response.GroupID; the group holds no member list.
type Group struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	Position  Position  `json:"position"`
	VoteCount int       `json:"voteCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Vote is one participant's absolute allocation to one group.
type Vote struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"sessionId"`
	ParticipantID string    `json:"participantId"`
	GroupID       string    `json:"groupId"`
	VoteCount     int       `json:"voteCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// VoteKey identifies the unique vote record of a (participant, group) pair.
type VoteKey struct {
	ParticipantID string
	GroupID       string
}

// Connection is an undirected link between two responses.
type Connection struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"sessionId"`
	FromResponseID string    `json:"fromResponseId"`
	ToResponseID   string    `json:"toResponseId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Touches reports whether the connection has responseID as an endpoint.
func (c *Connection) Touches(responseID string) bool {
	return c.FromResponseID == responseID || c.ToResponseID == responseID
}

// Presentation is the host-driven walkthrough state nested in RESULTS.
type Presentation struct {
	Active       bool `json:"presentationActive"`
	CurrentIndex int  `json:"currentIndex"`
}

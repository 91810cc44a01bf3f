package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-common/rtapi"
	"github.com/heroiclabs/nakama-go/v2"
	"google.golang.org/protobuf/proto"
	pb "retroflow/proto"
)

const (
	ServerKey = "defaultkey"
	Host      = "127.0.0.1"
	Port      = 7350
)

// Op codes mirrored from the server's wire package.
const (
	OpAddResponse     int64 = 1
	OpCastVote        int64 = 9
	OpChangePhase     int64 = 10
	OpEndPresentation int64 = 13
	OpResponseAdded   int64 = 101
	OpGroupCreated    int64 = 104
	OpVotesUpdated    int64 = 110
	OpPhaseChanged    int64 = 111
	OpSessionSnapshot int64 = 118
	OpAck             int64 = 119
	OpError           int64 = 199
)

type TestClient struct {
	Client  *nakama.Client
	Session *nakama.Session
	Socket  *nakama.Socket
	UserID  string

	messages chan *rtapi.MatchData
	ops      int
}

func NewTestClient(t *testing.T) *TestClient {
	client := nakama.NewClient(ServerKey, Host, Port, false)

	deviceID := fmt.Sprintf("retro_device_%d", time.Now().UnixNano())
	session, err := client.AuthenticateDevice(context.Background(), deviceID, true, "")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}

	socket := client.NewSocket()
	if err := socket.Connect(context.Background(), session, true); err != nil {
		t.Fatalf("Failed to connect socket: %v", err)
	}

	tc := &TestClient{
		Client:   client,
		Session:  session,
		Socket:   socket,
		UserID:   session.UserId,
		messages: make(chan *rtapi.MatchData, 64),
	}
	socket.OnMatchData = func(data *rtapi.MatchData) {
		tc.messages <- data
	}
	return tc
}

func (tc *TestClient) Close() {
	if tc.Socket != nil {
		tc.Socket.Close()
	}
}

func (tc *TestClient) rpc(t *testing.T, id string, req, resp any) {
	t.Helper()
	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal %s request: %v", id, err)
	}
	out, err := tc.Client.RpcFunc(context.Background(), tc.Session, id, string(payload))
	if err != nil {
		t.Fatalf("RPC %s failed: %v", id, err)
	}
	if err := json.Unmarshal([]byte(out.Payload), resp); err != nil {
		t.Fatalf("decode %s response: %v", id, err)
	}
}

// RegisterSession creates a board hosted by this client and returns its invite code.
func (tc *TestClient) RegisterSession(t *testing.T, title string) string {
	var resp struct {
		InviteCode string `json:"inviteCode"`
	}
	tc.rpc(t, "register_session", map[string]string{"title": title}, &resp)
	if resp.InviteCode == "" {
		t.Fatal("register_session returned no invite code")
	}
	return resp.InviteCode
}

// JoinBoard resolves the invite code and joins the board's match with the issued ticket.
func (tc *TestClient) JoinBoard(t *testing.T, inviteCode string) (matchID, sessionID, participantID string) {
	var resp struct {
		MatchID       string `json:"matchId"`
		SessionID     string `json:"sessionId"`
		ParticipantID string `json:"participantId"`
		Ticket        string `json:"ticket"`
	}
	tc.rpc(t, "join_board", map[string]string{"inviteCode": inviteCode}, &resp)
	if resp.MatchID == "" || resp.Ticket == "" {
		t.Fatalf("join_board returned %+v", resp)
	}

	if _, err := tc.Socket.JoinMatch(context.Background(), nil, resp.MatchID, map[string]string{"ticket": resp.Ticket}); err != nil {
		t.Fatalf("Failed to join match %s: %v", resp.MatchID, err)
	}
	return resp.MatchID, resp.SessionID, resp.ParticipantID
}

// Send wraps data in an intent envelope and returns the opId used.
func (tc *TestClient) Send(t *testing.T, matchID string, opCode int64, data proto.Message) string {
	t.Helper()
	tc.ops++
	opID := fmt.Sprintf("%s-%d", tc.UserID, tc.ops)
	body, err := proto.Marshal(data)
	if err != nil {
		t.Fatalf("marshal intent: %v", err)
	}
	raw, err := proto.Marshal(&pb.IntentEnvelope{V: 1, OpId: opID, Data: body})
	if err != nil {
		t.Fatalf("marshal intent: %v", err)
	}
	if _, err := tc.Socket.SendMatchState(context.Background(), matchID, opCode, raw, nil); err != nil {
		t.Fatalf("Failed to send op %d: %v", opCode, err)
	}
	return opID
}

// WaitForMatchState returns the next event with opCode, skipping others.
func (tc *TestClient) WaitForMatchState(t *testing.T, opCode int64, timeout time.Duration) *pb.EventEnvelope {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case data := <-tc.messages:
			if data.OpCode != opCode {
				continue
			}
			out := &pb.EventEnvelope{}
			if err := proto.Unmarshal(data.Data, out); err != nil {
				t.Fatalf("decode op %d: %v", opCode, err)
			}
			return out
		case <-deadline:
			t.Fatalf("Timeout waiting for OpCode %d", opCode)
			return nil
		}
	}
}

// Payload decodes an event's data into m.
func Payload(t *testing.T, ev *pb.EventEnvelope, m proto.Message) {
	t.Helper()
	if err := proto.Unmarshal(ev.GetData(), m); err != nil {
		t.Fatalf("decode %s: %v", ev.GetEvent(), err)
	}
}

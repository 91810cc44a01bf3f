package app

import (
	"errors"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

func TestTicketServiceIssueAndVerify(t *testing.T) {
	svc := NewTicketService("test-secret", "retroflow")
	raw, err := svc.Issue(Ticket{
		UserID:        "user-1",
		SessionID:     "s1",
		ParticipantID: "p1",
		DisplayName:   "Pat",
		AvatarID:      "fox",
		Host:          true,
	})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	got, err := svc.Verify(raw, "user-1", "s1")
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if got.ParticipantID != "p1" || got.DisplayName != "Pat" || got.AvatarID != "fox" || !got.Host {
		t.Fatalf("ticket = %+v", got)
	}
}

func TestTicketClaimsAreSignedHS256(t *testing.T) {
	svc := NewTicketService("test-secret", "retroflow")
	raw, err := svc.Issue(Ticket{UserID: "user-1", SessionID: "s1", ParticipantID: "p1"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if token.Method != jwt.SigningMethodHS256 {
		t.Fatalf("alg = %v, want HS256", token.Method.Alg())
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "user-1" || claims["sid"] != "s1" || claims["pid"] != "p1" || claims["iss"] != "retroflow" {
		t.Fatalf("claims = %v", claims)
	}
}

func TestTicketServiceVerifyRejects(t *testing.T) {
	svc := NewTicketService("test-secret", "retroflow")
	valid, err := svc.Issue(Ticket{UserID: "user-1", SessionID: "s1", ParticipantID: "p1"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	foreign, _ := NewTicketService("other-secret", "retroflow").Issue(Ticket{UserID: "user-1", SessionID: "s1", ParticipantID: "p1"})
	otherIssuer, _ := NewTicketService("test-secret", "someone-else").Issue(Ticket{UserID: "user-1", SessionID: "s1", ParticipantID: "p1"})

	expiredSvc := NewTicketService("test-secret", "retroflow")
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiredSvc.Issue(Ticket{UserID: "user-1", SessionID: "s1", ParticipantID: "p1"})

	cases := []struct {
		name    string
		raw     string
		user    string
		session string
	}{
		{name: "garbage", raw: "not-a-token", user: "user-1", session: "s1"},
		{name: "wrong key", raw: foreign, user: "user-1", session: "s1"},
		{name: "wrong issuer", raw: otherIssuer, user: "user-1", session: "s1"},
		{name: "expired", raw: expired, user: "user-1", session: "s1"},
		{name: "other user", raw: valid, user: "user-2", session: "s1"},
		{name: "other session", raw: valid, user: "user-1", session: "s2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Verify(tc.raw, tc.user, tc.session); !errors.Is(err, ErrInvalidTicket) {
				t.Fatalf("err = %v, want ErrInvalidTicket", err)
			}
		})
	}
}

func TestTicketServiceIssueRequiresConfig(t *testing.T) {
	if _, err := NewTicketService("", "retroflow").Issue(Ticket{UserID: "u", SessionID: "s", ParticipantID: "p"}); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := NewTicketService("secret", "retroflow").Issue(Ticket{UserID: "u"}); err == nil {
		t.Fatal("expected error for missing session")
	}
}

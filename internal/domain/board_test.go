package domain

import (
	"testing"
	"time"
)

func newTestBoard() *Board {
	b := NewBoard(Session{ID: "s1", HostID: "host"})
	b.UpsertParticipant(Participant{ID: "host", DisplayName: "Host"})
	b.UpsertParticipant(Participant{ID: "p1", DisplayName: "Pat"})
	return b
}

func TestUpsertParticipantKeepsSingleHost(t *testing.T) {
	b := newTestBoard()
	if !b.Participants["host"].IsHost || b.Participants["p1"].IsHost {
		t.Fatal("expected only host to be host")
	}

	if !b.SetHost("p1") {
		t.Fatal("SetHost(p1) failed")
	}
	hosts := 0
	for _, p := range b.Participants {
		if p.IsHost {
			hosts++
		}
	}
	if hosts != 1 || !b.IsHost("p1") {
		t.Fatalf("hosts = %d, want exactly p1", hosts)
	}
	if b.SetHost("ghost") {
		t.Fatal("SetHost should fail for unknown participant")
	}
}

func TestRemoveResponseDropsConnections(t *testing.T) {
	b := newTestBoard()
	b.Responses["r1"] = &Response{ID: "r1"}
	b.Responses["r2"] = &Response{ID: "r2"}
	b.Responses["r3"] = &Response{ID: "r3"}
	b.Connections["c1"] = &Connection{ID: "c1", FromResponseID: "r1", ToResponseID: "r2"}
	b.Connections["c2"] = &Connection{ID: "c2", FromResponseID: "r2", ToResponseID: "r3"}

	dropped := b.RemoveResponse("r1")
	if len(dropped) != 1 || dropped[0] != "c1" {
		t.Fatalf("dropped = %v, want [c1]", dropped)
	}
	if !b.WasRemoved("r1") || !b.WasRemoved("c1") {
		t.Fatal("expected r1 and c1 to be remembered as removed")
	}
	if b.ConnectionBetween("r3", "r2") == nil {
		t.Fatal("expected c2 to survive")
	}
}

func TestMoveVotesMergesAllocations(t *testing.T) {
	b := newTestBoard()
	now := time.Now()
	b.Groups["g1"] = &Group{ID: "g1"}
	b.Groups["g2"] = &Group{ID: "g2"}
	b.Votes[VoteKey{"p1", "g1"}] = &Vote{ID: "v1", ParticipantID: "p1", GroupID: "g1", VoteCount: 2}
	b.Votes[VoteKey{"p1", "g2"}] = &Vote{ID: "v2", ParticipantID: "p1", GroupID: "g2", VoteCount: 1}
	b.Votes[VoteKey{"host", "g1"}] = &Vote{ID: "v3", ParticipantID: "host", GroupID: "g1", VoteCount: 3}

	b.MoveVotes("g1", "g2", now, 0)

	if got := b.Allocation("p1", "g2"); got != 3 {
		t.Fatalf("p1 allocation on g2 = %d, want 3", got)
	}
	if got := b.Allocation("host", "g2"); got != 3 {
		t.Fatalf("host allocation on g2 = %d, want 3", got)
	}
	if got := b.Groups["g2"].VoteCount; got != 6 {
		t.Fatalf("g2 VoteCount = %d, want 6", got)
	}
	if got := b.VotesUsed("p1"); got != 3 {
		t.Fatalf("VotesUsed(p1) = %d, want 3", got)
	}
	if len(b.GroupVotes("g1")) != 0 {
		t.Fatal("expected no votes left on g1")
	}
}

func TestMoveVotesClampsToCap(t *testing.T) {
	b := newTestBoard()
	b.Groups["g1"] = &Group{ID: "g1"}
	b.Groups["g2"] = &Group{ID: "g2"}
	b.Votes[VoteKey{"p1", "g1"}] = &Vote{ID: "v1", ParticipantID: "p1", GroupID: "g1", VoteCount: 3}
	b.Votes[VoteKey{"p1", "g2"}] = &Vote{ID: "v2", ParticipantID: "p1", GroupID: "g2", VoteCount: 3}

	b.MoveVotes("g1", "g2", time.Now(), 4)

	if got := b.Allocation("p1", "g2"); got != 4 {
		t.Fatalf("p1 allocation on g2 = %d, want 4", got)
	}
	if got := b.RemainingBudgets(4)["p1"]; got != 0 {
		t.Fatalf("remaining budget = %d, want 0", got)
	}
}

func TestRankingOrdersByVotesThenSize(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBoard()
	add := func(id, group string, i int) {
		b.Responses[id] = &Response{ID: id, GroupID: group, Content: id, Category: CategoryWentWell, CreatedAt: base.Add(time.Duration(i) * time.Second)}
	}
	b.Groups["big"] = &Group{ID: "big", VoteCount: 3, CreatedAt: base}
	b.Groups["small"] = &Group{ID: "small", VoteCount: 3, CreatedAt: base.Add(-time.Hour)}
	b.Groups["top"] = &Group{ID: "top", VoteCount: 5, CreatedAt: base}
	add("r1", "big", 1)
	add("r2", "big", 2)
	add("r3", "big", 3)
	add("r4", "small", 4)
	add("r5", "small", 5)
	add("r6", "top", 6)
	add("loose", "", 7)

	ranked := b.Ranking(LabelLimits{Preview: 30, Linked: 60})
	want := []string{"top", "big", "small", VirtualTargetPrefix + "loose"}
	if len(ranked) != len(want) {
		t.Fatalf("ranked = %d entries, want %d", len(ranked), len(want))
	}
	for i, entry := range ranked {
		if entry.ID != want[i] {
			t.Fatalf("rank %d = %s, want %s", i, entry.ID, want[i])
		}
	}
	if !ranked[3].Virtual || ranked[3].Color != ColorWentWell {
		t.Fatalf("expected virtual went-well entry, got %+v", ranked[3])
	}
}

func TestParseVotingTarget(t *testing.T) {
	target := ParseVotingTarget("individual-r9")
	if target.Kind != TargetResponse || target.ID != "r9" {
		t.Fatalf("ParseVotingTarget() = %+v", target)
	}
	if target.String() != "individual-r9" {
		t.Fatalf("String() = %s", target.String())
	}
	if got := ParseVotingTarget("g1"); got.Kind != TargetGroup || got.ID != "g1" {
		t.Fatalf("ParseVotingTarget(g1) = %+v", got)
	}
}

package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"retroflow/internal/ports"
)

// Avatars is the fixed set of avatar ids a participant can show.
var Avatars = []string{
	"🦁", "🐯", "🦊", "🐺", "🐙", "🦈", "🤖", "🦅",
	"🐉", "🦋", "🐝", "🦜", "🦩", "🐧", "👻", "🦖",
}

var (
	adjectives = []string{"Happy", "Clever", "Swift", "Bright", "Cool", "Wise", "Bold", "Kind", "Quick", "Smart", "Brave", "Calm", "Neat", "Wild", "Free", "Strong"}
	nouns      = []string{"Lion", "Tiger", "Fox", "Wolf", "Eagle", "Bear", "Shark", "Robot", "Dragon", "Butterfly", "Bee", "Parrot", "Flamingo", "Penguin", "Ghost", "Dino"}
)

// Service handles post-auth onboarding for new guest accounts.
type Service struct {
	accounts ports.AccountPort

	mu  sync.Mutex // guards rng; RPCs and hooks call concurrently
	rng *rand.Rand
}

// NewService constructs an onboarding service.
// accounts may be nil when only name and avatar generation is needed; rng may
// be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		rng:      rng,
	}
}

// OnboardNewUser gives a newly created account a friendly name and an avatar.
// The generated profile is returned even when storing it fails.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (ports.Profile, error) {
	profile := ports.Profile{
		DisplayName: s.GenerateName(),
		AvatarID:    s.PickAvatar(nil),
	}
	if s.accounts == nil {
		return profile, fmt.Errorf("onboarding service not configured")
	}
	if err := s.accounts.UpdateProfile(ctx, userID, profile.DisplayName, profile.AvatarID); err != nil {
		return profile, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// GenerateName returns a random "Adjective Noun" display name.
func (s *Service) GenerateName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	return adj + " " + noun
}

// PickAvatar returns a random avatar not in used. When every avatar is taken
// any avatar may be returned.
func (s *Service) PickAvatar(used []string) string {
	taken := make(map[string]bool, len(used))
	for _, a := range used {
		taken[a] = true
	}
	available := make([]string, 0, len(Avatars))
	for _, a := range Avatars {
		if !taken[a] {
			available = append(available, a)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(available) == 0 {
		return Avatars[s.rng.Intn(len(Avatars))]
	}
	return available[s.rng.Intn(len(available))]
}

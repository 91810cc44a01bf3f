package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"retroflow/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaDirectoryAdapter keeps session seeds in Nakama storage, keyed by invite
// code and owned by the system user.
type NakamaDirectoryAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaDirectoryAdapter creates a new storage-backed session directory.
func NewNakamaDirectoryAdapter(nk runtime.NakamaModule) *NakamaDirectoryAdapter {
	return &NakamaDirectoryAdapter{nk: nk}
}

// CreateSession writes the seed only if the invite code is unused.
func (a *NakamaDirectoryAdapter) CreateSession(ctx context.Context, seed ports.SessionSeed) error {
	if seed.InviteCode == "" || seed.SessionID == "" {
		return fmt.Errorf("invite code and session id are required")
	}
	err := a.write(ctx, &seed, "*")
	if errors.Is(err, runtime.ErrStorageRejectedVersion) {
		return ports.ErrSessionExists
	}
	return err
}

// LookupByInviteCode reads the seed stored under inviteCode.
func (a *NakamaDirectoryAdapter) LookupByInviteCode(ctx context.Context, inviteCode string) (*ports.SessionSeed, error) {
	seed, _, err := a.read(ctx, inviteCode)
	return seed, err
}

// AddParticipant appends a participant unless its id or its user is already registered.
func (a *NakamaDirectoryAdapter) AddParticipant(ctx context.Context, inviteCode string, participant ports.ParticipantSeed) (*ports.SessionSeed, error) {
	return a.update(ctx, inviteCode, func(seed *ports.SessionSeed) bool {
		if _, ok := seed.Participant(participant.ID); ok {
			return false
		}
		if _, ok := seed.ParticipantByUser(participant.UserID); ok {
			return false
		}
		seed.Participants = append(seed.Participants, participant)
		return true
	})
}

// BindMatch records matchID unless a match id was stored concurrently.
func (a *NakamaDirectoryAdapter) BindMatch(ctx context.Context, inviteCode, matchID string) (*ports.SessionSeed, error) {
	seed, version, err := a.read(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	seed.MatchID = matchID
	err = a.write(ctx, seed, version)
	if errors.Is(err, runtime.ErrStorageRejectedVersion) {
		// Someone else bound a match first; theirs wins.
		seed, _, err = a.read(ctx, inviteCode)
		return seed, err
	}
	if err != nil {
		return nil, err
	}
	return seed, nil
}

// update applies mutate with optimistic concurrency, retrying on version conflicts.
func (a *NakamaDirectoryAdapter) update(ctx context.Context, inviteCode string, mutate func(*ports.SessionSeed) bool) (*ports.SessionSeed, error) {
	const attempts = 3
	for i := 0; i < attempts; i++ {
		seed, version, err := a.read(ctx, inviteCode)
		if err != nil {
			return nil, err
		}
		if !mutate(seed) {
			return seed, nil
		}
		err = a.write(ctx, seed, version)
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return seed, nil
	}
	return nil, fmt.Errorf("session %s: too many concurrent updates", inviteCode)
}

func (a *NakamaDirectoryAdapter) read(ctx context.Context, inviteCode string) (*ports.SessionSeed, string, error) {
	if inviteCode == "" {
		return nil, "", ports.ErrSessionNotFound
	}
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: sessionCollection,
		Key:        inviteCode,
	}})
	if err != nil {
		return nil, "", fmt.Errorf("failed to read session %s: %w", inviteCode, err)
	}
	if len(objects) == 0 {
		return nil, "", ports.ErrSessionNotFound
	}

	seed := &ports.SessionSeed{}
	if err := json.Unmarshal([]byte(objects[0].GetValue()), seed); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal session %s: %w", inviteCode, err)
	}
	return seed, objects[0].GetVersion(), nil
}

func (a *NakamaDirectoryAdapter) write(ctx context.Context, seed *ports.SessionSeed, version string) error {
	value, err := json.Marshal(seed)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", seed.InviteCode, err)
	}
	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      sessionCollection,
		Key:             seed.InviteCode,
		Value:           string(value),
		Version:         version,
		PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}})
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return err
		}
		return fmt.Errorf("failed to write session %s: %w", seed.InviteCode, err)
	}
	return nil
}

var _ ports.SessionDirectoryPort = (*NakamaDirectoryAdapter)(nil)

package nakama

import (
	"context"

	"retroflow/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaAccountAdapter implements ports.AccountPort using Nakama's account API.
// The avatar id is kept in the account's avatar url field.
type NakamaAccountAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaAccountAdapter creates a new account adapter.
func NewNakamaAccountAdapter(nk runtime.NakamaModule) *NakamaAccountAdapter {
	return &NakamaAccountAdapter{nk: nk}
}

// UpdateProfile updates the display name and avatar in Nakama. The username is left unchanged.
func (a *NakamaAccountAdapter) UpdateProfile(ctx context.Context, userID, displayName, avatarID string) error {
	return a.nk.AccountUpdateId(ctx, userID, "", nil, displayName, "", "", "", avatarID)
}

// GetProfile reads the display name and avatar of an account.
func (a *NakamaAccountAdapter) GetProfile(ctx context.Context, userID string) (ports.Profile, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return ports.Profile{}, err
	}
	user := account.GetUser()
	return ports.Profile{DisplayName: user.GetDisplayName(), AvatarID: user.GetAvatarUrl()}, nil
}

var _ ports.AccountPort = (*NakamaAccountAdapter)(nil)

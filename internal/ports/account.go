package ports

import "context"

// Profile is the public identity a Nakama account shows on boards.
type Profile struct {
	DisplayName string
	AvatarID    string
}

// AccountPort defines the interface for reading and updating account profiles.
type AccountPort interface {
	// UpdateProfile sets the display name and avatar of the given user.
	UpdateProfile(ctx context.Context, userID, displayName, avatarID string) error

	// GetProfile returns the stored profile of the given user.
	GetProfile(ctx context.Context, userID string) (Profile, error)
}

package ports

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned when no snapshot was mirrored for a session.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotMirrorPort publishes the latest board snapshot for readers outside
// the match, such as the board_snapshot RPC after the match has ended.
type SnapshotMirrorPort interface {
	Publish(ctx context.Context, sessionID string, snapshot []byte) error
	Fetch(ctx context.Context, sessionID string) ([]byte, error)
}

package nakama

import (
	"context"
	"fmt"

	"retroflow/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

type storedObject struct {
	value   string
	version string
}

// fakeNakama implements the parts of runtime.NakamaModule the RPCs touch.
// Storage honors Nakama's optimistic version rules.
type fakeNakama struct {
	runtime.NakamaModule

	objects  map[string]storedObject
	versions int
	// beforeWrite runs once ahead of the next StorageWrite to simulate a racing writer.
	beforeWrite func()

	matches      map[string]map[string]interface{} // match id -> params
	ended        map[string]bool
	matchCount   int
	signals      []string
	signalResult string
	signalErr    error
}

func newFakeNakama() *fakeNakama {
	return &fakeNakama{
		objects: make(map[string]storedObject),
		matches: make(map[string]map[string]interface{}),
		ended:   make(map[string]bool),
	}
}

func storageKey(collection, key, userID string) string {
	return collection + "/" + key + "/" + userID
}

func (f *fakeNakama) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	var out []*api.StorageObject
	for _, r := range reads {
		obj, ok := f.objects[storageKey(r.Collection, r.Key, r.UserID)]
		if !ok {
			continue
		}
		out = append(out, &api.StorageObject{
			Collection: r.Collection,
			Key:        r.Key,
			UserId:     r.UserID,
			Value:      obj.value,
			Version:    obj.version,
		})
	}
	return out, nil
}

func (f *fakeNakama) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if hook := f.beforeWrite; hook != nil {
		f.beforeWrite = nil
		hook()
	}
	for _, w := range writes {
		existing, ok := f.objects[storageKey(w.Collection, w.Key, w.UserID)]
		switch {
		case w.Version == "*" && ok:
			return nil, runtime.ErrStorageRejectedVersion
		case w.Version != "" && w.Version != "*" && (!ok || existing.version != w.Version):
			return nil, runtime.ErrStorageRejectedVersion
		}
	}

	acks := make([]*api.StorageObjectAck, 0, len(writes))
	for _, w := range writes {
		f.versions++
		version := fmt.Sprintf("v%d", f.versions)
		f.objects[storageKey(w.Collection, w.Key, w.UserID)] = storedObject{value: w.Value, version: version}
		acks = append(acks, &api.StorageObjectAck{Collection: w.Collection, Key: w.Key, UserId: w.UserID, Version: version})
	}
	return acks, nil
}

func (f *fakeNakama) MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error) {
	if module != MatchNameRetro {
		return "", fmt.Errorf("unknown match module %s", module)
	}
	f.matchCount++
	id := fmt.Sprintf("match-%d", f.matchCount)
	f.matches[id] = params
	return id, nil
}

func (f *fakeNakama) MatchGet(ctx context.Context, id string) (*api.Match, error) {
	if _, ok := f.matches[id]; !ok || f.ended[id] {
		return nil, nil
	}
	return &api.Match{MatchId: id, Authoritative: true}, nil
}

func (f *fakeNakama) MatchSignal(ctx context.Context, id string, data string) (string, error) {
	f.signals = append(f.signals, data)
	return f.signalResult, f.signalErr
}

// fakeAccounts serves profiles without touching Nakama.
type fakeAccounts struct {
	profiles map[string]ports.Profile
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, userID, displayName, avatarID string) error {
	if f.profiles == nil {
		f.profiles = make(map[string]ports.Profile)
	}
	f.profiles[userID] = ports.Profile{DisplayName: displayName, AvatarID: avatarID}
	return nil
}

func (f *fakeAccounts) GetProfile(ctx context.Context, userID string) (ports.Profile, error) {
	return f.profiles[userID], nil
}

package nakama

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const labelGame = "retroflow"

// encodeLabel renders the match label used by match listings. Numbers are
// emitted even when zero so label queries can match on them.
func encodeLabel(state *BoardState) (string, error) {
	session := state.Board.Session
	label, err := structpb.NewStruct(map[string]interface{}{
		"game":    labelGame,
		"session": session.ID,
		"invite":  session.InviteCode,
		"phase":   string(session.Phase),
		"online":  state.Board.OnlineCount(),
	})
	if err != nil {
		return "", err
	}
	out, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

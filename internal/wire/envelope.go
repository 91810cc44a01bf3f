package wire

import (
	"fmt"

	pb "retroflow/proto"

	"google.golang.org/protobuf/proto"
)

// Version is the only envelope version this server speaks.
const Version = 1

// Intent is a decoded, validated client message.
type Intent struct {
	Op      int64
	OpID    string
	Payload Payload
}

// Event is a decoded server message.
type Event struct {
	Op      int64
	OpID    string
	Name    string
	Payload proto.Message
}

func newPayload(op int64) (Payload, bool) {
	switch op {
	case OpAddResponse:
		return &pb.AddResponse{}, true
	case OpUpdateResponse:
		return &pb.UpdateResponse{}, true
	case OpDeleteResponse:
		return &pb.DeleteResponse{}, true
	case OpDragResponse:
		return &pb.DragResponse{}, true
	case OpCreateGroup:
		return &pb.CreateGroup{}, true
	case OpUngroupResponse:
		return &pb.UngroupResponse{}, true
	case OpCreateConnection:
		return &pb.CreateConnection{}, true
	case OpRemoveConnection:
		return &pb.RemoveConnection{}, true
	case OpCastVote:
		return &pb.CastVote{}, true
	case OpChangePhase:
		return &pb.ChangePhase{}, true
	case OpStartPresentation:
		return &pb.StartPresentation{}, true
	case OpNavigatePresentation:
		return &pb.NavigatePresentation{}, true
	case OpEndPresentation:
		return &pb.EndPresentation{}, true
	case OpTypingStart, OpTypingStop:
		return &pb.Typing{}, true
	case OpRequestSnapshot:
		return &pb.RequestSnapshot{}, true
	default:
		return nil, false
	}
}

func newEvent(op int64) (proto.Message, bool) {
	switch op {
	case OpResponseAdded, OpResponseUpdated:
		return &pb.Response{}, true
	case OpResponseDeleted:
		return &pb.ResponseDeleted{}, true
	case OpGroupCreated, OpGroupUpdated:
		return &pb.GroupState{}, true
	case OpGroupDeleted:
		return &pb.GroupDeleted{}, true
	case OpResponseUngrouped:
		return &pb.ResponseUngrouped{}, true
	case OpConnectionCreated:
		return &pb.Connection{}, true
	case OpConnectionRemoved:
		return &pb.ConnectionRemoved{}, true
	case OpVotesUpdated:
		return &pb.VotesUpdated{}, true
	case OpPhaseChanged:
		return &pb.PhaseChanged{}, true
	case OpPresentationStarted, OpPresentationNavigate, OpPresentationEnded:
		return &pb.PresentationState{}, true
	case OpParticipantJoined:
		return &pb.Participant{}, true
	case OpParticipantLeft:
		return &pb.ParticipantLeft{}, true
	case OpParticipantTyping:
		return &pb.ParticipantTyping{}, true
	case OpSessionSnapshot:
		return &pb.Snapshot{}, true
	case OpAck:
		return &pb.Ack{}, true
	case OpError:
		return &pb.Error{}, true
	default:
		return nil, false
	}
}

// Decode parses and validates a client message. Unknown op codes, unknown
// fields, wrong versions and missing required fields are all rejected.
func Decode(op int64, raw []byte) (Intent, error) {
	payload, ok := newPayload(op)
	if !ok {
		return Intent{}, fmt.Errorf("%w: unknown op code %d", ErrMalformed, op)
	}

	env := &pb.IntentEnvelope{}
	if err := proto.Unmarshal(raw, env); err != nil {
		return Intent{}, fmt.Errorf("%w: envelope: %v", ErrMalformed, err)
	}
	if err := closed(env); err != nil {
		return Intent{}, fmt.Errorf("%w: envelope: %v", ErrMalformed, err)
	}
	if env.GetV() != Version {
		return Intent{}, fmt.Errorf("%w: unsupported version %d", ErrMalformed, env.GetV())
	}

	if err := proto.Unmarshal(env.GetData(), payload); err != nil {
		return Intent{}, fmt.Errorf("%w: %s: %v", ErrMalformed, Name(op), err)
	}
	if err := closed(payload); err != nil {
		return Intent{}, fmt.Errorf("%w: %s: %v", ErrMalformed, Name(op), err)
	}
	if err := validate(payload); err != nil {
		return Intent{}, fmt.Errorf("%s: %w", Name(op), err)
	}
	return Intent{Op: op, OpID: env.GetOpId(), Payload: payload}, nil
}

// Encode wraps a server event for the wire. data is either a generated
// message or one of the app payloads ToMessage understands.
func Encode(op int64, opID string, data any) ([]byte, error) {
	name := Name(op)
	if name == "" {
		return nil, fmt.Errorf("unknown op code %d", op)
	}
	msg, err := ToMessage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	body, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return proto.Marshal(&pb.EventEnvelope{V: Version, OpId: opID, Event: name, Data: body})
}

// DecodeEvent parses a server message. The envelope's event name must match
// op. Used by clients and tests.
func DecodeEvent(op int64, raw []byte) (Event, error) {
	payload, ok := newEvent(op)
	if !ok {
		return Event{}, fmt.Errorf("%w: unknown event op %d", ErrMalformed, op)
	}

	env := &pb.EventEnvelope{}
	if err := proto.Unmarshal(raw, env); err != nil {
		return Event{}, fmt.Errorf("%w: envelope: %v", ErrMalformed, err)
	}
	if env.GetV() != Version {
		return Event{}, fmt.Errorf("%w: unsupported version %d", ErrMalformed, env.GetV())
	}
	if name := Name(op); env.GetEvent() != name {
		return Event{}, fmt.Errorf("%w: op %d carries event %q", ErrMalformed, op, env.GetEvent())
	}
	if err := proto.Unmarshal(env.GetData(), payload); err != nil {
		return Event{}, fmt.Errorf("%w: %s: %v", ErrMalformed, env.GetEvent(), err)
	}
	return Event{Op: op, OpID: env.GetOpId(), Name: env.GetEvent(), Payload: payload}, nil
}

// EncodeIntent builds a client message. Used by clients and tests.
func EncodeIntent(opID string, payload Payload) ([]byte, error) {
	data, err := proto.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(&pb.IntentEnvelope{V: Version, OpId: opID, Data: data})
}

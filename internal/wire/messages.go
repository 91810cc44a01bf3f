package wire

import (
	"errors"
	"fmt"

	pb "retroflow/proto"

	"google.golang.org/protobuf/proto"
)

// ErrMalformed is returned for any payload rejected at the boundary.
var ErrMalformed = errors.New("malformed message")

// Payload is implemented by every client intent.
type Payload interface {
	proto.Message
	GetSessionId() string
}

func required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			return fieldError(fields[i])
		}
	}
	return nil
}

func fieldError(name string) error {
	return &FieldError{Field: name}
}

// FieldError names the missing or invalid field of a payload.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "missing or invalid field " + e.Field
}

func (e *FieldError) Unwrap() error {
	return ErrMalformed
}

// validate checks the fields proto3 cannot mark as required.
func validate(p Payload) error {
	switch v := p.(type) {
	case *pb.AddResponse:
		return required("content", v.GetContent(), "category", v.GetCategory())
	case *pb.UpdateResponse:
		return required("response_id", v.GetResponseId(), "content", v.GetContent())
	case *pb.DeleteResponse:
		return required("response_id", v.GetResponseId())
	case *pb.DragResponse:
		if err := required("response_id", v.GetResponseId()); err != nil {
			return err
		}
		if v.X == nil {
			return fieldError("x")
		}
		if v.Y == nil {
			return fieldError("y")
		}
	case *pb.CreateGroup:
		if len(v.GetResponseIds()) == 0 {
			return fieldError("response_ids")
		}
		for _, id := range v.GetResponseIds() {
			if id == "" {
				return fieldError("response_ids")
			}
		}
	case *pb.UngroupResponse:
		return required("response_id", v.GetResponseId())
	case *pb.CreateConnection:
		return required("from_response_id", v.GetFromResponseId(), "to_response_id", v.GetToResponseId())
	case *pb.RemoveConnection:
		// Either the id or both endpoints.
		if v.GetConnectionId() != "" {
			return nil
		}
		return required("from_response_id", v.GetFromResponseId(), "to_response_id", v.GetToResponseId())
	case *pb.CastVote:
		if err := required("participant_id", v.GetParticipantId(), "group_id", v.GetGroupId()); err != nil {
			return err
		}
		if v.VoteCount == nil {
			return fieldError("vote_count")
		}
	case *pb.ChangePhase:
		return required("phase", v.GetPhase())
	case *pb.NavigatePresentation:
		if v.ItemIndex == nil {
			return fieldError("item_index")
		}
	case *pb.StartPresentation, *pb.EndPresentation, *pb.Typing, *pb.RequestSnapshot:
	default:
		return fmt.Errorf("%w: unexpected payload %T", ErrMalformed, p)
	}
	return nil
}

// closed rejects messages carrying fields this schema version does not know.
func closed(m proto.Message) error {
	if len(m.ProtoReflect().GetUnknown()) > 0 {
		return errors.New("unknown fields")
	}
	return nil
}

// SessionOf returns the session id a payload claims to target, if any.
func SessionOf(p Payload) string {
	return p.GetSessionId()
}

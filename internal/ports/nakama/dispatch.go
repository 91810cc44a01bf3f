package nakama

import (
	"fmt"

	"retroflow/internal/app"
	"retroflow/internal/domain"
	"retroflow/internal/wire"
	pb "retroflow/proto"
)

// dispatch applies a decoded intent on behalf of participantID.
func (mh *matchHandler) dispatch(state *BoardState, participantID string, intent wire.Intent) ([]app.Event, error) {
	board := state.Board
	svc := state.App
	if err := sessionMismatch(board, intent.Payload); err != nil {
		return nil, err
	}

	switch p := intent.Payload.(type) {
	case *pb.AddResponse:
		if p.GetParticipantId() != "" && p.GetParticipantId() != participantID {
			return nil, app.ErrParticipantMismatch
		}
		return svc.AddResponse(board, participantID, domain.Category(p.GetCategory()), p.GetContent())
	case *pb.UpdateResponse:
		return svc.UpdateResponse(board, participantID, p.GetResponseId(), p.GetContent())
	case *pb.DeleteResponse:
		return svc.DeleteResponse(board, participantID, p.GetResponseId())
	case *pb.DragResponse:
		return svc.DragResponse(board, participantID, p.GetResponseId(), domain.Position{X: p.GetX(), Y: p.GetY()})
	case *pb.CreateGroup:
		return svc.CreateGroup(board, participantID, p.GetLabel(), p.GetColor(), p.GetResponseIds())
	case *pb.UngroupResponse:
		return svc.UngroupResponse(board, participantID, p.GetResponseId())
	case *pb.CreateConnection:
		return svc.CreateConnection(board, participantID, p.GetFromResponseId(), p.GetToResponseId())
	case *pb.RemoveConnection:
		return svc.RemoveConnection(board, participantID, p.GetConnectionId(), p.GetFromResponseId(), p.GetToResponseId())
	case *pb.CastVote:
		return svc.CastVote(board, participantID, p.GetParticipantId(), p.GetGroupId(), int(p.GetVoteCount()))
	case *pb.ChangePhase:
		change := app.PhaseChange{Phase: domain.Phase(p.GetPhase()), StopTimer: p.GetStopTimer()}
		if p.TimerDuration != nil {
			change.TimerSeconds = int(p.GetTimerDuration())
		}
		return svc.ChangePhase(board, participantID, change)
	case *pb.StartPresentation:
		return svc.StartPresentation(board, participantID)
	case *pb.NavigatePresentation:
		return svc.NavigatePresentation(board, participantID, int(p.GetItemIndex()))
	case *pb.EndPresentation:
		return svc.EndPresentation(board, participantID)
	case *pb.Typing:
		if p.GetParticipantId() != "" && p.GetParticipantId() != participantID {
			return nil, app.ErrParticipantMismatch
		}
		return svc.Typing(board, participantID, intent.Op == wire.OpTypingStart)
	case *pb.RequestSnapshot:
		return []app.Event{svc.SnapshotFor(board, participantID)}, nil
	default:
		return nil, fmt.Errorf("unhandled intent %T", intent.Payload)
	}
}

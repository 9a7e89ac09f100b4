package pipeline

import (
	"errors"

	"JoinUsMaybe-backend/internal/model"
)

// Decisions a recruiter or admin can take on an application
var (
	DecisionAccept = "ACCEPT"
	DecisionReject = "REJECT"
)

var (
	// ErrCannotProgress means an accept decision hit an application already in a terminal stage
	ErrCannotProgress = errors.New("application cannot progress further")
	// ErrUnknownStage means the stored stage is not in the position's stage table
	ErrUnknownStage = errors.New("application stage is not valid for its position")
	// ErrUnknownPosition means the stored position has no stage table at all
	ErrUnknownPosition = errors.New("application position is unknown")
	// ErrInvalidDecision means the decision token is neither ACCEPT nor REJECT
	ErrInvalidDecision = errors.New("decision must be ACCEPT or REJECT")
)

// ApplyDecision mutates app.Stage according to the decision.
//
// REJECT always lands on REJECTED, even when the application is already
// terminal. ACCEPT advances to the next stage of the position's sequence, or
// to ACCEPTED when the current stage is the last non-terminal one. On error
// the application is left unchanged.
func ApplyDecision(app *model.Application, decision string) error {
	switch decision {
	case DecisionReject:
		app.Stage = model.StageRejected
		return nil
	case DecisionAccept:
		// handled below
	default:
		return ErrInvalidDecision
	}

	if IsTerminal(app.Stage) {
		return ErrCannotProgress
	}

	seq, ok := stagesMap[app.Position]
	if !ok {
		return ErrUnknownPosition
	}

	idx := -1
	for i, stage := range seq {
		if stage == app.Stage {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownStage
	}

	if idx == len(seq)-1 {
		app.Stage = model.StageAccepted
		return nil
	}
	app.Stage = seq[idx+1]
	return nil
}

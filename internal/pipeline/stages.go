// Package pipeline implements the application stage progression machine and
// recruitment cycle resolution. It is pure computation: persistence of the
// mutated records stays with the callers.
package pipeline

import (
	"JoinUsMaybe-backend/internal/model"
)

// stagesMap maps a position track to its ordered sequence of non-terminal
// stages. Built once, never mutated after init.
var stagesMap = map[string][]string{
	model.PositionDeveloper: {
		model.StageAppReceived,
		model.StageTechInterview,
		model.StageBehavioralInterview,
	},
	model.PositionPM: {
		model.StageAppReceived,
		model.StagePMChallenge,
		model.StageBehavioralInterview,
	},
	model.PositionDesigner: {
		model.StageAppReceived,
		model.StageBehavioralInterview,
	},
}

// StagesFor returns the ordered non-terminal stage sequence for a position.
// The second return value is false for an unknown position.
func StagesFor(position string) ([]string, bool) {
	seq, ok := stagesMap[position]
	if !ok {
		return nil, false
	}
	// copy so callers cannot mutate the table
	out := make([]string, len(seq))
	copy(out, seq)
	return out, true
}

// IsTerminal reports whether no further transitions are valid from stage.
func IsTerminal(stage string) bool {
	return stage == model.StageAccepted || stage == model.StageRejected
}

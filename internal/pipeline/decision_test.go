package pipeline

import (
	"testing"

	"JoinUsMaybe-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestApplyDecision_AcceptAdvancesEveryPosition(t *testing.T) {
	for position, seq := range stagesMap {
		for i, stage := range seq {
			app := model.Application{Position: position, Stage: stage}

			err := ApplyDecision(&app, DecisionAccept)
			assert.NoError(t, err, "position %s stage %s", position, stage)

			if i == len(seq)-1 {
				assert.Equal(t, model.StageAccepted, app.Stage)
			} else {
				assert.Equal(t, seq[i+1], app.Stage)
			}
		}
	}
}

func TestApplyDecision_DeveloperFullPath(t *testing.T) {
	app := model.Application{Position: model.PositionDeveloper, Stage: model.StageAppReceived}

	assert.NoError(t, ApplyDecision(&app, DecisionAccept))
	assert.Equal(t, model.StageTechInterview, app.Stage)

	assert.NoError(t, ApplyDecision(&app, DecisionAccept))
	assert.Equal(t, model.StageBehavioralInterview, app.Stage)

	assert.NoError(t, ApplyDecision(&app, DecisionAccept))
	assert.Equal(t, model.StageAccepted, app.Stage)
}

func TestApplyDecision_DesignerSkipsMiddleStages(t *testing.T) {
	app := model.Application{Position: model.PositionDesigner, Stage: model.StageAppReceived}

	assert.NoError(t, ApplyDecision(&app, DecisionAccept))
	assert.Equal(t, model.StageBehavioralInterview, app.Stage)

	assert.NoError(t, ApplyDecision(&app, DecisionAccept))
	assert.Equal(t, model.StageAccepted, app.Stage)
}

func TestApplyDecision_RejectFromAnyStage(t *testing.T) {
	stages := []string{
		model.StageAppReceived,
		model.StageTechInterview,
		model.StageBehavioralInterview,
		model.StagePMChallenge,
		model.StageAccepted,
		model.StageRejected,
	}
	for _, stage := range stages {
		app := model.Application{Position: model.PositionPM, Stage: stage}
		err := ApplyDecision(&app, DecisionReject)
		assert.NoError(t, err, "stage %s", stage)
		assert.Equal(t, model.StageRejected, app.Stage)
	}
}

func TestApplyDecision_RejectIsIdempotent(t *testing.T) {
	app := model.Application{Position: model.PositionDeveloper, Stage: model.StageRejected}

	assert.NoError(t, ApplyDecision(&app, DecisionReject))
	assert.Equal(t, model.StageRejected, app.Stage)
}

func TestApplyDecision_AcceptOnTerminalFails(t *testing.T) {
	for _, stage := range []string{model.StageAccepted, model.StageRejected} {
		app := model.Application{Position: model.PositionDeveloper, Stage: stage}

		err := ApplyDecision(&app, DecisionAccept)
		assert.ErrorIs(t, err, ErrCannotProgress)
		// record must be left unchanged
		assert.Equal(t, stage, app.Stage)
	}
}

func TestApplyDecision_UnknownStageFails(t *testing.T) {
	// PM_CHALLENGE is not part of the developer sequence
	app := model.Application{Position: model.PositionDeveloper, Stage: model.StagePMChallenge}

	err := ApplyDecision(&app, DecisionAccept)
	assert.ErrorIs(t, err, ErrUnknownStage)
	assert.Equal(t, model.StagePMChallenge, app.Stage)
}

func TestApplyDecision_UnknownPositionFails(t *testing.T) {
	app := model.Application{Position: "BARISTA", Stage: model.StageAppReceived}

	err := ApplyDecision(&app, DecisionAccept)
	assert.ErrorIs(t, err, ErrUnknownPosition)
	assert.Equal(t, model.StageAppReceived, app.Stage)
}

func TestApplyDecision_InvalidDecisionToken(t *testing.T) {
	app := model.Application{Position: model.PositionDeveloper, Stage: model.StageAppReceived}

	err := ApplyDecision(&app, "MAYBE")
	assert.ErrorIs(t, err, ErrInvalidDecision)
	assert.Equal(t, model.StageAppReceived, app.Stage)
}

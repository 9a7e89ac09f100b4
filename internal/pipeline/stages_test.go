package pipeline

import (
	"testing"

	"JoinUsMaybe-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestStagesFor_KnownPositions(t *testing.T) {
	devStages, ok := StagesFor(model.PositionDeveloper)
	assert.True(t, ok)
	assert.Equal(t, []string{"APP_RECEIVED", "T_INTERVIEW", "B_INTERVIEW"}, devStages)

	pmStages, ok := StagesFor(model.PositionPM)
	assert.True(t, ok)
	assert.Equal(t, []string{"APP_RECEIVED", "PM_CHALLENGE", "B_INTERVIEW"}, pmStages)

	designerStages, ok := StagesFor(model.PositionDesigner)
	assert.True(t, ok)
	assert.Equal(t, []string{"APP_RECEIVED", "B_INTERVIEW"}, designerStages)
}

func TestStagesFor_UnknownPosition(t *testing.T) {
	_, ok := StagesFor("QA")
	assert.False(t, ok)
}

func TestStagesFor_ReturnsCopy(t *testing.T) {
	stages, ok := StagesFor(model.PositionDesigner)
	assert.True(t, ok)

	stages[0] = "MUTATED"

	again, _ := StagesFor(model.PositionDesigner)
	assert.Equal(t, model.StageAppReceived, again[0])
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(model.StageAccepted))
	assert.True(t, IsTerminal(model.StageRejected))
	assert.False(t, IsTerminal(model.StageAppReceived))
	assert.False(t, IsTerminal(model.StageBehavioralInterview))
}

package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildContextLogAndReset(t *testing.T) {
	ctx := NewBuildContext(true)

	ctx.Progressf("building %d", 1)
	ctx.Warningf("watch out")
	assert.Equal(t, 2, ctx.LogCount())

	ctx.ResetLog()
	assert.Equal(t, 0, ctx.LogCount())
}

func TestBuildContextDisabledLoggingDropsMessages(t *testing.T) {
	ctx := NewBuildContext(false)
	ctx.Progressf("should not be recorded")
	assert.Equal(t, 0, ctx.LogCount())
}

func TestBuildContextTimerAccumulates(t *testing.T) {
	ctx := NewBuildContext(true)

	ctx.StartTimer(PhaseCompress)
	ctx.StopTimer(PhaseCompress)

	assert.True(t, ctx.AccumulatedTime(PhaseCompress) >= 0)
}

func TestBuildContextResetTimersClearsAccumulation(t *testing.T) {
	ctx := NewBuildContext(true)
	ctx.StartTimer(PhaseLabel)
	ctx.StopTimer(PhaseLabel)

	ctx.ResetTimers()
	assert.Zero(t, ctx.AccumulatedTime(PhaseLabel))
}

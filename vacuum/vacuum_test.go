package vacuum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflexAgentRules(t *testing.T) {
	agent := ReflexAgent{}
	assert.Equal(t, Suck, agent.Act(Percept{RoomA, Dirty}))
	assert.Equal(t, Suck, agent.Act(Percept{RoomB, Dirty}))
	assert.Equal(t, MoveToB, agent.Act(Percept{RoomA, Clean}))
	assert.Equal(t, MoveToA, agent.Act(Percept{RoomB, Clean}))
}

func TestRunBothDirty(t *testing.T) {
	env := NewEnvironment(Dirty, Dirty, RoomA)
	trace := Run(env, ReflexAgent{}, 10)

	// suck A, move to B, suck B, final no-op
	require.Len(t, trace, 4)
	assert.Equal(t, Suck, trace[0].Action)
	assert.Equal(t, MoveToB, trace[1].Action)
	assert.Equal(t, Suck, trace[2].Action)
	assert.Equal(t, NoOp, trace[3].Action)

	assert.True(t, env.AllClean())
	// +10 twice, -1 four times
	assert.Equal(t, 16, env.Score())
}

func TestRunAlreadyClean(t *testing.T) {
	env := NewEnvironment(Clean, Clean, RoomB)
	trace := Run(env, ReflexAgent{}, 10)

	require.Len(t, trace, 1)
	assert.Equal(t, NoOp, trace[0].Action)
	assert.Equal(t, -1, env.Score())
}

func TestRunOneDirtyFarRoom(t *testing.T) {
	env := NewEnvironment(Clean, Dirty, RoomA)
	trace := Run(env, ReflexAgent{}, 10)

	// move to B, suck, no-op
	require.Len(t, trace, 3)
	assert.Equal(t, MoveToB, trace[0].Action)
	assert.Equal(t, Suck, trace[1].Action)
	assert.Equal(t, NoOp, trace[2].Action)
	assert.Equal(t, 7, env.Score())
}

func TestRunStepLimit(t *testing.T) {
	env := NewEnvironment(Dirty, Dirty, RoomA)
	trace := Run(env, ReflexAgent{}, 2)

	require.Len(t, trace, 2)
	assert.False(t, env.AllClean())
}

func TestSuckCleanRoomStillCosts(t *testing.T) {
	env := NewEnvironment(Clean, Clean, RoomA)
	env.Step(Suck)
	assert.Equal(t, -1, env.Score())
	assert.True(t, env.AllClean())
}

func TestTraceScores(t *testing.T) {
	env := NewEnvironment(Dirty, Clean, RoomA)
	trace := Run(env, ReflexAgent{}, 10)
	require.NotEmpty(t, trace)
	assert.Equal(t, env.Score(), trace[len(trace)-1].Score)
	for i, entry := range trace {
		assert.Equal(t, i+1, entry.Step)
	}
}

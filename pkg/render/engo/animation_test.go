// pkg/render/engo/animation_test.go
package engo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/go-dinoball/pkg/entity"
)

func TestRunAnimator_AlternatesEveryTenthOfASecond(t *testing.T) {
	var a RunAnimator

	assert.Equal(t, PoseRun1, a.Advance(0.05, entity.Running))
	assert.Equal(t, PoseRun2, a.Advance(0.06, entity.Running))
	assert.Equal(t, PoseRun2, a.Advance(0.05, entity.Running))
	assert.Equal(t, PoseRun1, a.Advance(0.05, entity.Running))
}

func TestRunAnimator_LongFrameWrapsWholePeriods(t *testing.T) {
	var a RunAnimator

	// 0.25s covers two full flips and leaves about 0.05s
	assert.Equal(t, PoseRun1, a.Advance(0.25, entity.Running))
	assert.Equal(t, PoseRun2, a.Advance(0.06, entity.Running))
}

func TestRunAnimator_OtherStates(t *testing.T) {
	tests := []struct {
		name  string
		state entity.MovementState
		want  Pose
	}{
		{name: "idle", state: entity.Idle, want: PoseStand},
		{name: "jumping", state: entity.Jumping, want: PoseJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a RunAnimator
			a.Advance(0.15, entity.Running)

			assert.Equal(t, tt.want, a.Advance(0.016, tt.state))
			// Running again restarts from the first frame
			assert.Equal(t, PoseRun1, a.Advance(0.016, entity.Running))
		})
	}
}

// pkg/render/engo/animation.go
package engo

import "github.com/opd-ai/go-dinoball/pkg/entity"

// Pose selects a player sprite
type Pose int

const (
	PoseStand Pose = iota
	PoseRun1
	PoseRun2
	PoseJump
	poseCount
)

// runFrameTime is how long each run frame is shown, in seconds
const runFrameTime = 0.1

// RunAnimator alternates the two run poses while a player is running
type RunAnimator struct {
	elapsed float64
	second  bool
}

// Advance moves the animation on by dt seconds and returns the pose for state
func (a *RunAnimator) Advance(dt float64, state entity.MovementState) Pose {
	switch state {
	case entity.Running:
		a.elapsed += dt
		for a.elapsed >= runFrameTime {
			a.elapsed -= runFrameTime
			a.second = !a.second
		}
		if a.second {
			return PoseRun2
		}
		return PoseRun1
	case entity.Jumping:
		a.reset()
		return PoseJump
	default:
		a.reset()
		return PoseStand
	}
}

func (a *RunAnimator) reset() {
	a.elapsed = 0
	a.second = false
}

// pkg/engine/match.go
package engine

import (
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/entity"
)

// NoWinner is the Winner value while the match is undecided
const NoWinner = 0

// MatchState holds the scoreboard and serve possession.
// While BallActive is false the ball is attached to ServingPlayer.
// Winner is non-zero exactly when GameOver is true.
type MatchState struct {
	Player1Score  int
	Player2Score  int
	ServingPlayer court.Side
	BallActive    bool
	GameOver      bool
	Winner        int // 1 or 2, NoWinner otherwise
}

// NewMatchState returns a fresh match with Player1 serving
func NewMatchState() *MatchState {
	return &MatchState{ServingPlayer: court.Left}
}

// Score returns the score of the player on the given side
func (m *MatchState) Score(side court.Side) int {
	if side == court.Left {
		return m.Player1Score
	}
	return m.Player2Score
}

// Award adds a point to side and returns the new score
func (m *MatchState) Award(side court.Side) int {
	if side == court.Left {
		m.Player1Score++
		return m.Player1Score
	}
	m.Player2Score++
	return m.Player2Score
}

// Evaluate checks whether an active ball has touched the ground. When it
// has, the player opposite the landing side scores and takes the serve, the
// ball is deactivated and stopped, and the match ends if the scorer reached
// winningScore. It returns the scoring side and whether a point was scored.
func (m *MatchState) Evaluate(ball *entity.Ball, c court.Court, winningScore int) (court.Side, bool) {
	if !m.BallActive || ball.Position.Y >= c.GroundY {
		return court.Left, false
	}

	scorer := court.SideOf(ball.Position.X).Opposite()
	score := m.Award(scorer)
	m.ServingPlayer = scorer
	m.BallActive = false
	ball.Stop()

	if score >= winningScore {
		m.GameOver = true
		m.Winner = scorer.Number()
	}
	return scorer, true
}

// Restart clears scores and match status. Serve possession is kept so the
// last scorer serves first in the new match.
func (m *MatchState) Restart() {
	m.Player1Score = 0
	m.Player2Score = 0
	m.BallActive = false
	m.GameOver = false
	m.Winner = NoWinner
}

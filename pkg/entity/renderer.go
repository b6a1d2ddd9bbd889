package entity

import "github.com/opd-ai/go-dinoball/pkg/court"

// Renderer draws one frame of the match. Implementations live outside the
// simulation core.
type Renderer interface {
	RenderCourt(c court.Court)
	RenderPlayer(player *Player)
	RenderBall(ball *Ball)
	RenderScore(player1, player2 int, winner int)
	Clear()
	Present()
}

// pkg/engine/game.go
package engine

import (
	"context"
	"math"
	"sync"

	"github.com/opd-ai/go-dinoball/pkg/config"
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/entity"
	"github.com/opd-ai/go-dinoball/pkg/event"
	"github.com/opd-ai/go-dinoball/pkg/logging"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

// Game owns every piece of simulation state and advances it one frame at a
// time. Step must be driven by a single loop; Frame may be called from
// other goroutines.
type Game struct {
	Config      *config.GameConfig
	Players     [2]*entity.Player
	Ball        *entity.Ball
	Match       *MatchState
	Court       court.Court
	EventBus    *event.Bus
	Speed       config.SpeedLevel
	CurrentTick uint64
	Running     bool

	mu      sync.RWMutex
	pending []event.Event
	logger  *logging.Logger
	ctx     context.Context
}

// NewGame creates a match from cfg. Players stand at their home positions
// and the ball waits above the court for the first serve.
func NewGame(cfg *config.GameConfig) *Game {
	if cfg == nil {
		panic("engine: NewGame called with nil config")
	}

	game := &Game{
		Config:   cfg,
		Match:    NewMatchState(),
		EventBus: event.NewEventBus(),
		Speed:    cfg.Rules.Speed,
		logger:   logging.NewLogger(),
		ctx:      logging.WithMatchID(context.Background(), ""),
	}
	for _, side := range court.Sides {
		home := physics.Vector2D{X: cfg.Player.HomeX, Y: 0}
		if side == court.Left {
			home.X = -home.X
		}
		game.Players[side] = entity.NewPlayer(side, home)
	}
	game.Ball = entity.NewBall(physics.Vector2D{X: 0, Y: cfg.Ball.StartHeight})
	game.Court = court.Resolve(cfg, float64(cfg.Display.Width), float64(cfg.Display.Height))

	return game
}

// SetLogger replaces the default stderr logger
func (g *Game) SetLogger(logger *logging.Logger) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = logger
}

// SetSpeed changes the game speed level for subsequent steps
func (g *Game) SetSpeed(level config.SpeedLevel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Speed = level
}

// Context returns the context carrying this match's ID
func (g *Game) Context() context.Context {
	return g.ctx
}

// Start marks the game as running and announces it
func (g *Game) Start() {
	g.mu.Lock()
	g.Running = true
	logger, ctx := g.logger, g.ctx
	attrs := []any{
		"winning_score", g.Config.Rules.WinningScore,
		"speed", string(g.Speed),
		"ceiling_bounce", g.Config.Ball.CeilingBounce,
	}
	g.mu.Unlock()

	logger.Info(ctx, "match started", attrs...)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
}

// Step advances the simulation by dt seconds of wall-clock time for the
// given input and viewport, and returns the resulting frame. Events raised
// during the step are published after the state is updated.
func (g *Game) Step(dt float64, in Input, vp Viewport) Frame {
	g.mu.Lock()
	frame := g.step(dt, in, vp)
	events := g.pending
	g.pending = nil
	g.mu.Unlock()

	for _, e := range events {
		g.EventBus.Publish(e)
	}
	return frame
}

func (g *Game) step(dt float64, in Input, vp Viewport) Frame {
	if in.Restart {
		g.restartMatch()
	}

	g.Court = court.Resolve(g.Config, vp.Width, vp.Height)
	simDt := math.Max(dt, 0) * g.Speed.Factor()

	if !g.Match.GameOver {
		for _, p := range g.Players {
			p.Update(in.For(p.Side), simDt, g.Court, g.Config.Player)
		}
	}

	g.updateBall(simDt, in)
	g.scorePoint()

	g.CurrentTick++
	frame := g.snapshot()
	frame.Quit = in.Quit
	return frame
}

func (g *Game) updateBall(dt float64, in Input) {
	switch {
	case g.Match.GameOver:
		g.Ball.Stop()

	case !g.Match.BallActive:
		server := g.Players[g.Match.ServingPlayer]
		g.Ball.Attach(server, g.Court, g.Config.Ball)
		if g.Ball.TryServe(server, in.For(server.Side).ServeHeld(), g.Court, g.Config.Ball) {
			g.Match.BallActive = true
			g.logger.Debug(g.ctx, "ball served",
				"player", server.Side.Number(),
				"vx", g.Ball.Velocity.X,
				"vy", g.Ball.Velocity.Y)
			g.pending = append(g.pending, event.NewServeEvent(g, server.Side.Number()))
		}

	default:
		for _, contact := range g.Ball.Step(dt, g.Players[:], g.Court, g.Config.Ball) {
			player := 0
			if contact.Kind == entity.ContactPlayer {
				player = contact.Side.Number()
			}
			g.pending = append(g.pending, event.NewCollisionEvent(g, string(contact.Kind), player))
		}
	}
}

func (g *Game) scorePoint() {
	scorer, scored := g.Match.Evaluate(g.Ball, g.Court, g.Config.Rules.WinningScore)
	if !scored {
		return
	}

	g.logger.Info(g.ctx, "point scored",
		"player", scorer.Number(),
		"player1_score", g.Match.Player1Score,
		"player2_score", g.Match.Player2Score,
		"landing_x", g.Ball.Position.X)
	g.pending = append(g.pending, event.NewScoreEvent(event.PointScored, g,
		scorer.Number(), g.Match.Player1Score, g.Match.Player2Score))

	if g.Match.GameOver {
		g.logger.Info(g.ctx, "match won", "winner", g.Match.Winner, "tick", g.CurrentTick)
		g.pending = append(g.pending, event.NewScoreEvent(event.MatchWon, g,
			g.Match.Winner, g.Match.Player1Score, g.Match.Player2Score))
	}
}

func (g *Game) restartMatch() {
	g.Match.Restart()
	g.logger.Info(g.ctx, "match restarted", "serving", g.Match.ServingPlayer.Number())
	g.pending = append(g.pending, &event.BaseEvent{EventType: event.MatchRestarted, Source: g})
}

// Reset puts the game back to its freshly created state: players home,
// ball at its start height, a new match with Player1 serving.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Match = NewMatchState()
	for _, p := range g.Players {
		p.Reset()
	}
	g.Ball.Position = physics.Vector2D{X: 0, Y: g.Config.Ball.StartHeight}
	g.Ball.Stop()
	g.Ball.Spin = 0
	g.Ball.Rotation = 0
	g.CurrentTick = 0
	g.ctx = logging.WithMatchID(context.Background(), "")
}

// Frame returns a snapshot of the current state without stepping
func (g *Game) Frame() Frame {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshot()
}

func (g *Game) snapshot() Frame {
	return Frame{
		Tick:  g.CurrentTick,
		Court: g.Court,
		Players: [2]PlayerFrame{
			snapshotPlayer(g.Players[court.Left]),
			snapshotPlayer(g.Players[court.Right]),
		},
		Ball: BallFrame{
			Position: g.Ball.Position,
			Velocity: g.Ball.Velocity,
			Rotation: g.Ball.Rotation,
		},
		Player1Score:  g.Match.Player1Score,
		Player2Score:  g.Match.Player2Score,
		ServingPlayer: g.Match.ServingPlayer,
		BallActive:    g.Match.BallActive,
		GameOver:      g.Match.GameOver,
		Winner:        g.Match.Winner,
	}
}

// Render draws the current state through r
func (g *Game) Render(r entity.Renderer) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r.Clear()
	r.RenderCourt(g.Court)
	for _, p := range g.Players {
		p.Render(r)
	}
	g.Ball.Render(r)
	r.RenderScore(g.Match.Player1Score, g.Match.Player2Score, g.Match.Winner)
	r.Present()
}

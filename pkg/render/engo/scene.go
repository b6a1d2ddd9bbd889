// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-dinoball/pkg/ai"
	"github.com/opd-ai/go-dinoball/pkg/config"
	"github.com/opd-ai/go-dinoball/pkg/engine"
	"github.com/opd-ai/go-dinoball/pkg/logging"
)

// GameScene runs a local match inside an engo window
type GameScene struct {
	game   *engine.Game
	cpu    *ai.Autopilot
	logger *logging.Logger

	assets   *AssetManager
	renderer *EngoRenderer
	frame    engine.Frame
}

// NewGameScene creates a scene for game. When cpu is non-nil it controls
// its side instead of the keyboard.
func NewGameScene(game *engine.Game, logger *logging.Logger, cpu *ai.Autopilot) *GameScene {
	return &GameScene{
		game:   game,
		cpu:    cpu,
		logger: logger,
		assets: NewAssetManager(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "DinoBallScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.assets.PreloadFont(); err != nil {
		scene.logger.Error(scene.game.Context(), "font preload failed", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("engo scene: updater is not an *ecs.World")
	}

	common.SetBackground(skyColor)
	SetupInputBindings()
	world.AddSystem(&common.RenderSystem{})

	if err := scene.assets.LoadAssets(); err != nil {
		panic("Failed to load assets: " + err.Error())
	}
	scene.renderer = NewEngoRenderer(world, scene.assets)
	if err := scene.renderer.Initialize(); err != nil {
		panic("Failed to initialize renderer: " + err.Error())
	}

	world.AddSystem(&simulationSystem{scene: scene, buttons: engoButtons{}})

	scene.frame = scene.game.Frame()
	scene.game.Start()
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	f := scene.game.Frame()
	scene.logger.Info(scene.game.Context(), "window closed",
		"player1_score", f.Player1Score,
		"player2_score", f.Player2Score,
		"ticks", f.Tick)
}

// step advances the match by one engo frame
func (scene *GameScene) step(dt float64, buttons ButtonReader) {
	in := ReadInput(buttons, scene.frame.GameOver)
	if scene.cpu != nil {
		in.Players[scene.cpu.Side()] = scene.cpu.Decide(scene.frame)
	}

	vp := engine.Viewport{Width: float64(engo.GameWidth()), Height: float64(engo.GameHeight())}
	scene.frame = scene.game.Step(dt, in, vp)
	if scene.frame.Quit {
		engo.Exit()
		return
	}

	scene.renderer.SetFrameTime(dt)
	scene.game.Render(scene.renderer)
}

// simulationSystem drives the match from the ECS update loop
type simulationSystem struct {
	scene   *GameScene
	buttons ButtonReader
}

// Remove satisfies the ecs.System interface
func (s *simulationSystem) Remove(ecs.BasicEntity) {}

// Update steps the simulation and syncs the render entities
func (s *simulationSystem) Update(dt float32) {
	s.scene.step(float64(dt), s.buttons)
}

// RunOptions builds the engo window options from the display config
func RunOptions(display config.DisplayConfig) engo.RunOptions {
	return engo.RunOptions{
		Title:      display.Title,
		Width:      display.Width,
		Height:     display.Height,
		Fullscreen: display.Fullscreen,
		VSync:      display.VSync,
	}
}

// Run opens the window and blocks until it is closed
func Run(game *engine.Game, logger *logging.Logger, cpu *ai.Autopilot) {
	engo.Run(RunOptions(game.Config.Display), NewGameScene(game, logger, cpu))
}

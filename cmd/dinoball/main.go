// cmd/dinoball/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/opd-ai/go-dinoball/pkg/ai"
	"github.com/opd-ai/go-dinoball/pkg/config"
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/engine"
	"github.com/opd-ai/go-dinoball/pkg/event"
	"github.com/opd-ai/go-dinoball/pkg/logging"
	"github.com/opd-ai/go-dinoball/pkg/render"
	engorender "github.com/opd-ai/go-dinoball/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "dinoball.json", "Path to configuration file (.json or .toml)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo' or 'terminal'")
	speed := flag.String("speed", "", "Game speed: slow, normal or fast (overrides config)")
	cpu := flag.Bool("cpu", true, "Let the computer play player 2 (Engo only)")
	behavior := flag.String("behavior", "chaser", "Computer behavior: 'chaser' or 'defender'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	cols := flag.Int("cols", 0, "Court columns, 0 fits the terminal (terminal only)")
	rows := flag.Int("rows", 0, "Court rows, 0 fits the terminal (terminal only)")
	fps := flag.Int("fps", 30, "Frames per second (terminal only)")
	frames := flag.Int("frames", 0, "Stop after this many frames, 0 runs until the match ends (terminal only)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig := loadConfig(ctx, logger, *configPath)

	if *speed != "" {
		level, err := config.ParseSpeedLevel(*speed)
		if err != nil {
			logger.Error(ctx, "Invalid speed flag", err, "speed", *speed)
			os.Exit(1)
		}
		gameConfig.Rules.Speed = level
	}
	if *width > 0 {
		gameConfig.Display.Width = *width
	}
	if *height > 0 {
		gameConfig.Display.Height = *height
	}
	if *fullscreen {
		gameConfig.Display.Fullscreen = true
	}
	if err := gameConfig.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}

	game := engine.NewGame(gameConfig)
	game.SetLogger(logger)
	subscribeEvents(game, logger)

	opponent, err := ai.ParseBehavior(*behavior)
	if err != nil {
		logger.Error(ctx, "Invalid behavior flag", err, "behavior", *behavior)
		os.Exit(1)
	}

	switch *renderer {
	case "terminal":
		c, r := terminalSize(*cols, *rows, stdoutSize)
		runTerminal(game, logger, opponent, c, r, *fps, *frames)
	case "engo":
		fallthrough
	default:
		var player2 *ai.Autopilot
		if *cpu {
			player2 = ai.NewAutopilot(court.Right, ai.WithBehavior(opponent))
		}
		engorender.Run(game, logger, player2)
	}
}

// loadConfig reads the configuration file, falling back to the defaults when
// it does not exist, and applies environment overrides.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) *config.GameConfig {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}
	return gameConfig
}

// Fallback terminal size when stdout is not a terminal
const (
	defaultTermWidth  = 80
	defaultTermHeight = 24
)

func stdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// terminalSize returns the court size in cells. Positive flag values win;
// the rest is fitted to the terminal, or to 80x24 when its size is unknown.
func terminalSize(cols, rows int, size func() (int, int, error)) (int, int) {
	width, height, err := size()
	if err != nil || width <= 0 || height <= 0 {
		width, height = defaultTermWidth, defaultTermHeight
	}
	fitCols, fitRows := render.FitTerminal(width, height)
	if cols <= 0 {
		cols = fitCols
	}
	if rows <= 0 {
		rows = fitRows
	}
	return cols, rows
}

// subscribeEvents logs scoring events
func subscribeEvents(game *engine.Game, logger *logging.Logger) {
	logScore := func(e event.Event) {
		if score, ok := e.(*event.ScoreEvent); ok {
			logger.Info(game.Context(), string(score.GetType()),
				"player", score.Player,
				"player1_score", score.Player1Score,
				"player2_score", score.Player2Score,
			)
		}
	}
	game.EventBus.Subscribe(event.PointScored, logScore)
	game.EventBus.Subscribe(event.MatchWon, logScore)
}

// runTerminal plays a computer-vs-computer match drawn as text
func runTerminal(game *engine.Game, logger *logging.Logger, behavior ai.Behavior, cols, rows, fps, frames int) {
	fps = max(fps, 1)
	dt := 1.0 / float64(fps)

	term := render.NewTerminalRenderer(cols, rows)
	players := [2]*ai.Autopilot{
		ai.NewAutopilot(court.Left, ai.WithMistakes(0.05, uint64(time.Now().UnixNano()))),
		ai.NewAutopilot(court.Right, ai.WithBehavior(behavior)),
	}
	viewport := engine.Viewport{
		Width:  float64(game.Config.Display.Width),
		Height: float64(game.Config.Display.Height),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	game.Start()
	frame := game.Frame()
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-sigChan:
			logger.Info(game.Context(), "Interrupted, stopping match")
			return
		case <-ticker.C:
		}

		var in engine.Input
		for _, p := range players {
			in.Players[p.Side()] = p.Decide(frame)
		}
		frame = game.Step(dt, in, viewport)
		term.Draw(frame)

		if frame.GameOver && frames <= 0 {
			break
		}
	}

	logger.Info(game.Context(), "Match finished",
		"ticks", frame.Tick,
		"player1_score", frame.Player1Score,
		"player2_score", frame.Player2Score,
		"winner", frame.Winner,
	)
}

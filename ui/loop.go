// Package ui hosts the snake engine in a raylib window.
package ui

import (
	"context"
	"time"

	"roboshep/autopilot"
	"roboshep/config"
	"roboshep/game"
	"roboshep/game/manager"
	"roboshep/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	Config *config.Config
	Keeper *manager.ScoreKeeper
	Logger *zap.Logger
}

var headingKeys = []struct {
	key     int32
	heading types.Heading
}{
	{rl.KeyUp, types.Up}, {rl.KeyW, types.Up},
	{rl.KeyDown, types.Down}, {rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left}, {rl.KeyA, types.Left},
	{rl.KeyRight, types.Right}, {rl.KeyD, types.Right},
}

// Run opens the window and plays until it is closed, Q is pressed or ctx is
// cancelled. The engine advances on a fixed interval independent of the
// frame rate.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	logger := opts.Logger
	keeper := opts.Keeper

	engine := game.New(
		game.WithGrid(cfg.Game.Width, cfg.Game.Height),
		game.WithRand(game.NewRand(cfg.Game.Seed)),
	)
	renderer := NewRenderer(engine.Grid(), cfg.Game.CellSize)

	w, h := renderer.WindowSize()
	rl.InitWindow(w, h, "RoboShep Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	session := uuid.NewString()
	pilot := cfg.Game.Autopilot
	interval := cfg.TickInterval()
	started := time.Now()
	lastUpdate := started
	logger.Info("Snake window opened", zap.String("session", session), zap.Bool("autopilot", pilot))

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		for _, k := range headingKeys {
			if rl.IsKeyPressed(k.key) {
				engine.SetHeading(k.heading)
			}
		}
		if rl.IsKeyPressed(rl.KeyP) {
			pilot = !pilot
		}

		if engine.State().Over() {
			if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
				engine.Reset()
				started = time.Now()
				lastUpdate = started
			}
		} else if time.Since(lastUpdate) >= interval {
			if pilot {
				engine.SetHeading(autopilot.Next(engine.State()))
			}
			s := engine.Tick()
			lastUpdate = time.Now()

			if ev := engine.LastEvent(); ev == game.EventCrashed || ev == game.EventWon {
				record := s.Record(session, started, lastUpdate)
				logger.Info("Game over",
					zap.String("session", session),
					zap.Int("score", record.Score),
					zap.String("cause", record.Cause),
					zap.Int("ticks", record.Ticks))
				if err := keeper.Add(ctx, record); err != nil {
					logger.Warn("Score not persisted", zap.Error(err))
				}
			}
		}

		renderer.Draw(engine.State(), keeper.Summary(), keeper.Records(), pilot)
	}

	logger.Info("Snake window closed", zap.String("session", session))
	return nil
}

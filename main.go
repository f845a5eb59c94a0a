package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"roboshep/config"
	"roboshep/content"
	"roboshep/game/manager"
	"roboshep/logging"
	"roboshep/store"
	"roboshep/tui"
	"roboshep/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roboshep",
		Short: "RoboShep OS - an interactive terminal portfolio",
		Long: `roboshep is a terminal portfolio with a command terminal, a snake game
and a music player.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", configPath, err)
			}
			logger, err = logging.New(cfg.Logging, verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runPortfolio,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSnakeCmd(), newTermCmd(), newScoresCmd())
	return root
}

func newSnakeCmd() *cobra.Command {
	var pilot bool
	cmd := &cobra.Command{
		Use:   "snake",
		Short: "Play snake in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("autopilot") {
				cfg.Game.Autopilot = pilot
			}
			keeper, closeStore, err := openKeeper(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()
			return ui.Run(cmd.Context(), ui.Options{Config: cfg, Keeper: keeper, Logger: logger})
		},
	}
	cmd.Flags().BoolVar(&pilot, "autopilot", false, "Let the computer steer")
	return cmd
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	c, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}
	keeper, closeStore, err := openKeeper(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	return tui.Run(cmd.Context(), tui.Options{
		Config:  cfg,
		Content: c,
		Keeper:  keeper,
		Logger:  logger,
	})
}

// openKeeper attaches the score database when one is configured. The
// returned func closes it.
func openKeeper(ctx context.Context) (*manager.ScoreKeeper, func(), error) {
	if cfg.Scores.DatabasePath == "" {
		return manager.NewScoreKeeper(nil), func() {}, nil
	}

	s, err := store.Open(cfg.Scores.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	keeper := manager.NewScoreKeeper(s)
	if err := keeper.Load(ctx); err != nil {
		logger.Warn("Starting without stored high score", zap.Error(err))
	}
	closeStore := func() {
		if err := s.Close(); err != nil {
			logger.Warn("Failed to close score database", zap.Error(err))
		}
	}
	return keeper, closeStore, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

package tui

import (
	"context"
	"errors"
	"fmt"

	"roboshep/content"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run starts the program and, when configured, the content watcher. It
// returns once the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})

	if path := m.cfg.Content.Path; m.cfg.Content.Watch && path != "" {
		w := content.NewWatcher(path, m.logger, func(c *content.Content) {
			p.Send(contentMsg{content: c})
		})
		g.Go(func() error {
			return w.Run(gctx)
		})
	}

	m.logger.Info("TUI started", zap.Bool("watch", m.cfg.Content.Watch))
	return g.Wait()
}

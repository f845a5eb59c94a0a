package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roboshep/autopilot"
	"roboshep/game"
	"roboshep/game/manager"
	"roboshep/game/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// snakeTickMsg drives one engine step. The id ties it to the popup instance
// that scheduled it so ticks from a closed popup are dropped.
type snakeTickMsg struct {
	id int
}

type scoreSavedMsg struct {
	record manager.Record
	err    error
}

// snakeModel is the game popup. Each open gets a new engine.
type snakeModel struct {
	id        int
	engine    *game.Engine
	interval  time.Duration
	autopilot bool
	session   string
	started   time.Time
	keeper    *manager.ScoreKeeper
	logger    *zap.Logger
}

func newSnakeModel(id int, engine *game.Engine, interval time.Duration, pilot bool, keeper *manager.ScoreKeeper, logger *zap.Logger) snakeModel {
	m := snakeModel{
		id:        id,
		engine:    engine,
		interval:  interval,
		autopilot: pilot,
		session:   uuid.NewString(),
		started:   time.Now(),
		keeper:    keeper,
		logger:    logger,
	}
	logger.Info("Snake session started",
		zap.String("session", m.session),
		zap.Bool("autopilot", pilot))
	return m
}

func (m snakeModel) Init() tea.Cmd {
	return m.tick()
}

func (m snakeModel) tick() tea.Cmd {
	id := m.id
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return snakeTickMsg{id: id}
	})
}

func (m snakeModel) Update(msg tea.Msg) (snakeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case snakeTickMsg:
		if msg.id != m.id || m.engine.State().Over() {
			return m, nil
		}
		return m.step()

	case tea.KeyMsg:
		key := msg.String()
		if h, ok := types.HeadingFromKey(key); ok {
			m.engine.SetHeading(h)
			return m, nil
		}
		switch key {
		case "p":
			m.autopilot = !m.autopilot
		case "r", "enter":
			if !m.engine.State().Over() {
				return m, nil
			}
			m.engine.Reset()
			m.started = time.Now()
			m.logger.Debug("Snake restarted", zap.String("session", m.session))
			return m, m.tick()
		}
	}
	return m, nil
}

func (m snakeModel) step() (snakeModel, tea.Cmd) {
	if m.autopilot {
		m.engine.SetHeading(autopilot.Next(m.engine.State()))
	}
	s := m.engine.Tick()

	switch m.engine.LastEvent() {
	case game.EventAte:
		m.logger.Debug("Food eaten",
			zap.String("session", m.session),
			zap.Int("score", s.Score),
			zap.Stringer("food", s.Food))
	case game.EventCrashed, game.EventWon:
		record := s.Record(m.session, m.started, time.Now())
		m.logger.Info("Game over",
			zap.String("session", m.session),
			zap.Int("score", record.Score),
			zap.String("cause", record.Cause),
			zap.Int("ticks", record.Ticks),
			zap.Duration("duration", record.Duration()))
		return m, m.save(record)
	}
	return m, m.tick()
}

func (m snakeModel) save(record manager.Record) tea.Cmd {
	keeper := m.keeper
	if keeper == nil {
		return nil
	}
	return func() tea.Msg {
		err := keeper.Add(context.Background(), record)
		return scoreSavedMsg{record: record, err: err}
	}
}

func (m snakeModel) View() string {
	s := m.engine.State()

	occupied := make(map[types.Point]bool, s.Len())
	for _, p := range s.Snake {
		occupied[p] = true
	}

	var board strings.Builder
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			switch {
			case p == s.Head():
				board.WriteString(headStyle.Render("██"))
			case occupied[p]:
				board.WriteString(snakeStyle.Render("██"))
			case p == s.Food && !s.Won:
				board.WriteString(appleStyle.Render("██"))
			default:
				board.WriteString("  ")
			}
		}
		if y < s.Grid.Height-1 {
			board.WriteByte('\n')
		}
	}

	high := s.Score
	if m.keeper != nil {
		high = max(high, m.keeper.AllTimeHigh())
	}

	var b strings.Builder
	b.WriteString(popupTitleStyle.Render("snake.exe"))
	b.WriteByte('\n')
	b.WriteString(boardStyle.Render(board.String()))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Score: %d   High: %d", s.Score, high))
	if m.autopilot {
		b.WriteString(mutedStyle.Render("   [autopilot]"))
	}
	b.WriteByte('\n')

	switch {
	case s.Won:
		b.WriteString(titleStyle.Render("Board cleared!"))
		b.WriteString(mutedStyle.Render("  r to play again"))
	case s.Over():
		b.WriteString(errorStyle.Render("Game Over!"))
		b.WriteString(mutedStyle.Render("  r to play again"))
	default:
		b.WriteString(mutedStyle.Render("arrows/wasd to steer, p autopilot, esc close"))
	}
	return b.String()
}

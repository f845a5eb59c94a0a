// Package tui is the terminal host for the portfolio: a boot screen, the
// portfolio pages, and popups for the command terminal, the snake game and
// the music player.
package tui

import (
	"errors"
	"slices"
	"strings"
	"time"

	"roboshep/config"
	"roboshep/content"
	"roboshep/game"
	"roboshep/game/manager"
	"roboshep/playlist"
	"roboshep/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	bootText  = "Initializing RoboShep OS..."
	readyText = "System Ready."
)

type popup int

const (
	popupNone popup = iota
	popupTerminal
	popupSnake
	popupMusic
)

func (p popup) String() string {
	switch p {
	case popupTerminal:
		return "terminal"
	case popupSnake:
		return "snake"
	case popupMusic:
		return "music"
	default:
		return "none"
	}
}

type readyMsg struct{}
type loadedMsg struct{}

// contentMsg carries reloaded portfolio content from the watcher.
type contentMsg struct {
	content *content.Content
}

// Options wires a Model to its collaborators.
type Options struct {
	Config  *config.Config
	Content *content.Content
	Keeper  *manager.ScoreKeeper
	Logger  *zap.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg     *config.Config
	content *content.Content
	keeper  *manager.ScoreKeeper
	logger  *zap.Logger
	player  *playlist.Player

	loading     bool
	loadingText string

	page  page
	popup popup
	snake snakeModel
	term  terminalModel
	games int

	about  string
	status string
	width  int
	height int
}

func New(opts Options) (Model, error) {
	if opts.Config == nil {
		return Model{}, errors.New("tui: config is required")
	}
	if opts.Content == nil {
		opts.Content = content.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Keeper == nil {
		opts.Keeper = manager.NewScoreKeeper(nil)
	}

	player, err := playlist.New(opts.Content.Tracks)
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:         opts.Config,
		content:     opts.Content,
		keeper:      opts.Keeper,
		logger:      opts.Logger,
		player:      player,
		loading:     true,
		loadingText: bootText,
		width:       80,
		height:      24,
		about:       renderMarkdown(opts.Content.About, 80),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.cfg.LoadingDelay(), func(time.Time) tea.Msg { return readyMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.about = renderMarkdown(m.content.About, m.width)
		return m, nil

	case readyMsg:
		m.loadingText = readyText
		return m, tea.Tick(m.cfg.LoadingDelay(), func(time.Time) tea.Msg { return loadedMsg{} })

	case loadedMsg:
		m.loading = false
		m.logger.Info("Portfolio ready")
		return m, nil

	case contentMsg:
		return m.applyContent(msg.content), nil

	case scoreSavedMsg:
		if msg.err != nil {
			m.logger.Warn("Score not persisted", zap.String("session", msg.record.Session), zap.Error(msg.err))
			m.status = "score kept in memory only"
		}
		return m, nil

	case snakeTickMsg:
		if m.popup != popupSnake {
			return m, nil
		}
		var cmd tea.Cmd
		m.snake, cmd = m.snake.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.popup == popupTerminal {
		var cmd tea.Cmd
		m.term, cmd = m.term.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.logger.Info("Quit requested")
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	if m.popup != popupNone {
		if msg.Type == tea.KeyEsc {
			m.logger.Debug("Popup closed", zap.Stringer("popup", m.popup))
			m.popup = popupNone
			return m, nil
		}
		var cmd tea.Cmd
		switch m.popup {
		case popupTerminal:
			m.term, cmd = m.term.Update(msg)
		case popupSnake:
			m.snake, cmd = m.snake.Update(msg)
		case popupMusic:
			updateMusic(m.player, msg, m.logger)
		}
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.page = (m.page + 1) % pageCount
	case "shift+tab", "left", "h":
		m.page = (m.page + pageCount - 1) % pageCount
	case "1", "2", "3", "4":
		m.page = page(msg.String()[0] - '1')
	case "t":
		return m.openTerminal()
	case "g":
		return m.openSnake()
	case "m":
		m.popup = popupMusic
		m.logger.Debug("Popup opened", zap.Stringer("popup", m.popup))
	}
	return m, nil
}

func (m Model) openTerminal() (tea.Model, tea.Cmd) {
	interp := terminal.New(m.content.TerminalOptions()...)
	m.term = newTerminalModel(interp, max(min(m.width-6, 72), 30), max(m.height-10, 6), m.logger)
	m.popup = popupTerminal
	m.logger.Debug("Popup opened", zap.Stringer("popup", m.popup))
	return m, m.term.Init()
}

func (m Model) openSnake() (tea.Model, tea.Cmd) {
	m.games++
	engine := game.New(
		game.WithGrid(m.cfg.Game.Width, m.cfg.Game.Height),
		game.WithRand(game.NewRand(m.cfg.Game.Seed)),
	)
	m.snake = newSnakeModel(m.games, engine, m.cfg.TickInterval(), m.cfg.Game.Autopilot, m.keeper, m.logger)
	m.popup = popupSnake
	return m, m.snake.Init()
}

// applyContent swaps in reloaded content. The player is rebuilt only when the
// track list changed, so playback survives edits to other sections.
func (m Model) applyContent(c *content.Content) Model {
	m.content = c
	m.about = renderMarkdown(c.About, m.width)
	if !slices.Equal(c.Tracks, m.player.Tracks()) {
		player, err := playlist.New(c.Tracks)
		if err != nil {
			m.logger.Warn("Reloaded playlist rejected", zap.Error(err))
			return m
		}
		m.player = player
	}
	m.logger.Info("Content applied", zap.String("name", c.Name))
	return m
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			titleStyle.Render(m.loadingText))
	}

	if m.popup != popupNone {
		var body string
		switch m.popup {
		case popupTerminal:
			body = m.term.View()
		case popupSnake:
			body = m.snake.View()
		case popupMusic:
			body = musicView(m.player)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			popupStyle.Render(body))
	}

	var body string
	switch m.page {
	case pageAbout:
		body = titleStyle.Render("About Me") + "\n" + m.about
	case pageSkills:
		body = skillsPage(m.content, m.width-4)
	case pageProjects:
		body = projectsPage(m.content)
	default:
		body = homePage(m.content)
	}

	var b strings.Builder
	b.WriteString(renderTabs(m.page))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	footer := "t terminal  g snake  m music  tab next page  q quit"
	if m.player.Playing() {
		footer = "♪ " + m.player.Current().Title + "   " + footer
	}
	if m.status != "" {
		footer = m.status + "   " + footer
	}
	b.WriteString(mutedStyle.Render(footer))
	return b.String()
}

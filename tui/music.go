package tui

import (
	"fmt"
	"strconv"
	"strings"

	"roboshep/playlist"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// updateMusic applies a key to the shared player. The player outlives the
// popup, so closing and reopening keeps the track and play state.
func updateMusic(player *playlist.Player, msg tea.KeyMsg, logger *zap.Logger) {
	var track playlist.Track
	switch key := msg.String(); key {
	case " ", "enter":
		playing := player.Toggle()
		logger.Debug("Playback toggled", zap.Bool("playing", playing))
		return
	case "n", "right", "l":
		track = player.Next()
	case "b", "left", "h":
		track = player.Prev()
	case "e":
		track = player.Ended()
	default:
		i, err := strconv.Atoi(key)
		if err != nil {
			return
		}
		t, err := player.Select(i - 1)
		if err != nil {
			logger.Debug("Track selection ignored", zap.Error(err))
			return
		}
		track = t
	}
	logger.Debug("Track changed", zap.Int("id", track.ID), zap.String("title", track.Title))
}

func musicView(player *playlist.Player) string {
	var b strings.Builder
	b.WriteString(popupTitleStyle.Render("music"))
	b.WriteByte('\n')

	current := player.Index()
	for i, t := range player.Tracks() {
		line := fmt.Sprintf("%d. %s", i+1, t.Title)
		if i == current {
			marker := "⏸"
			if player.Playing() {
				marker = "▶"
			}
			b.WriteString(titleStyle.Render(marker + " " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}

	state := "Paused"
	if player.Playing() {
		state = "Playing"
	}
	b.WriteString(subtitleStyle.Render(state + ": " + player.Current().Title))
	b.WriteByte('\n')
	b.WriteString(mutedStyle.Render("space play/pause, n next, b prev, 1-9 pick, esc close"))
	return b.String()
}

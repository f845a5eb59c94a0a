package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"roboshep/game/manager"
	"roboshep/store"
	"roboshep/terminal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunTerminal(t *testing.T) {
	in := strings.NewReader("help\n\n  Echo  Hello World \nfoo\n")
	var out bytes.Buffer

	require.NoError(t, runTerminal(in, &out, terminal.New(), zap.NewNop()))

	texts := terminal.DefaultTexts()
	got := out.String()
	assert.True(t, strings.HasPrefix(got, texts.Welcome+"\n"))
	assert.Contains(t, got, texts.Help)
	assert.Contains(t, got, terminal.Prompt+" Hello World\n")
	assert.Contains(t, got, "Command not found: foo")
	assert.Equal(t, 5, strings.Count(got, terminal.Prompt))
}

func TestRunTerminalClear(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runTerminal(strings.NewReader("clear\n"), &out, terminal.New(), zap.NewNop()))
	assert.Contains(t, out.String(), clearScreen)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roboshep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTermCommand(t *testing.T) {
	path := writeConfig(t, "logging:\n  file: \"\"\n")
	out, err := execute(t, "skills\n", "term", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, terminal.DefaultTexts().Skills)
}

func TestTermCommandUsesContentFile(t *testing.T) {
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(contentPath, []byte("terminal:\n  about: \"Custom bio.\"\n"), 0644))
	path := writeConfig(t, "logging:\n  file: \"\"\ncontent:\n  path: "+contentPath+"\n")

	out, err := execute(t, "about\n", "term", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Custom bio.")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	path := writeConfig(t, "logging:\n  file: \"\"\ngame:\n  width: 5\n")
	_, err := execute(t, "", "term", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestScoresCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	start := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	for i, score := range []int{30, 120, 70} {
		require.NoError(t, s.SaveRecord(context.Background(), manager.Record{
			Session:   "s",
			Score:     score,
			Length:    2 + score/10,
			Ticks:     50 + i,
			Cause:     "wall",
			StartTime: start,
			EndTime:   start.Add(5 * time.Second),
		}))
	}
	require.NoError(t, s.Close())

	path := writeConfig(t, "logging:\n  file: \"\"\nscores:\n  database_path: "+dbPath+"\n")
	out, err := execute(t, "", "scores", "--config", path, "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "70")
	assert.NotContains(t, out, "30 ")
	assert.Less(t, strings.Index(out, "120"), strings.Index(out, "70"))
}

func TestScoresCommandWithoutDatabase(t *testing.T) {
	path := writeConfig(t, "logging:\n  file: \"\"\n")
	_, err := execute(t, "", "scores", "--config", path)
	assert.Error(t, err)
}

func TestRenderScoresEmpty(t *testing.T) {
	assert.Equal(t, "No games recorded yet.", renderScores(nil))
}

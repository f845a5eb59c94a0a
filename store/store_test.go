package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"roboshep/game/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHighScoreEmpty(t *testing.T) {
	s := openTemp(t)
	high, err := s.HighScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestSaveAndTop(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	start := time.UnixMilli(1_700_000_000_000)

	records := []manager.Record{
		{Session: "a", Score: 20, Length: 4, Ticks: 90, Cause: "wall", StartTime: start, EndTime: start.Add(time.Minute)},
		{Session: "b", Score: 50, Length: 7, Ticks: 300, Cause: "self", StartTime: start, EndTime: start.Add(2 * time.Minute)},
		{Session: "c", Score: 20, Length: 4, Ticks: 80, Cause: "won", Won: true, StartTime: start, EndTime: start.Add(3 * time.Minute)},
	}
	for _, r := range records {
		require.NoError(t, s.SaveRecord(ctx, r))
	}

	high, err := s.HighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, high)

	top, err := s.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Session)
	assert.Equal(t, "a", top[1].Session)
	assert.True(t, top[0].EndTime.Equal(start.Add(2*time.Minute)))

	all, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[2].Won)
}

func TestStoreBacksScoreKeeper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, manager.NewScoreKeeper(s).Add(ctx, manager.Record{Session: "x", Score: 70}))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	sk := manager.NewScoreKeeper(reopened)
	require.NoError(t, sk.Load(ctx))
	assert.Equal(t, 70, sk.AllTimeHigh())
}

package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	saved []Record
	high  int
	err   error
}

func (m *memStore) SaveRecord(_ context.Context, r Record) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, r)
	return nil
}

func (m *memStore) HighScore(context.Context) (int, error) {
	return m.high, m.err
}

func TestScoreKeeperSummary(t *testing.T) {
	sk := NewScoreKeeper(nil)
	ctx := context.Background()

	assert.Equal(t, Summary{}, sk.Summary())

	for _, score := range []int{30, 10, 0, 40} {
		require.NoError(t, sk.Add(ctx, Record{Score: score}))
	}

	s := sk.Summary()
	assert.Equal(t, 4, s.Games)
	assert.Equal(t, 40, s.SessionHigh)
	assert.Equal(t, 40, s.AllTimeHigh)
	assert.InDelta(t, 20.0, s.Average, 1e-9)
	assert.InDelta(t, 20.0, s.Median, 1e-9)

	require.NoError(t, sk.Add(ctx, Record{Score: 50}))
	assert.InDelta(t, 30.0, sk.Summary().Median, 1e-9)
}

func TestScoreKeeperLoadsAllTimeHigh(t *testing.T) {
	store := &memStore{high: 120}
	sk := NewScoreKeeper(store)
	ctx := context.Background()

	require.NoError(t, sk.Load(ctx))
	require.NoError(t, sk.Add(ctx, Record{Score: 30}))

	s := sk.Summary()
	assert.Equal(t, 30, s.SessionHigh)
	assert.Equal(t, 120, s.AllTimeHigh)
	assert.Len(t, store.saved, 1)
}

func TestScoreKeeperKeepsRecordWhenStoreFails(t *testing.T) {
	sk := NewScoreKeeper(&memStore{err: errors.New("disk full")})
	ctx := context.Background()

	assert.Error(t, sk.Load(ctx))
	assert.Error(t, sk.Add(ctx, Record{Score: 10}))
	assert.Len(t, sk.Records(), 1)
	assert.Equal(t, 10, sk.AllTimeHigh())
}

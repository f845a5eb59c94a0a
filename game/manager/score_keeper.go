package manager

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Record describes one finished game.
type Record struct {
	Session   string    `json:"session"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Ticks     int       `json:"ticks"`
	Cause     string    `json:"cause"`
	Won       bool      `json:"won"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (r Record) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// RecordStore persists finished games across runs.
type RecordStore interface {
	SaveRecord(ctx context.Context, r Record) error
	HighScore(ctx context.Context) (int, error)
}

// Summary aggregates the games recorded in this process.
type Summary struct {
	Games       int
	SessionHigh int
	AllTimeHigh int
	Average     float64
	Median      float64
}

// ScoreKeeper collects finished games and tracks high scores. The store is
// optional; without one, history lives only in memory.
type ScoreKeeper struct {
	mu          sync.RWMutex
	store       RecordStore
	records     []Record
	sessionHigh int
	allTimeHigh int
}

func NewScoreKeeper(store RecordStore) *ScoreKeeper {
	return &ScoreKeeper{
		store:   store,
		records: make([]Record, 0),
	}
}

// Load seeds the all-time high score from the store.
func (sk *ScoreKeeper) Load(ctx context.Context) error {
	if sk.store == nil {
		return nil
	}
	high, err := sk.store.HighScore(ctx)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	sk.mu.Lock()
	defer sk.mu.Unlock()
	if high > sk.allTimeHigh {
		sk.allTimeHigh = high
	}
	return nil
}

// Add records a finished game. The record is kept in memory even when the
// store write fails.
func (sk *ScoreKeeper) Add(ctx context.Context, r Record) error {
	sk.mu.Lock()
	sk.records = append(sk.records, r)
	if r.Score > sk.sessionHigh {
		sk.sessionHigh = r.Score
	}
	if r.Score > sk.allTimeHigh {
		sk.allTimeHigh = r.Score
	}
	sk.mu.Unlock()

	if sk.store == nil {
		return nil
	}
	if err := sk.store.SaveRecord(ctx, r); err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}
	return nil
}

func (sk *ScoreKeeper) Records() []Record {
	sk.mu.RLock()
	defer sk.mu.RUnlock()
	out := make([]Record, len(sk.records))
	copy(out, sk.records)
	return out
}

func (sk *ScoreKeeper) AllTimeHigh() int {
	sk.mu.RLock()
	defer sk.mu.RUnlock()
	return sk.allTimeHigh
}

func (sk *ScoreKeeper) Summary() Summary {
	sk.mu.RLock()
	defer sk.mu.RUnlock()

	s := Summary{
		Games:       len(sk.records),
		SessionHigh: sk.sessionHigh,
		AllTimeHigh: sk.allTimeHigh,
	}
	if len(sk.records) == 0 {
		return s
	}

	scores := make([]float64, len(sk.records))
	var total float64
	for i, r := range sk.records {
		scores[i] = float64(r.Score)
		total += scores[i]
	}
	s.Average = total / float64(len(scores))

	sort.Float64s(scores)
	if len(scores)%2 == 0 {
		s.Median = (scores[len(scores)/2-1] + scores[len(scores)/2]) / 2
	} else {
		s.Median = scores[len(scores)/2]
	}
	return s
}

package game

import (
	"testing"

	"roboshep/game/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays vals in order, wrapping around.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func pt(x, y int) types.Point {
	return types.Point{X: x, Y: y}
}

func initialState() State {
	return State{
		Grid:    types.Grid{Width: 20, Height: 20},
		Snake:   []types.Point{pt(10, 15), pt(10, 16)},
		Heading: types.Up,
		Food:    pt(10, 5),
		Status:  types.Running,
	}
}

func TestNewStartsAtCanonicalLayout(t *testing.T) {
	e := New(WithRand(&scriptedRand{vals: []int{0}}))
	if diff := cmp.Diff(initialState(), e.State()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, EventNone, e.LastEvent())
}

func TestFourTicksUp(t *testing.T) {
	e := New(WithRand(&scriptedRand{vals: []int{0}}))
	var s State
	for i := 0; i < 4; i++ {
		s = e.Tick()
	}
	assert.Equal(t, pt(10, 11), s.Head())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, types.Running, s.Status)
	assert.Equal(t, 4, s.Ticks)
	assert.Equal(t, EventMoved, e.LastEvent())
}

func TestStraightLineUntilWall(t *testing.T) {
	// food respawns at (0,0), off the snake's column
	e := New(WithRand(&scriptedRand{vals: []int{0}}))

	for i := 1; i <= 15; i++ {
		s := e.Tick()
		require.Equal(t, types.Running, s.Status, "tick %d", i)
		require.Equal(t, pt(10, 15-i), s.Head(), "tick %d", i)
		if i == 10 {
			assert.Equal(t, EventAte, e.LastEvent())
			assert.Equal(t, 10, s.Score)
			assert.Equal(t, pt(0, 0), s.Food)
		}
	}

	s := e.Tick()
	assert.Equal(t, types.Over, s.Status)
	assert.Equal(t, types.WallCollision, s.Cause)
	assert.Equal(t, EventCrashed, e.LastEvent())
	assert.Equal(t, pt(10, 0), s.Head(), "snake must not enter the fatal cell")
	assert.Equal(t, 3, s.Len())

	frozen := s
	for i := 0; i < 5; i++ {
		e.SetHeading(types.Left)
		if diff := cmp.Diff(frozen, e.Tick()); diff != "" {
			t.Fatalf("tick after game over changed state (-want +got):\n%s", diff)
		}
		assert.Equal(t, EventNone, e.LastEvent())
	}
}

func TestSetHeadingIgnoresReversal(t *testing.T) {
	e := New(WithRand(&scriptedRand{vals: []int{0}}))
	e.SetHeading(types.Down)
	assert.Equal(t, types.Up, e.Pending())

	s := e.Tick()
	assert.Equal(t, pt(10, 14), s.Head())
	assert.Equal(t, types.Up, s.Heading)
}

func TestSetHeadingLatestValidRequestWins(t *testing.T) {
	tests := []struct {
		name     string
		requests []types.Heading
		wantHead types.Point
	}{
		{"left then reverse", []types.Heading{types.Left, types.Down}, pt(9, 15)},
		{"left then right", []types.Heading{types.Left, types.Right}, pt(11, 15)},
		{"same heading", []types.Heading{types.Up}, pt(10, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithRand(&scriptedRand{vals: []int{0}}))
			for _, h := range tt.requests {
				e.SetHeading(h)
			}
			assert.Equal(t, tt.wantHead, e.Tick().Head())
		})
	}
}

func TestReversalGuardUsesCommittedHeading(t *testing.T) {
	e := New(WithRand(&scriptedRand{vals: []int{0}}))
	e.SetHeading(types.Left)
	e.Tick() // commits Left

	e.SetHeading(types.Right)
	assert.Equal(t, types.Left, e.Pending())
	e.SetHeading(types.Down)
	assert.Equal(t, pt(9, 16), e.Tick().Head())
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name  string
		snake []types.Point
	}{
		{"body", []types.Point{pt(2, 2), pt(3, 2), pt(3, 3), pt(2, 3), pt(1, 3)}},
		{"tail", []types.Point{pt(2, 2), pt(3, 2), pt(3, 3), pt(2, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(
				WithRand(&scriptedRand{vals: []int{0}}),
				WithLayout(Layout{Snake: tt.snake, Heading: types.Left, Food: pt(9, 9)}),
			)
			e.SetHeading(types.Down)
			s := e.Tick()
			assert.Equal(t, types.Over, s.Status)
			assert.Equal(t, types.SelfCollision, s.Cause)
			assert.Equal(t, tt.snake, s.Snake)
			assert.Equal(t, 0, s.Ticks)
		})
	}
}

func TestFoodNeverSpawnsOnSnake(t *testing.T) {
	// (0,0) and (1,0) are drawn first and both belong to the grown snake.
	rng := &scriptedRand{vals: []int{0, 0, 1, 0, 3, 0}}
	e := New(
		WithGrid(4, 1),
		WithRand(rng),
		WithLayout(Layout{Snake: []types.Point{pt(1, 0), pt(2, 0)}, Heading: types.Left, Food: pt(0, 0)}),
	)

	s := e.Tick()
	assert.Equal(t, EventAte, e.LastEvent())
	assert.Equal(t, []types.Point{pt(0, 0), pt(1, 0), pt(2, 0)}, s.Snake)
	assert.Equal(t, pt(3, 0), s.Food)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 6, rng.i)
}

func TestFoodFallsBackToFreeCellScan(t *testing.T) {
	// The source only ever yields 0, so sampling keeps hitting the head.
	e := New(
		WithGrid(4, 1),
		WithRand(&scriptedRand{vals: []int{0}}),
		WithLayout(Layout{Snake: []types.Point{pt(1, 0), pt(2, 0)}, Heading: types.Left, Food: pt(0, 0)}),
	)

	s := e.Tick()
	assert.Equal(t, types.Running, s.Status)
	assert.Equal(t, pt(3, 0), s.Food)
}

func TestFullBoardIsAWin(t *testing.T) {
	e := New(
		WithGrid(3, 1),
		WithRand(&scriptedRand{vals: []int{0, 1, 2}}),
		WithLayout(Layout{Snake: []types.Point{pt(1, 0), pt(2, 0)}, Heading: types.Left, Food: pt(0, 0)}),
	)

	s := e.Tick()
	assert.Equal(t, EventWon, e.LastEvent())
	assert.Equal(t, types.Over, s.Status)
	assert.True(t, s.Won)
	assert.Equal(t, types.NoCollision, s.Cause)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 10, s.Score)
}

func TestResetRestoresInitialState(t *testing.T) {
	e := New(WithRand(NewRand(7)))
	e.SetHeading(types.Left)
	for !e.State().Over() {
		e.Tick()
	}

	if diff := cmp.Diff(initialState(), e.Reset()); diff != "" {
		t.Errorf("reset state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.Up, e.Pending())
	assert.Equal(t, pt(10, 14), e.Tick().Head())
}

func TestLengthTracksFoodEaten(t *testing.T) {
	e := New(WithRand(NewRand(42)))
	steer := NewRand(99)
	eaten := 0

	for i := 0; i < 5000; i++ {
		if e.State().Over() {
			e.Reset()
			eaten = 0
		}
		e.SetHeading(types.Headings[steer.Intn(len(types.Headings))])
		s := e.Tick()

		if e.LastEvent() == EventAte {
			eaten++
		}
		require.Equal(t, 2+eaten, s.Len())
		require.Equal(t, eaten*types.FoodReward, s.Score)
		if !s.Won {
			for _, part := range s.Snake {
				require.NotEqual(t, s.Food, part, "food on snake at tick %d", i)
			}
		}
		seen := make(map[types.Point]bool, s.Len())
		for _, part := range s.Snake {
			require.False(t, seen[part], "duplicate cell %v", part)
			seen[part] = true
		}
	}
}

func TestStateIsACopy(t *testing.T) {
	e := New(WithRand(&scriptedRand{vals: []int{0}}))
	s := e.State()
	s.Snake[0] = pt(0, 0)
	assert.Equal(t, pt(10, 15), e.State().Head())
}

// Package game implements the snake simulation: a single snake on a bounded
// grid, advanced one cell per Tick by whoever owns the Engine.
package game

import (
	"time"

	"roboshep/game/entity"
	"roboshep/game/manager"
	"roboshep/game/types"

	"golang.org/x/exp/rand"
)

// Layout is the starting position the engine returns to on Reset.
type Layout struct {
	Snake   []types.Point
	Heading types.Heading
	Food    types.Point
}

// DefaultLayout returns the canonical start: a two-cell snake near the bottom
// heading up, with food straight ahead.
func DefaultLayout() Layout {
	return Layout{
		Snake:   []types.Point{{X: 10, Y: 15}, {X: 10, Y: 16}},
		Heading: types.Up,
		Food:    types.Point{X: 10, Y: 5},
	}
}

// Event describes what the most recent Tick did.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventAte
	EventCrashed
	EventWon
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventCrashed:
		return "crashed"
	case EventWon:
		return "won"
	default:
		return "none"
	}
}

// State is a snapshot of the game. It owns its Snake slice.
type State struct {
	Grid    types.Grid
	Snake   []types.Point // head first
	Heading types.Heading
	Food    types.Point
	Score   int
	Status  types.Status
	Won     bool                // board filled; Food is stale
	Cause   types.CollisionType // set when a crash ended the game
	Ticks   int                 // moves made since Reset
}

func (s State) Head() types.Point {
	return s.Snake[0]
}

func (s State) Len() int {
	return len(s.Snake)
}

// Over reports whether the game has ended.
func (s State) Over() bool {
	return s.Status == types.Over
}

// Engine owns the mutable game state. It is not safe for concurrent use;
// a host drives it from one goroutine.
type Engine struct {
	grid         types.Grid
	layout       Layout
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager

	snake   *entity.Snake
	heading types.Heading // committed, used by the running tick
	pending types.Heading // applied at the start of the next tick
	food    types.Point
	score   int
	status  types.Status
	won     bool
	cause   types.CollisionType
	ticks   int
	event   Event
}

type options struct {
	grid   types.Grid
	layout Layout
	rng    manager.Rand
}

// Option configures an Engine.
type Option func(*options)

// WithGrid overrides the 20x20 default grid.
func WithGrid(width, height int) Option {
	return func(o *options) {
		o.grid = types.Grid{Width: width, Height: height}
	}
}

// WithRand sets the random source used for food placement.
func WithRand(rng manager.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLayout overrides the starting snake, heading and food.
func WithLayout(layout Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// NewRand returns a food placement source. A zero seed draws one from the clock.
func NewRand(seed uint64) manager.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// New creates an engine already reset to its starting layout.
func New(opts ...Option) *Engine {
	o := options{
		grid:   types.Grid{Width: types.GridWidth, Height: types.GridHeight},
		layout: DefaultLayout(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(0)
	}

	collisionMgr := manager.NewCollisionManager(o.grid)
	e := &Engine{
		grid:         o.grid,
		layout:       o.layout,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(o.grid, o.rng, collisionMgr),
	}
	e.Reset()
	return e
}

// Reset discards the current game and reinstates the starting layout.
func (e *Engine) Reset() State {
	e.snake = entity.NewSnake(e.layout.Snake)
	e.heading = e.layout.Heading
	e.pending = e.layout.Heading
	e.food = e.layout.Food
	e.score = 0
	e.status = types.Running
	e.won = false
	e.cause = types.NoCollision
	e.ticks = 0
	e.event = EventNone
	return e.State()
}

// SetHeading queues h for the next tick unless it would reverse the committed
// heading, in which case the request is dropped.
func (e *Engine) SetHeading(h types.Heading) {
	if h == e.heading.Inverse() {
		return
	}
	e.pending = h
}

// Tick advances the game by one cell. Once the game is over Tick returns the
// frozen state until Reset.
func (e *Engine) Tick() State {
	if e.status == types.Over {
		e.event = EventNone
		return e.State()
	}

	e.heading = e.pending
	newHead := e.snake.GetHead().Add(e.heading.Delta())

	if collision := e.collisionMgr.CheckCollision(newHead, e.snake); collision != types.NoCollision {
		e.status = types.Over
		e.cause = collision
		e.event = EventCrashed
		return e.State()
	}

	e.ticks++
	e.snake.Move(newHead)

	if !e.collisionMgr.IsFoodCollision(newHead, e.food) {
		e.snake.RemoveTail()
		e.event = EventMoved
		return e.State()
	}

	e.score += types.FoodReward
	food, ok := e.foodMgr.GenerateFood(e.snake)
	if !ok {
		e.status = types.Over
		e.won = true
		e.event = EventWon
		return e.State()
	}
	e.food = food
	e.event = EventAte
	return e.State()
}

// State returns a snapshot of the current game.
func (e *Engine) State() State {
	return State{
		Grid:    e.grid,
		Snake:   e.snake.Cells(),
		Heading: e.heading,
		Food:    e.food,
		Score:   e.score,
		Status:  e.status,
		Won:     e.won,
		Cause:   e.cause,
		Ticks:   e.ticks,
	}
}

// Pending returns the heading the next tick will commit.
func (e *Engine) Pending() types.Heading {
	return e.pending
}

// LastEvent reports what the most recent Tick did.
func (e *Engine) LastEvent() Event {
	return e.event
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

// Record summarises a finished game for the score keeper.
func (s State) Record(session string, start, end time.Time) manager.Record {
	cause := s.Cause.String()
	if s.Won {
		cause = "won"
	}
	return manager.Record{
		Session:   session,
		Score:     s.Score,
		Length:    s.Len(),
		Ticks:     s.Ticks,
		Cause:     cause,
		Won:       s.Won,
		StartTime: start,
		EndTime:   end,
	}
}

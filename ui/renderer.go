package ui

import (
	"fmt"

	"roboshep/game"
	"roboshep/game/manager"
	"roboshep/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores  = 50  // games shown in the score graph
	statsWidth = 180 // stats panel to the right of the board
	fontSize   = 16
	lineHeight = 22
)

var (
	background = rl.Color{R: 0x1e, G: 0x1e, B: 0x1e, A: 255}
	panel      = rl.Color{R: 0x2a, G: 0x2a, B: 0x2a, A: 255}
	snakeColor = rl.Color{R: 0xa9, G: 0xdc, B: 0x76, A: 255}
	appleColor = rl.Color{R: 0xff, G: 0x61, B: 0x88, A: 255}
	cream      = rl.Color{R: 0xc6, G: 0xc1, B: 0xab, A: 255}
)

// Renderer draws a game state on a fixed canvas of grid cells with a stats
// panel beside it.
type Renderer struct {
	cellSize    int32
	boardWidth  int32
	boardHeight int32
}

func NewRenderer(grid types.Grid, cellSize int) *Renderer {
	return &Renderer{
		cellSize:    int32(cellSize),
		boardWidth:  int32(grid.Width * cellSize),
		boardHeight: int32(grid.Height * cellSize),
	}
}

// WindowSize is the window the renderer needs.
func (r *Renderer) WindowSize() (int32, int32) {
	return r.boardWidth + statsWidth, r.boardHeight
}

func (r *Renderer) Draw(s game.State, summary manager.Summary, records []manager.Record, pilot bool) {
	rl.BeginDrawing()
	rl.ClearBackground(background)

	if !s.Won {
		r.drawCell(s.Food, appleColor)
	}
	for _, p := range s.Snake {
		r.drawCell(p, snakeColor)
	}
	r.drawHeadMarker(s.Head(), s.Heading)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), 8, 8, fontSize+4, rl.White)

	if s.Over() {
		title := "Game Over!"
		if s.Won {
			title = "Board cleared!"
		}
		r.drawCentered(title, r.boardHeight/2-20, 30, appleColor)
		r.drawCentered("Press R to restart", r.boardHeight/2+20, fontSize, rl.White)
	}

	r.drawStatsPanel(summary, records, pilot)
	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize, r.cellSize-1, r.cellSize-1, color)
}

// drawHeadMarker points a small triangle in the direction of travel.
func (r *Renderer) drawHeadMarker(head types.Point, h types.Heading) {
	x := float32(int32(head.X) * r.cellSize)
	y := float32(int32(head.Y) * r.cellSize)
	size := float32(r.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch h {
	case types.Right:
		a, b, c = rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	default:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	}
	rl.DrawTriangle(a, b, c, background)
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (r.boardWidth-w)/2, y, size, color)
}

func (r *Renderer) drawStatsPanel(summary manager.Summary, records []manager.Record, pilot bool) {
	x := r.boardWidth + 10
	y := int32(10)

	rl.DrawRectangle(r.boardWidth, 0, statsWidth, r.boardHeight, panel)

	lines := []string{
		"High Scores:",
		fmt.Sprintf("  Session: %d", summary.SessionHigh),
		fmt.Sprintf("  All-Time: %d", summary.AllTimeHigh),
		"",
		fmt.Sprintf("Games: %d", summary.Games),
		fmt.Sprintf("Avg: %.1f", summary.Average),
		fmt.Sprintf("Median: %.1f", summary.Median),
	}
	if pilot {
		lines = append(lines, "", "[autopilot]")
	}
	for _, line := range lines {
		rl.DrawText(line, x, y, fontSize, cream)
		y += lineHeight
	}

	r.drawScoreGraph(records, summary.Average, x, r.boardHeight-110, statsWidth-20, 90)
}

// drawScoreGraph plots the most recent scores with a dashed average line.
func (r *Renderer) drawScoreGraph(records []manager.Record, avg float64, x, y, w, h int32) {
	rl.DrawRectangleLines(x, y, w, h, cream)

	if len(records) > maxScores {
		records = records[len(records)-maxScores:]
	}
	if len(records) < 2 {
		return
	}

	peak := 1
	for _, rec := range records {
		peak = max(peak, rec.Score)
	}
	scale := func(score float64) int32 {
		return y + h - int32(float64(h)*score/float64(peak))
	}

	for i := 1; i < len(records); i++ {
		x1 := x + int32(float64(w)*float64(i-1)/float64(maxScores))
		x2 := x + int32(float64(w)*float64(i)/float64(maxScores))
		rl.DrawLine(x1, scale(float64(records[i-1].Score)), x2, scale(float64(records[i].Score)), snakeColor)
	}

	avgY := scale(avg)
	for dx := x; dx < x+w; dx += 5 {
		rl.DrawLine(dx, avgY, dx+2, avgY, appleColor)
	}
}

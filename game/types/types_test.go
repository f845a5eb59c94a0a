package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingInverse(t *testing.T) {
	for _, h := range Headings {
		assert.Equal(t, h, h.Inverse().Inverse())
		assert.Equal(t, Point{}, h.Delta().Add(h.Inverse().Delta()), h.String())
	}
}

func TestHeadingFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want Heading
		ok   bool
	}{
		{"up", Up, true},
		{"ArrowDown", Down, true},
		{"a", Left, true},
		{"l", Right, true},
		{"k", Up, true},
		{"x", Up, false},
		{"", Up, false},
	}
	for _, tt := range tests {
		got, ok := HeadingFromKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.key)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: GridWidth, Height: GridHeight}
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 19, Y: 19}))
	assert.False(t, g.Contains(Point{X: 20, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -1}))
	assert.Equal(t, 400, g.Cells())
}

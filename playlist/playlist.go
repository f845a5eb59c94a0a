// Package playlist keeps the music widget's state: which track is selected
// and whether it is playing. Audio output belongs to the host.
package playlist

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty      = errors.New("playlist: no tracks")
	ErrOutOfRange = errors.New("playlist: track index out of range")
)

type Track struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
	Src   string `yaml:"src"`
}

// Player walks a fixed track list. Next and Prev wrap around and start
// playback, as does picking a track.
type Player struct {
	tracks  []Track
	index   int
	playing bool
}

func New(tracks []Track) (*Player, error) {
	if len(tracks) == 0 {
		return nil, ErrEmpty
	}
	t := make([]Track, len(tracks))
	copy(t, tracks)
	return &Player{tracks: t}, nil
}

func (p *Player) Tracks() []Track {
	out := make([]Track, len(p.tracks))
	copy(out, p.tracks)
	return out
}

func (p *Player) Current() Track {
	return p.tracks[p.index]
}

func (p *Player) Index() int {
	return p.index
}

func (p *Player) Playing() bool {
	return p.playing
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() bool {
	p.playing = !p.playing
	return p.playing
}

func (p *Player) Next() Track {
	p.index = (p.index + 1) % len(p.tracks)
	p.playing = true
	return p.Current()
}

func (p *Player) Prev() Track {
	if p.index == 0 {
		p.index = len(p.tracks) - 1
	} else {
		p.index--
	}
	p.playing = true
	return p.Current()
}

// Select jumps to track i and plays it.
func (p *Player) Select(i int) (Track, error) {
	if i < 0 || i >= len(p.tracks) {
		return Track{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(p.tracks))
	}
	p.index = i
	p.playing = true
	return p.Current(), nil
}

// Ended advances to the next track once the current one finishes.
func (p *Player) Ended() Track {
	return p.Next()
}

package starcatch

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/starcatch/internal/core"
)

// ErrInvalidArena is returned when the arena cannot host a simulation.
var ErrInvalidArena = errors.New("starcatch: invalid arena")

// Arena holds the playfield bounds. Coordinates run from (0,0) at the
// bottom-left corner to (Width,Height) at the top-right.
type Arena struct {
	Width  float64
	Height float64
}

// NewArena validates and returns an arena. Both dimensions must be
// positive and finite.
func NewArena(width, height float64) (Arena, error) {
	if !usableLength(width) || !usableLength(height) {
		return Arena{}, fmt.Errorf("%w: %gx%g", ErrInvalidArena, width, height)
	}
	return Arena{Width: width, Height: height}, nil
}

// usableLength rejects zero, negative, NaN and infinite lengths.
func usableLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Center returns the midpoint of the arena.
func (a Arena) Center() core.Vec2 {
	return core.V(a.Width/2, a.Height/2)
}

// contains reports whether p lies inside [0,w]×[0,h].
func (a Arena) contains(p core.Vec2) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// Inner returns the range an entity of the given half size may occupy.
func (a Arena) Inner(half float64) (xMin, xMax, yMin, yMax float64) {
	return half, a.Width - half, half, a.Height - half
}

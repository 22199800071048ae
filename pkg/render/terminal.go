// Package render draws the entity store as text for headless runs.
package render

import (
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals
type TerminalRenderer struct {
	width  int
	height int
	buffer [][]rune
	scaleX float64
	scaleY float64
}

// NewTerminalRenderer creates a width x height character board covering a
// worldWidth x worldHeight viewport centered on the origin.
func NewTerminalRenderer(width, height int, worldWidth, worldHeight float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scaleX: worldWidth / float64(width),
		scaleY: worldHeight / float64(height),
	}
}

// worldToScreen converts world coordinates, with y pointing up, to a cell
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int(math.Floor(pos.X/r.scaleX + float64(r.width)/2))
	screenY := int(math.Floor(-pos.Y/r.scaleY + float64(r.height)/2))
	// the far edges of the viewport belong to the last cell
	if screenX == r.width {
		screenX--
	}
	if screenY == r.height {
		screenY--
	}
	return screenX, screenY
}

// Clear blanks the buffer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Draw renders every positioned entity of store into the buffer
func (r *TerminalRenderer) Draw(store *entity.Store) {
	r.Clear()
	// bullets last so they stay visible on top of asteroids
	for _, id := range store.Query(entity.PositionMask) {
		if !store.Bullets.Has(id) {
			r.plot(store, id)
		}
	}
	for id := range store.Bullets.All() {
		r.plot(store, id)
	}
}

func (r *TerminalRenderer) plot(store *entity.Store, id entity.ID) {
	pos, ok := store.Positions.Get(id)
	if !ok {
		return
	}
	x, y := r.worldToScreen(pos.Vector2D)
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.buffer[y][x] = symbolFor(store, id)
}

func symbolFor(store *entity.Store, id entity.ID) rune {
	if store.Ships.Has(id) {
		return 'A'
	}
	if store.Bullets.Has(id) {
		return '.'
	}
	if rock, ok := store.Asteroids.Get(id); ok {
		switch rock.Size {
		case entity.SizeBig:
			return 'O'
		case entity.SizeMedium:
			return 'o'
		default:
			return '*'
		}
	}
	return '?'
}

// String returns the buffer framed by a border
func (r *TerminalRenderer) String() string {
	var b strings.Builder
	border := "+" + strings.Repeat("-", r.width) + "+\n"

	b.WriteString(border)
	for y := range r.buffer {
		b.WriteByte('|')
		b.WriteString(string(r.buffer[y]))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

// Present writes the framed buffer to w
func (r *TerminalRenderer) Present(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}

package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// palette colours entries by depth: depth 1 takes the first colour, deeper
// levels than the palette has are left plain.
var palette = [][3]int{
	{254, 74, 73},
	{42, 183, 202},
	{254, 215, 102},
	{230, 230, 234},
	{244, 244, 248},
}

// TextEmitter writes the classic tree lines to w.
type TextEmitter struct {
	w      io.Writer
	colors []*color.Color
}

// NewTextEmitter creates a text emitter. With colored set, entry displays are
// wrapped in true-colour escapes regardless of where w points.
func NewTextEmitter(w io.Writer, colored bool) *TextEmitter {
	e := &TextEmitter{w: w}
	if colored {
		e.colors = make([]*color.Color, len(palette))
		for i, rgb := range palette {
			c := color.RGB(rgb[0], rgb[1], rgb[2])
			c.EnableColor()
			e.colors[i] = c
		}
	}
	return e
}

func (e *TextEmitter) Root(line Line) error {
	_, err := fmt.Fprintln(e.w, line.Text())
	return err
}

func (e *TextEmitter) Entry(line Line) error {
	if c := e.colorFor(line.Depth); c != nil {
		line.Display = c.Sprint(line.Display)
	}
	_, err := fmt.Fprintln(e.w, line.Text())
	return err
}

func (e *TextEmitter) Truncated(prefix string, _ int, _ int) error {
	_, err := fmt.Fprintln(e.w, prefix+ellipsis)
	return err
}

func (e *TextEmitter) Summary(s Summary) error {
	_, err := fmt.Fprintln(e.w, s.String())
	return err
}

func (e *TextEmitter) colorFor(depth int) *color.Color {
	i := depth - 1
	if i < 0 || i >= len(e.colors) {
		return nil
	}
	return e.colors[i]
}

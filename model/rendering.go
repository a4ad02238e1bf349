package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/utils"
)

const (
	borderCorner = " "
	borderEdge   = "-"
	borderSide   = "|"

	// ansiClearHome moves the cursor home and erases the screen
	ansiClearHome = "\x1b[H\x1b[2J"
)

// Sink consumes one generation snapshot at a time
type Sink interface {
	Render(f Frame, rows, cols int) error
}

// TerminalRenderer draws bordered frames as plain text
type TerminalRenderer struct {
	Out         io.Writer
	Alive       string
	Dead        string
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing to out with the configured glyphs
func NewTerminalRenderer(out io.Writer, config utils.Config) *TerminalRenderer {
	return &TerminalRenderer{
		Out:         out,
		Alive:       config.AliveGlyph,
		Dead:        config.DeadGlyph,
		ClearScreen: config.ClearScreen,
	}
}

// Display renders the board's current generation
func (r *TerminalRenderer) Display(b *Board) error {
	return r.Render(b.Frame(), b.Rows(), b.Cols())
}

// Render writes the frame framed by a border. The horizontal border is
// cols-1 dashes wide, one short of the row width.
func (r *TerminalRenderer) Render(f Frame, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return errors.Wrapf(ErrInvalidDimensions, "[Render] got %dx%d", rows, cols)
	}
	if !f.HasShape(rows, cols) {
		return errors.Wrapf(ErrShapeMismatch, "[Render] expected %dx%d", rows, cols)
	}

	var sb strings.Builder
	if r.ClearScreen {
		sb.WriteString(ansiClearHome)
	}

	border := borderCorner + strings.Repeat(borderEdge, cols-1) + borderCorner + "\n"
	sb.WriteString(border)
	for _, row := range f {
		sb.WriteString(borderSide)
		for _, c := range row {
			if c != Dead {
				sb.WriteString(r.Alive)
			} else {
				sb.WriteString(r.Dead)
			}
		}
		sb.WriteString(borderSide)
		sb.WriteString("\n")
	}
	sb.WriteString(border)

	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return errors.Wrap(err, "[Render] failed to write frame")
	}
	return nil
}

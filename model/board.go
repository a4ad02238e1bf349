package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Cell is the state of a single grid position. Any non-zero value is alive.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// aliveThreshold is the draw a cell must strictly exceed to start alive
const aliveThreshold = 0.5

var (
	ErrInvalidDimensions = errors.New("rows and cols must both be at least 1")
	ErrShapeMismatch     = errors.New("frame shape does not match board dimensions")
	ErrNoRandomSource    = errors.New("no random source")
)

// Frame is a rectangular snapshot of cells, indexed [row][col]
type Frame [][]Cell

// NewFrame allocates an all-dead frame backed by a single slice
func NewFrame(rows, cols int) Frame {
	frame := make(Frame, rows)
	data := make([]Cell, rows*cols)
	for i := range frame {
		frame[i], data = data[:cols:cols], data[cols:]
	}
	return frame
}

// Clone returns a deep copy of the frame
func (f Frame) Clone() Frame {
	if len(f) == 0 {
		return Frame{}
	}
	next := NewFrame(len(f), len(f[0]))
	for i := range f {
		copy(next[i], f[i])
	}
	return next
}

// HasShape reports whether the frame has exactly rows rows of cols cells each
func (f Frame) HasShape(rows, cols int) bool {
	if len(f) != rows {
		return false
	}
	for _, row := range f {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// Equal compares two frames cell by cell, treating every non-zero cell as alive
func (f Frame) Equal(other Frame) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if len(f[i]) != len(other[i]) {
			return false
		}
		for j := range f[i] {
			if (f[i][j] != Dead) != (other[i][j] != Dead) {
				return false
			}
		}
	}
	return true
}

// Board is the current generation together with its fixed dimensions
type Board struct {
	frame Frame
	rows  int
	cols  int
}

// NewBoard builds a board from an explicit frame. The frame is copied and
// normalised to Dead/Alive, so later changes to the argument do not leak in.
func NewBoard(frame Frame) (*Board, error) {
	rows := len(frame)
	if rows < 1 || len(frame[0]) < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] got %d rows", rows)
	}
	cols := len(frame[0])
	if !frame.HasShape(rows, cols) {
		return nil, errors.Wrapf(ErrShapeMismatch, "[NewBoard] ragged frame, expected %dx%d", rows, cols)
	}

	cells := NewFrame(rows, cols)
	for i := range frame {
		for j, c := range frame[i] {
			if c != Dead {
				cells[i][j] = Alive
			}
		}
	}
	return &Board{frame: cells, rows: rows, cols: cols}, nil
}

// GenerateBoard creates a rows x cols board where every cell is independently
// alive with probability one half
func GenerateBoard(rows, cols int, rng *rand.Rand) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[GenerateBoard] got %dx%d", rows, cols)
	}
	if rng == nil {
		return nil, errors.WithStack(ErrNoRandomSource)
	}

	frame := NewFrame(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() > aliveThreshold {
				frame[i][j] = Alive
			}
		}
	}
	return &Board{frame: frame, rows: rows, cols: cols}, nil
}

// Rows returns the number of rows on the board
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns on the board
func (b *Board) Cols() int {
	return b.cols
}

// Frame returns the current generation. Callers must treat it as read-only;
// the board swaps frames instead of writing into them.
func (b *Board) Frame() Frame {
	return b.frame
}

// Get returns the cell at (i, j), or Dead when the position is off the board
func (b *Board) Get(i, j int) Cell {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return Dead
	}
	return b.frame[i][j]
}

// Replace swaps in the next generation
func (b *Board) Replace(next Frame) error {
	if !next.HasShape(b.rows, b.cols) {
		return errors.Wrapf(ErrShapeMismatch, "[Replace] board is %dx%d", b.rows, b.cols)
	}
	b.frame = next
	return nil
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for _, row := range b.frame {
		for _, c := range row {
			if c != Dead {
				count++
			}
		}
	}
	return
}

package model

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-term/rules"
	"github.com/sheikhrachel/go-gol-term/utils"
)

// Boundary decides which off-centre positions may contribute to a neighbor count
type Boundary int

const (
	// BoundaryReference never counts row 0 or column 0 as a neighbor source,
	// although those cells are still updated as centres
	BoundaryReference Boundary = iota
	// BoundaryDead treats everything outside the grid as dead and nothing else
	BoundaryDead
)

var boundaryNames = map[Boundary]string{
	BoundaryReference: "reference",
	BoundaryDead:      "dead",
}

func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBoundary maps a configured policy name onto a Boundary
func ParseBoundary(name string) (Boundary, error) {
	for b, n := range boundaryNames {
		if strings.EqualFold(name, n) {
			return b, nil
		}
	}
	return 0, errors.Wrapf(utils.ErrInvalidConfig, "[ParseBoundary] unknown boundary %q", name)
}

// counts reports whether position (i, j) may contribute to a neighbor count
func (b Boundary) counts(i, j, rows, cols int) bool {
	if b == BoundaryDead {
		return i >= 0 && j >= 0 && i < rows && j < cols
	}
	return i > 0 && j > 0 && i < rows && j < cols
}

// Stepper computes successive generations
type Stepper struct {
	Boundary Boundary
	// Workers above 1 splits rows across goroutines
	Workers int
}

// NewStepper builds a Stepper from the game configuration
func NewStepper(config utils.Config) (Stepper, error) {
	boundary, err := ParseBoundary(config.Boundary)
	if err != nil {
		return Stepper{}, err
	}
	return Stepper{Boundary: boundary, Workers: max(1, config.Workers)}, nil
}

// Advance computes the generation after b with the reference boundary policy
func Advance(b *Board) Frame {
	return Stepper{Boundary: BoundaryReference, Workers: 1}.Advance(b)
}

// Advance returns the next generation as a freshly allocated frame; b is not modified
func (s Stepper) Advance(b *Board) Frame {
	next := b.frame.Clone()

	workers := min(max(1, s.Workers), b.rows)
	if workers == 1 {
		s.stepRows(b, next, 0, b.rows)
		return next
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (b.rows + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.rows)
		)
		if startRow >= b.rows {
			break
		}

		eg.Go(func() error {
			s.stepRows(b, next, startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait() // row workers never fail

	return next
}

// stepRows writes rows [startRow, endRow) of next from the cells of b
func (s Stepper) stepRows(b *Board, next Frame, startRow, endRow int) {
	for i := startRow; i < endRow; i++ {
		for j := 0; j < b.cols; j++ {
			alive := b.frame[i][j] != Dead
			if rules.Next(alive, s.liveNeighbors(b, i, j)) {
				next[i][j] = Alive
			} else {
				next[i][j] = Dead
			}
		}
	}
}

// liveNeighbors sums the 3x3 block around (i, j) and takes the centre back out
func (s Stepper) liveNeighbors(b *Board, i, j int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			ni, nj := i+dx, j+dy
			if s.Boundary.counts(ni, nj, b.rows, b.cols) && b.frame[ni][nj] != Dead {
				count++
			}
		}
	}

	if b.frame[i][j] != Dead {
		count--
	}
	return count
}

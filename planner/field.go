package planner

import (
	"fmt"
	"strings"

	"pacman/game"
)

// Field is the dense per-cell risk potential the planner maintains over the
// board. Lower is safer. Values persist across ticks; within a tick the
// planner perturbs the field and restores it exactly, apart from the
// standing mutations documented on Planner.
//
// A Field is owned by exactly one Planner and is not safe for concurrent
// use. A tick runs start to finish on one goroutine.
type Field struct {
	cells [game.BoardSize][game.BoardSize]int
}

// NewField returns a zeroed field.
func NewField() *Field {
	return &Field{}
}

func (f *Field) inRange(p game.Position) bool {
	return p.X >= 0 && p.X < game.BoardSize && p.Y >= 0 && p.Y < game.BoardSize
}

// At reads the risk at p. Out-of-range cells read as 0; stamp shapes and
// candidate probes routinely reach past the edge.
func (f *Field) At(p game.Position) int {
	if !f.inRange(p) {
		return 0
	}
	return f.cells[p.X][p.Y]
}

// Adjust adds delta to the risk at p. Out-of-range cells are silently
// skipped, which is what makes stamping near the border safe.
func (f *Field) Adjust(p game.Position, delta int) {
	if !f.inRange(p) {
		return
	}
	f.cells[p.X][p.Y] += delta
}

// Set overwrites the risk at p. Out-of-range cells are silently skipped.
func (f *Field) Set(p game.Position, v int) {
	if !f.inRange(p) {
		return
	}
	f.cells[p.X][p.Y] = v
}

// Snapshot copies the raw cell values, row-major. Used by tests and debug
// dumps, never by the decision path.
func (f *Field) Snapshot() [game.BoardSize][game.BoardSize]int {
	return f.cells
}

// String renders the field as rows of right-aligned values, for debugging.
func (f *Field) String() string {
	var b strings.Builder
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			fmt.Fprintf(&b, "%6d", f.cells[x][y])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

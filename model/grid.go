package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Grid represents a square toroidal game board. It is double buffered:
// every step computes the next generation into a secondary buffer from
// the untouched current one, then the buffers swap.
type Grid struct {
	size    int
	cells   [][]bool // current generation
	buffer  [][]bool // scratch for the next generation
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a new size x size grid with all cells dead
func NewGrid(size int) *Grid {
	return &Grid{
		size:   size,
		cells:  newCells(size),
		buffer: newCells(size),
	}
}

func newCells(size int) [][]bool {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return cells
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Reset resets the grid to a new size, clearing all state
func (g *Grid) Reset(size int) {
	g.history = nil

	if g.size != size || g.cells == nil {
		g.size = size
		g.cells = newCells(size)
		g.buffer = newCells(size)
		return
	}

	g.Clear()
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = false
			g.buffer[y][x] = false
		}
	}
	g.history = nil
}

// wrap maps any integer coordinate onto the torus.
// Adding size before the second modulo handles negative coordinates.
func (g *Grid) wrap(c int) int {
	return ((c % g.size) + g.size) % g.size
}

// Set sets a cell to alive (true) or dead (false), wrapping coordinates
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[g.wrap(y)][g.wrap(x)] = alive
}

// IsAlive returns the state of a cell, wrapping coordinates
func (g *Grid) IsAlive(x, y int) bool {
	return g.cells[g.wrap(y)][g.wrap(x)]
}

// CountNeighbors counts the live cells among the 8 toroidally wrapped
// neighbors, so a cell at index 0 sees index size-1 as adjacent.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			if g.cells[g.wrap(y+dy)][g.wrap(x+dx)] {
				count++
			}
		}
	}
	return count
}

// Step advances the grid by one generation. All neighbor counts are
// taken from the pre-step state; the computed generation becomes
// current before Step returns.
func (g *Grid) Step(config utils.Config) {
	if config.UseParallel {
		g.stepParallel()
	} else {
		g.stepSerial()
	}
	g.cells, g.buffer = g.buffer, g.cells
}

func (g *Grid) stepSerial() {
	g.stepRows(0, g.size)
}

// stepParallel partitions rows across workers. Workers only read the
// current buffer and write disjoint rows of the scratch buffer.
func (g *Grid) stepParallel() {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			g.stepRows(startRow, endRow)
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()
}

func (g *Grid) stepRows(startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.size; x++ {
			g.buffer[y][x] = rules.NextState(g.CountNeighbors(x, y), g.cells[y][x])
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	// Keep only last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a cycle or static state
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.Hash()

	// Check for static state and short cycles
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}

	return false
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int) {
	for i := 0; i < count; i++ {
		g.Set(rand.Intn(g.size), rand.Intn(g.size), true)
	}
}

// Randomize sets each cell alive independently with the given
// probability in percent: 0 leaves every cell dead, 100 every cell alive.
func (g *Grid) Randomize(probability float64) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = rand.Float64()*100 < probability
		}
	}
}

// AddGlider stamps a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker stamps a blinker oscillator pattern (3 cells in a row)
func (g *Grid) AddBlinker(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}

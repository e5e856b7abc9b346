package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosAlive = "*"
	gridPosDead  = " "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid: one line per row of '*' (alive) and ' '
// (dead) cells, each suffixed with its row index.
func (r *TerminalRenderer) Display(g *Grid) {
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.IsAlive(x, y) {
				fmt.Fprint(r.Out, gridPosAlive)
			} else {
				fmt.Fprint(r.Out, gridPosDead)
			}
		}
		fmt.Fprintf(r.Out, " %d\n", y)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}

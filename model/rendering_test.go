package model

import (
	"bytes"
	"testing"
)

func TestDisplayRendersRowsWithIndices(t *testing.T) {
	g := NewGrid(3)
	g.Set(0, 0, true)
	g.Set(1, 1, true)
	g.Set(2, 2, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(g)

	want := "*   0\n *  1\n  * 2\n"
	if got := buf.String(); got != want {
		t.Errorf("Display output = %q, want %q", got, want)
	}
}

func TestDisplayEmptyGrid(t *testing.T) {
	g := NewGrid(2)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(g)

	want := "   0\n   1\n"
	if got := buf.String(); got != want {
		t.Errorf("Display output = %q, want %q", got, want)
	}
}

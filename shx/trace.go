// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package shx

import "fmt"

// A TraceEntry records one call the interpreter made to a Sink.
type TraceEntry struct {
	Op                 string // "new_path", "move", "line" or "arc"
	X0, Y0             float64
	CX, CY             float64
	X1, Y1             float64
}

func (e TraceEntry) String() string {
	switch e.Op {
	case "new_path":
		return "new_path"
	case "move":
		return fmt.Sprintf("move(%g, %g)", e.X0, e.Y0)
	case "line":
		return fmt.Sprintf("line(%g, %g, %g, %g)", e.X0, e.Y0, e.X1, e.Y1)
	case "arc":
		return fmt.Sprintf("arc(%g, %g, %g, %g, %g, %g)", e.X0, e.Y0, e.CX, e.CY, e.X1, e.Y1)
	default:
		return e.Op
	}
}

// Trace is a minimal Sink that records every call it receives, in order.
// Any type with the Sink methods would work as well; Trace exists mainly to
// make rendering behavior directly testable and inspectable, the same role
// the reference implementation's example ShxPath class plays.
type Trace struct {
	Entries []TraceEntry
}

func (t *Trace) NewPath() {
	t.Entries = append(t.Entries, TraceEntry{Op: "new_path"})
}

func (t *Trace) Move(x, y float64) {
	t.Entries = append(t.Entries, TraceEntry{Op: "move", X0: x, Y0: y})
}

func (t *Trace) Line(x0, y0, x1, y1 float64) {
	t.Entries = append(t.Entries, TraceEntry{Op: "line", X0: x0, Y0: y0, X1: x1, Y1: y1})
}

func (t *Trace) Arc(x0, y0, cx, cy, x1, y1 float64) {
	t.Entries = append(t.Entries, TraceEntry{Op: "arc", X0: x0, Y0: y0, CX: cx, CY: cy, X1: x1, Y1: y1})
}

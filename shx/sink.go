// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package shx

// A Sink consumes the geometry the interpreter produces while rendering a
// glyph stream. It plays the same role for this package as the
// freetype/raster Adder interface plays for truetype.GlyphBuf: a small
// contract that lets the interpreter stay ignorant of how (or whether) the
// strokes it emits are rasterized, flattened or recorded.
//
// NewPath, consecutively repeated, is idempotent: a caller may treat two
// back-to-back calls the same as one.
type Sink interface {
	// NewPath ends the current figure. Subsequent Move/Line/Arc calls
	// start a new one.
	NewPath()

	// Move sets the current point without stroking anything.
	Move(x, y float64)

	// Line strokes a straight segment from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 float64)

	// Arc strokes the circular arc from (x0, y0) to (x1, y1) that passes
	// through the midpoint (cx, cy). The three points determine exactly one
	// arc, except when collinear (the interpreter never emits that case) or
	// when start and end coincide (a full or zero-length circle, diameter
	// equal to the distance from the start point to (cx, cy)).
	Arc(x0, y0, cx, cy, x1, y1 float64)
}

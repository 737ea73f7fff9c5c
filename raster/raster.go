// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package raster rasterizes the move/line/arc primitives a shx.Font emits
// into an alpha mask, filling the role the teacher's freetype/raster package
// plays for truetype.GlyphBuf: a shx.Sink implementation that turns vector
// strokes into pixels.
//
// Unlike the teacher's hand-rolled scanline rasterizer, strokes here are
// flattened and filled through golang.org/x/image/vector, and arcs are
// approximated as one quadratic Bézier segment through the known start,
// midpoint and end points, matching the three-point contract of shx.Sink.Arc.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// DefaultWidth is the half-width, in font units, by which every stroked segment is
// fattened before rasterization. The format carries no pen-width field of its
// own (SHX strokes are idealized zero-width paths); this mirrors the teacher's
// own placeholder stroker (freetype/raster.Stroke), which also takes an
// explicit width rather than deriving one from the glyph data.
const DefaultWidth = 0.6

// A Rasterizer accumulates shx.Sink calls into an alpha mask. The zero value
// is not usable; construct one with NewRasterizer.
type Rasterizer struct {
	z     *vector.Rasterizer
	width float32
}

// NewRasterizer returns a Rasterizer that fills a w×h mask, stroking segments
// at half-width strokeWidth (DefaultWidth if strokeWidth is not positive).
func NewRasterizer(w, h int, strokeWidth float64) *Rasterizer {
	if strokeWidth <= 0 {
		strokeWidth = DefaultWidth
	}
	return &Rasterizer{
		z:     vector.NewRasterizer(w, h),
		width: float32(strokeWidth),
	}
}

// Mask rasterizes everything drawn so far into a new *image.Alpha the size of
// the Rasterizer, with an implicit coordinate flip (font-unit y increases
// upward; image y increases downward) already applied by the caller via the
// offset/scale passed to Move/Line/Arc.
func (z *Rasterizer) Mask() *image.Alpha {
	dst := image.NewAlpha(z.z.Bounds())
	z.z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Draw rasterizes the accumulated mask onto dst at r using src as the paint
// source, mirroring vector.Rasterizer.Draw's own signature.
func (z *Rasterizer) Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	z.z.Draw(dst, r, src, sp)
}

// NewPath is a no-op: every Line and Arc call already carries its own
// endpoints, so the Rasterizer has no figure-boundary state to reset.
func (z *Rasterizer) NewPath() {}

// Move is a no-op: the Rasterizer only draws what Line and Arc tell it to.
func (z *Rasterizer) Move(x, y float64) {}

func (z *Rasterizer) Line(x0, y0, x1, y1 float64) {
	z.strokeSegment(vec(x0, y0), vec(x1, y1))
}

// arcSamples is the number of chords used to flatten one arc into straight
// strokes, whatever the arc's sweep. A single SHX arc opcode can sweep up to
// a full circle; the one quadratic through start, midpoint and end tracks
// the true circle closely only for small sweeps.
const arcSamples = 8

// Arc approximates the three-point circular arc as a quadratic Bézier
// through (x0,y0), (cx,cy) and (x1,y1), flattens that curve into arcSamples
// chords, and strokes each chord the same way as a straight line — the
// "curve flattening" concern the core interpreter explicitly declines to
// own.
func (z *Rasterizer) Arc(x0, y0, cx, cy, x1, y1 float64) {
	a, b, c := vec(x0, y0), vec(cx, cy), vec(x1, y1)
	ctrl := quadControl(a, b, c)
	prev := a
	for i := 1; i <= arcSamples; i++ {
		t := float32(i) / arcSamples
		next := quadPoint(a, ctrl, c, t)
		z.strokeSegment(prev, next)
		prev = next
	}
}

func vec(x, y float64) f32.Vec2 {
	return f32.Vec2{float32(x), float32(y)}
}

// quadControl returns the control point of the quadratic Bézier that passes
// through a, b and c at t=0, t=0.5 and t=1 respectively: solving
// b = 0.25*a + 0.5*ctrl + 0.25*c for ctrl.
func quadControl(a, b, c f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		2*b[0] - 0.5*(a[0]+c[0]),
		2*b[1] - 0.5*(a[1]+c[1]),
	}
}

func quadPoint(a, ctrl, c f32.Vec2, t float32) f32.Vec2 {
	u := 1 - t
	return f32.Vec2{
		u*u*a[0] + 2*u*t*ctrl[0] + t*t*c[0],
		u*u*a[1] + 2*u*t*ctrl[1] + t*t*c[1],
	}
}

// strokeSegment fattens the segment a-b into a thin quadrilateral and adds it
// as its own closed contour, the same placeholder strategy the teacher's
// freetype/raster.stroke uses for linear segments (fatten independently by
// half width, no caps or joins).
func (z *Rasterizer) strokeSegment(a, b f32.Vec2) {
	n := normal(a, b, z.width)
	p0 := f32.Vec2{a[0] + n[0], a[1] + n[1]}
	p1 := f32.Vec2{b[0] + n[0], b[1] + n[1]}
	p2 := f32.Vec2{b[0] - n[0], b[1] - n[1]}
	p3 := f32.Vec2{a[0] - n[0], a[1] - n[1]}
	z.z.MoveTo(p0)
	z.z.LineTo(p1)
	z.z.LineTo(p2)
	z.z.LineTo(p3)
	z.z.ClosePath()
}

func normal(a, b f32.Vec2, width float32) f32.Vec2 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	d := float32(math.Hypot(float64(dx), float64(dy)))
	if d == 0 {
		return f32.Vec2{0, 0}
	}
	return f32.Vec2{-dy / d * width, dx / d * width}
}

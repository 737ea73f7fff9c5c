// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"image"
	"image/draw"

	"github.com/tatarize/shxgo/shx"
)

// A Context holds the state for drawing a string of text in a given SHX
// font and size, the same role the teacher's freetype.Context plays for
// TrueType: callers set a font, a size and source/destination images once,
// then call DrawString per line. Unlike the teacher's Context, there is no
// glyph cache — shx.Render interprets a glyph's opcode stream directly
// rather than hinting and rasterizing a cached outline, so the per-glyph
// cost a cache amortizes in TrueType rendering does not exist here.
type Context struct {
	font     *shx.Font
	fontSize float64
	width    float64
	dst      draw.Image
	src      image.Image
	clip     image.Rectangle
}

// NewContext returns an empty Context. Callers must call SetFont, SetDst and
// SetSrc before DrawString.
func NewContext() *Context {
	return &Context{fontSize: shx.DefaultFontSize, width: DefaultWidth}
}

func (c *Context) SetFont(f *shx.Font)        { c.font = f }
func (c *Context) SetFontSize(size float64)   { c.fontSize = size }
func (c *Context) SetStrokeWidth(w float64)   { c.width = w }
func (c *Context) SetDst(dst draw.Image)      { c.dst = dst }
func (c *Context) SetSrc(src image.Image)     { c.src = src }
func (c *Context) SetClip(clip image.Rectangle) { c.clip = clip }

// DrawString renders s at pt (the text baseline's left end, in pixels, with
// y increasing downward) onto the Context's destination image, and returns
// the point on the baseline at the rightmost x any move, line or arc reached.
func (c *Context) DrawString(s string, pt image.Point) (image.Point, error) {
	if c.font == nil {
		return pt, shx.UnsupportedFormatError("no font set on Context")
	}
	b := c.clip
	if b.Empty() {
		b = c.dst.Bounds()
	}
	r := NewRasterizer(b.Dx(), b.Dy(), c.width)
	sink := &originSink{baseX: float64(pt.X - b.Min.X), baseY: float64(pt.Y - b.Min.Y), r: r}
	if err := c.font.Render(sink, s, true, c.fontSize); err != nil {
		return pt, err
	}
	r.Draw(c.dst, b, c.src, b.Min)
	return image.Point{X: pt.X + int(sink.x), Y: pt.Y}, nil
}

// originSink adapts shx's font-unit coordinate space (y increasing upward,
// origin at the baseline start) to the Rasterizer's pixel space (y
// increasing downward), tracking the rightmost x reached so DrawString can
// report an advance pen position.
type originSink struct {
	baseX, baseY float64
	x            float64
	r            *Rasterizer
}

func (o *originSink) NewPath() { o.r.NewPath() }

func (o *originSink) Move(x, y float64) {
	o.track(x)
	o.r.Move(o.px(x), o.py(y))
}

func (o *originSink) Line(x0, y0, x1, y1 float64) {
	o.track(x1)
	o.r.Line(o.px(x0), o.py(y0), o.px(x1), o.py(y1))
}

func (o *originSink) Arc(x0, y0, cx, cy, x1, y1 float64) {
	o.track(x1)
	o.r.Arc(o.px(x0), o.py(y0), o.px(cx), o.py(cy), o.px(x1), o.py(y1))
}

func (o *originSink) track(x float64) {
	if x > o.x {
		o.x = x
	}
}

func (o *originSink) px(x float64) float64 { return o.baseX + x }
func (o *originSink) py(y float64) float64 { return o.baseY - y }

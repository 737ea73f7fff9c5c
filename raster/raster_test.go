// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizerDrawsLine(t *testing.T) {
	r := NewRasterizer(32, 32, 1.0)
	r.NewPath()
	r.Move(4, 16)
	r.Line(4, 16, 28, 16)

	mask := r.Mask()
	require.NotNil(t, mask)
	assert.Equal(t, 32, mask.Bounds().Dx())

	var lit bool
	for x := 0; x < 32; x++ {
		if mask.AlphaAt(x, 16).A > 0 {
			lit = true
			break
		}
	}
	assert.True(t, lit, "expected the stroked line to cover at least one pixel on its own row")
}

func TestRasterizerArcStaysWithinBounds(t *testing.T) {
	r := NewRasterizer(64, 64, 1.0)
	r.NewPath()
	r.Arc(10, 32, 32, 10, 54, 32)
	mask := r.Mask()
	require.Equal(t, 64, mask.Bounds().Dy())

	// The arc's points span x 10..54 and y 10..32; each stroke adds a
	// half-width of 1 on either side.
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if mask.AlphaAt(x, y).A == 0 {
				continue
			}
			assert.True(t, x >= 7 && x <= 57 && y >= 7 && y <= 35, "pixel (%d, %d) painted outside the arc's bounding box", x, y)
		}
	}
}

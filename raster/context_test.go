// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tatarize/shxgo/shx"
)

func TestContextDrawString(t *testing.T) {
	font := &shx.Font{
		Type:  shx.Shapes,
		Above: 1,
		Glyphs: map[uint16][]byte{
			'A': {0x14, 0x00}, // one-unit north stroke
		},
	}

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	c := NewContext()
	c.SetFont(font)
	c.SetFontSize(10)
	c.SetDst(img)
	c.SetSrc(image.NewUniform(color.Black))

	_, err := c.DrawString("A", image.Pt(10, 20))
	require.NoError(t, err)

	var painted bool
	for y := 0; y < 40 && !painted; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).A > 0 {
				painted = true
				break
			}
		}
	}
	require.True(t, painted, "expected DrawString to paint at least one pixel")
}

func TestContextDrawStringNoFont(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := NewContext()
	c.SetDst(img)
	c.SetSrc(image.NewUniform(color.Black))
	_, err := c.DrawString("A", image.Pt(0, 0))
	require.Error(t, err)
}

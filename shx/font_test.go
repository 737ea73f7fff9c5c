// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package shx

import (
	"bytes"
	"testing"
)

// bufBuilder assembles a little-endian SHX byte stream for test fixtures.
type bufBuilder struct {
	buf bytes.Buffer
}

func (b *bufBuilder) str(s string) *bufBuilder {
	b.buf.WriteString(s)
	b.buf.WriteByte(0)
	return b
}

func (b *bufBuilder) u8(v uint8) *bufBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *bufBuilder) u16(v uint16) *bufBuilder {
	b.buf.WriteByte(byte(v))
	b.buf.WriteByte(byte(v >> 8))
	return b
}

func (b *bufBuilder) u32(v uint32) *bufBuilder {
	b.buf.WriteByte(byte(v))
	b.buf.WriteByte(byte(v >> 8))
	b.buf.WriteByte(byte(v >> 16))
	b.buf.WriteByte(byte(v >> 24))
	return b
}

func (b *bufBuilder) bytes(p []byte) *bufBuilder {
	b.buf.Write(p)
	return b
}

func (b *bufBuilder) reader() *bytes.Reader {
	return bytes.NewReader(b.buf.Bytes())
}

func TestParseShapes(t *testing.T) {
	glyph := []byte{0x01, 0x00} // PEN_DOWN, END_OF_SHAPE
	b := (&bufBuilder{}).
		str("AutoCAD-86 shapes 1.0").
		bytes([]byte{0, 0}). // header terminator
		u16(65).             // start
		u16(65).             // end
		u16(2).               // directory count (descriptor + one glyph)
		u16(0).u16(7).         // entry 0: font descriptor, length 7 (name "Foo\0" + above + below + modes)
		u16(65).u16(uint16(len(glyph))). // entry 1: glyph 'A'
		str("Foo").u8(9).u8(2).u8(0).    // descriptor body: name, above, below, modes
		bytes(glyph)

	f, err := Parse(b.reader())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Type != Shapes {
		t.Errorf("Type = %v, want Shapes", f.Type)
	}
	if f.Format != "AutoCAD-86" {
		t.Errorf("Format = %q, want AutoCAD-86", f.Format)
	}
	if f.FontName != "Foo" {
		t.Errorf("FontName = %q, want Foo", f.FontName)
	}
	if f.Above != 9 || f.Below != 2 {
		t.Errorf("Above/Below = %d/%d, want 9/2", f.Above, f.Below)
	}
	got, ok := f.Glyphs[65]
	if !ok {
		t.Fatal("glyph 65 missing")
	}
	if !bytes.Equal(got, glyph) {
		t.Errorf("glyph body = %v, want %v", got, glyph)
	}
}

func TestParseBigFont(t *testing.T) {
	glyphRaw := []byte{0xFF, 0x01, 0x00} // leading framing byte + PEN_DOWN, END_OF_SHAPE
	glyphWant := glyphRaw[1:]

	b := &bufBuilder{}
	b.str("AutoCAD-86 bigfont 1.0").bytes([]byte{0, 0})
	b.u16(2)  // count: descriptor + one glyph
	b.u16(0)  // length (unused)
	b.u16(1)  // change_count
	b.u16(0x41).u16(0x5A) // one code range A-Z

	// Directory entries reference absolute offsets computed below.
	// We lay out: directory (2 entries of u16+u16+u32 = 8 bytes each), then
	// descriptor body, then glyph body.
	dirStart := b.buf.Len()
	descOffset := uint32(dirStart + 2*8)
	glyphOffset := descOffset + 3 // above, below, modes

	b.u16(0).u16(3).u32(descOffset)
	b.u16(66).u16(uint16(len(glyphRaw))).u32(glyphOffset)

	b.u8(9).u8(2).u8(0) // descriptor: above, below, modes
	b.bytes(glyphRaw)

	f, err := Parse(b.reader())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Type != BigFont {
		t.Errorf("Type = %v, want BigFont", f.Type)
	}
	if len(f.Changes) != 1 || f.Changes[0] != (CodeRange{Start: 0x41, End: 0x5A}) {
		t.Errorf("Changes = %v, want [{0x41 0x5A}]", f.Changes)
	}
	if f.Above != 9 || f.Below != 2 {
		t.Errorf("Above/Below = %d/%d, want 9/2", f.Above, f.Below)
	}
	got, ok := f.Glyphs[66]
	if !ok {
		t.Fatal("glyph 66 missing")
	}
	if !bytes.Equal(got, glyphWant) {
		t.Errorf("glyph body = %v, want %v (leading byte stripped)", got, glyphWant)
	}
}

func TestParseUnifont(t *testing.T) {
	glyphRaw := []byte{0xFF, 0x01, 0x00}
	glyphWant := glyphRaw[1:]

	b := &bufBuilder{}
	b.str("AutoCAD-86 unifont 1.0").bytes([]byte{0, 0})
	b.u32(2) // count: directory length + 1

	// The reader consumes a u16 "length" field and then seeks back to offset
	// 5 from start-of-body (§4.2) before the metadata fields, so only one
	// filler byte separates count from the metadata's true starting byte.
	b.u8(0)
	b.str("Bar").u8(9).u8(2).u8(0).u8(1).u8(0).u8(0) // name, above, below, mode, encoding, embedded, ignore
	b.u16(0x4142).u16(uint16(len(glyphRaw))).bytes(glyphRaw)

	f, err := Parse(b.reader())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Type != UniFont {
		t.Errorf("Type = %v, want UniFont", f.Type)
	}
	if f.FontName != "Bar" {
		t.Errorf("FontName = %q, want Bar", f.FontName)
	}
	if f.Encoding != 1 {
		t.Errorf("Encoding = %d, want 1", f.Encoding)
	}
	got, ok := f.Glyphs[0x4142]
	if !ok {
		t.Fatal("glyph 0x4142 missing")
	}
	if !bytes.Equal(got, glyphWant) {
		t.Errorf("glyph body = %v, want %v (leading byte stripped)", got, glyphWant)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	b := (&bufBuilder{}).str("AutoCAD-86 truetype 1.0").bytes([]byte{0, 0})
	_, err := Parse(b.reader())
	if _, ok := err.(UnsupportedFormatError); !ok {
		t.Fatalf("err = %#v, want UnsupportedFormatError", err)
	}
}

func TestParseHeaderMissingTokens(t *testing.T) {
	b := (&bufBuilder{}).str("AutoCAD-86 shapes").bytes([]byte{0, 0})
	_, err := Parse(b.reader())
	if _, ok := err.(UnsupportedFormatError); !ok {
		t.Fatalf("err = %#v, want UnsupportedFormatError", err)
	}
}

func TestParseTruncatedStream(t *testing.T) {
	b := (&bufBuilder{}).str("AutoCAD-86 shapes 1.0")
	_, err := Parse(b.reader())
	if _, ok := err.(TruncatedStreamError); !ok {
		t.Fatalf("err = %#v, want TruncatedStreamError", err)
	}
}

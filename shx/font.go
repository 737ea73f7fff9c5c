// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package shx provides a parser and opcode interpreter for the SHX
// shape/font file family used by AutoCAD-compatible systems. An SHX file
// encodes glyphs as sequences of compact byte opcodes in a small
// stack-based vector drawing language; Parse decodes the container and
// (*Font).Render executes that language, emitting move/line/arc primitives
// to a caller-supplied Sink.
//
// The package does no file I/O of its own (the caller supplies an
// io.ReadSeeker), no curve flattening, and no text layout: those are the
// concern of the sibling raster, codepage and cmd packages in this module.
package shx

import (
	"fmt"
	"io"
)

// Type identifies which of the three SHX container layouts a font uses.
type Type int

const (
	// Shapes is the fixed-width, byte-indexed layout (typ. .shx shape files).
	Shapes Type = iota
	// BigFont is the long-offset layout with code-range remapping.
	BigFont
	// UniFont is the 16-bit code point layout.
	UniFont
)

func (t Type) String() string {
	switch t {
	case Shapes:
		return "shapes"
	case BigFont:
		return "bigfont"
	case UniFont:
		return "unifont"
	default:
		return "unknown"
	}
}

// A CodeRange is one entry of a BigFont's code-range remapping table. The
// format defines these but the reference implementation never applies them;
// this package preserves them as metadata for a host to consume (see the
// codepage package) rather than silently discarding them.
type CodeRange struct {
	Start, End uint16
}

// A Font is an immutable, parsed SHX font. Its Glyphs table is read-only
// after Parse returns, so a single *Font may be shared across concurrent
// Render calls provided each call uses its own Sink.
type Font struct {
	Format  string // short identifier, e.g. "AutoCAD-86"
	Type    Type
	Version string

	FontName string // human-readable name; empty for BigFont
	Above    uint8  // vector units above baseline
	Below    uint8  // vector units below baseline
	Modes    uint8  // 0 = horizontal only, 2 = dual (horizontal + vertical)

	// Encoding and Embedded are UniFont-only metadata; zero for other types.
	Encoding uint8
	Embedded uint8

	// Changes is BigFont's code-range remapping table, parsed but not
	// applied by this package (see the codepage package).
	Changes []CodeRange

	// Glyphs maps a code point to its opaque opcode stream. The key 0 never
	// appears: it is always the font descriptor slot, consumed during
	// parsing.
	Glyphs map[uint16][]byte
}

// String returns a short human-readable summary of the font, mirroring the
// reference implementation's __str__.
func (f *Font) String() string {
	return fmt.Sprintf("%s(%q, %s, glyphs: %d)", f.Type, f.FontName, f.Version, len(f.Glyphs))
}

// Parse reads an SHX font from r, dispatching to the shapes, bigfont or
// unifont container parser named by the header line.
func Parse(r io.ReadSeeker) (*Font, error) {
	d := newReader(r)
	format, typ, version, err := parseHeader(d)
	if err != nil {
		return nil, err
	}
	f := &Font{
		Format:  format,
		Version: version,
		Glyphs:  make(map[uint16][]byte),
	}
	switch typ {
	case "shapes":
		f.Type = Shapes
		err = parseShapes(d, f)
	case "bigfont":
		f.Type = BigFont
		err = parseBigFont(d, f)
	case "unifont":
		f.Type = UniFont
		err = parseUnifont(d, f)
	default:
		return nil, UnsupportedFormatError(typ)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// parseHeader reads the ASCII signature line "<format> <type> <version>"
// followed by two terminator bytes, per §4.1.
func parseHeader(d *reader) (format, typ, version string, err error) {
	line, err := d.str("header")
	if err != nil {
		return "", "", "", err
	}
	parts := splitHeader(line)
	if len(parts) != 3 {
		return "", "", "", UnsupportedFormatError(line)
	}
	if err := d.skip(2, "header terminator"); err != nil {
		return "", "", "", err
	}
	return parts[0], parts[1], parts[2], nil
}

func splitHeader(line string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' {
			parts = append(parts, line[start:i])
			start = i + 1
		}
	}
	parts = append(parts, line[start:])
	return parts
}

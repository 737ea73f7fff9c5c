// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package shx

// parseUnifont reads the "unifont" container: a u32 directory-length-plus-
// one, a reserved u16, then (per §4.2) a seek back to offset 5 relative to
// the start of this container before the font-level metadata fields, and
// finally a directory of (index, length) pairs each immediately followed by
// its glyph body. Each body's leading framing byte is stripped.
func parseUnifont(d *reader, f *Font) error {
	bodyStart, err := d.pos("unifont body start")
	if err != nil {
		return err
	}
	count, err := d.u32("unifont count")
	if err != nil {
		return err
	}
	if _, err := d.u16("unifont length"); err != nil {
		return err
	}

	if err := d.seekAbs(bodyStart+5, "unifont metadata seek"); err != nil {
		return err
	}

	name, err := d.str("unifont font name")
	if err != nil {
		return err
	}
	above, err := d.u8("unifont above")
	if err != nil {
		return err
	}
	below, err := d.u8("unifont below")
	if err != nil {
		return err
	}
	mode, err := d.u8("unifont mode")
	if err != nil {
		return err
	}
	encoding, err := d.u8("unifont encoding")
	if err != nil {
		return err
	}
	embedded, err := d.u8("unifont embedded")
	if err != nil {
		return err
	}
	if _, err := d.u8("unifont ignore"); err != nil {
		return err
	}

	f.FontName = name
	f.Above = above
	f.Below = below
	f.Modes = mode
	f.Encoding = encoding
	f.Embedded = embedded

	if count == 0 {
		return nil
	}
	for i := uint32(0); i < count-1; i++ {
		index, err := d.u16("unifont directory index")
		if err != nil {
			return err
		}
		length, err := d.u16("unifont directory length")
		if err != nil {
			return err
		}
		body, err := d.bytes(int(length), "unifont glyph body")
		if err != nil {
			return err
		}
		if len(body) > 0 {
			body = body[1:]
		}
		f.Glyphs[index] = body
	}
	return nil
}

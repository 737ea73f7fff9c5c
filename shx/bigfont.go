// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package shx

// parseBigFont reads the "bigfont" container: a code-range remapping
// table (preserved as Font.Changes, not applied here — see the codepage
// package) followed by a directory of (index, length, absolute offset)
// entries. Each glyph body's leading framing byte is stripped.
func parseBigFont(d *reader, f *Font) error {
	count, err := d.u16("bigfont count")
	if err != nil {
		return err
	}
	if _, err := d.u16("bigfont length"); err != nil {
		return err
	}
	changeCount, err := d.u16("bigfont change count")
	if err != nil {
		return err
	}

	changes := make([]CodeRange, changeCount)
	for i := range changes {
		start, err := d.u16("bigfont change start")
		if err != nil {
			return err
		}
		end, err := d.u16("bigfont change end")
		if err != nil {
			return err
		}
		changes[i] = CodeRange{start, end}
	}
	f.Changes = changes

	type entry struct {
		index, length uint16
		offset        uint32
	}
	dir := make([]entry, count)
	for i := range dir {
		index, err := d.u16("bigfont directory index")
		if err != nil {
			return err
		}
		length, err := d.u16("bigfont directory length")
		if err != nil {
			return err
		}
		offset, err := d.u32("bigfont directory offset")
		if err != nil {
			return err
		}
		dir[i] = entry{index, length, offset}
	}

	for _, e := range dir {
		if err := d.seekAbs(int64(e.offset), "bigfont glyph offset"); err != nil {
			return err
		}
		if e.index == 0 {
			above, err := d.u8("bigfont above")
			if err != nil {
				return err
			}
			below, err := d.u8("bigfont below")
			if err != nil {
				return err
			}
			modes, err := d.u8("bigfont modes")
			if err != nil {
				return err
			}
			f.Above = above
			f.Below = below
			f.Modes = modes
			continue
		}
		body, err := d.bytes(int(e.length), "bigfont glyph body")
		if err != nil {
			return err
		}
		if len(body) > 0 {
			body = body[1:]
		}
		f.Glyphs[e.index] = body
	}
	return nil
}

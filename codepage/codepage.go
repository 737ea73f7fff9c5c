// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package codepage translates Unicode runes into the legacy 8-bit code
// points a BigFont or UniFont glyph table may use, guided by the code-range
// and encoding metadata shx.Parse preserves but never applies on its own.
package codepage

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/tatarize/shxgo/shx"
)

// A Translator maps a Unicode rune to the font-native code point under which
// the font's glyph table stores that character.
type Translator interface {
	// Translate returns the font-native code point for r, and whether r has
	// one. A Translator that cannot represent r returns ok == false.
	Translate(r rune) (code uint16, ok bool)
}

// identity passes Unicode code points through unchanged: the common case for
// a Shapes font or a UniFont with Encoding == 0 (already Unicode).
type identity struct{}

func (identity) Translate(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	return uint16(r), true
}

// charmapTranslator remaps through a legacy single-byte code page: Translate
// looks up which byte (if any) a Charmap decodes to r, and reports that byte
// as the font-native code point.
type charmapTranslator struct {
	cm *charmap.Charmap
}

func (c charmapTranslator) Translate(r rune) (uint16, bool) {
	b, ok := c.cm.EncodeRune(r)
	if !ok {
		return 0, false
	}
	return uint16(b), true
}

// ForUniFont picks a Translator for a parsed UniFont based on its Encoding
// byte (§3: 0 = Unicode, 1 = packed multibyte remapped through cm, 2 =
// shape-file references). cm is only consulted for Encoding == 1; pass nil
// if the caller has no code page for the font, which falls back to identity.
// Encoding values this package does not otherwise recognize also fall back
// to identity, since the core already stores code points as raw u16 keys
// regardless of what scheme produced them.
func ForUniFont(f *shx.Font, cm *charmap.Charmap) Translator {
	if f.Type != shx.UniFont || f.Encoding != 1 || cm == nil {
		return identity{}
	}
	return charmapTranslator{cm: cm}
}

// ForBigFont picks a Translator for a BigFont authored against the legacy
// code page cm rather than raw Unicode (§9 open question 2). The Changes
// table only selects the translator: a BigFont with at least one Changes
// entry and a non-nil cm gets cm, anything else gets identity. Translate
// does not check its result against the Changes ranges; use InRange for that.
func ForBigFont(f *shx.Font, cm *charmap.Charmap) Translator {
	if f.Type != shx.BigFont || len(f.Changes) == 0 || cm == nil {
		return identity{}
	}
	return charmapTranslator{cm: cm}
}

// InRange reports whether code falls within any of the font's BigFont
// code-range remapping entries.
func InRange(f *shx.Font, code uint16) bool {
	for _, cr := range f.Changes {
		if code >= cr.Start && code <= cr.End {
			return true
		}
	}
	return false
}

// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package shx

// A DebugLogger receives one record per opcode executed, when set via
// RenderOptions.Logger. Its shape matches logrus.FieldLogger's Debugf method
// (among others) so a *logrus.Logger or *logrus.Entry satisfies it directly,
// without this package importing logrus itself: the core stays dependency-
// free, and the CLI/example packages wire a real logger in at the edge.
type DebugLogger interface {
	Debugf(format string, args ...interface{})
}

// RenderOptions configures a single Render call beyond the plain
// (horizontal, fontSize) pair Render itself takes.
type RenderOptions struct {
	// Horizontal governs COND_MODE_2, as in Render.
	Horizontal bool
	// FontSize sets the initial scale register; 0 uses DefaultFontSize.
	FontSize float64
	// Logger, if non-nil, receives one debug record per opcode executed,
	// mirroring the reference implementation's optional print-per-opcode
	// debug mode.
	Logger DebugLogger
}

// RenderWithOptions is Render with an optional per-opcode debug trace. Render
// itself is equivalent to RenderWithOptions with a zero Logger.
func (f *Font) RenderWithOptions(sink Sink, text string, opts RenderOptions) error {
	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	m := &vm{
		font:       f,
		sink:       sink,
		horizontal: opts.Horizontal,
		scale:      fontSize / float64(f.Above),
		logger:     opts.Logger,
	}
	for _, r := range text {
		cp := uint16(r)
		body, ok := f.Glyphs[cp]
		if !ok {
			continue
		}
		m.codePoint = cp
		m.pen = true
		m.skip = false
		m.frames = append(m.frames[:0], frame{code: body, pc: 0})
		if err := m.run(); err != nil {
			return &RenderError{Rune: r, CodePoint: cp, Err: err}
		}
	}
	return nil
}

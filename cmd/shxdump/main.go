// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tatarize/shxgo/shx"
)

var (
	fontfile = flag.String("font", "", "filename of the SHX font to dump")
	glyph    = flag.String("glyph", "", "if set, a single character whose move/line/arc trace to print")
	debug    = flag.Bool("debug", false, "log one record per opcode while rendering -glyph")
)

func main() {
	flag.Parse()
	log := logrus.New()

	f, err := os.Open(*fontfile)
	if err != nil {
		log.WithError(err).Fatalf("opening %s", *fontfile)
	}
	defer f.Close()

	font, err := shx.Parse(f)
	if err != nil {
		log.WithError(err).Fatalf("parsing %s", *fontfile)
	}

	log.WithFields(logrus.Fields{
		"format": font.Format,
		"type":   font.Type,
		"name":   font.FontName,
		"glyphs": len(font.Glyphs),
	}).Info(font.String())

	if *glyph == "" {
		return
	}

	opts := shx.RenderOptions{FontSize: shx.DefaultFontSize}
	if *debug {
		log.SetLevel(logrus.DebugLevel)
		opts.Logger = log
	}
	trace := &shx.Trace{}
	if err := font.RenderWithOptions(trace, *glyph, opts); err != nil {
		log.WithError(err).Fatalf("rendering %q", *glyph)
	}
	for _, entry := range trace.Entries {
		log.Info(entry.String())
	}
}

// The rasterize command renders a string in an SHX shape font to a PNG,
// the SHX analogue of the teacher's text2svg command.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tatarize/shxgo/raster"
	"github.com/tatarize/shxgo/shx"
)

var (
	textFlag   = flag.String("text", "ABC", "the text to render")
	fontFlag   = flag.String("font", "", "file name of the SHX font to use")
	scaleFlag  = flag.Float64("scale", 36, "font size in vector units")
	widthFlag  = flag.Int("width", 800, "output image width in pixels")
	heightFlag = flag.Int("height", 200, "output image height in pixels")
	outFlag    = flag.String("out", "out.png", "output PNG path")
)

func main() {
	flag.Parse()
	log := logrus.New()

	fontFile, err := os.Open(*fontFlag)
	if err != nil {
		log.WithError(err).Fatalf("opening %s", *fontFlag)
	}
	defer fontFile.Close()

	font, err := shx.Parse(fontFile)
	if err != nil {
		log.WithError(err).Fatalf("parsing %s", *fontFlag)
	}
	log.Infof("loaded %s", font)

	img := image.NewRGBA(image.Rect(0, 0, *widthFlag, *heightFlag))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := raster.NewContext()
	c.SetFont(font)
	c.SetFontSize(*scaleFlag)
	c.SetDst(img)
	c.SetSrc(image.NewUniform(color.Black))

	if _, err := c.DrawString(*textFlag, image.Pt(10, *heightFlag/2)); err != nil {
		log.WithError(err).Fatalf("rendering %q", *textFlag)
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		log.WithError(err).Fatalf("creating %s", *outFlag)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.WithError(err).Fatalf("encoding %s", *outFlag)
	}
	log.Infof("wrote %s", *outFlag)
}

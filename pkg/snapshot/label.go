package snapshot

import (
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/tauraamui/xerror"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const DATE_TIME_LABEL_FORMAT = "2006/01/02 15:04:05"

// DrawLabel renders the snapshot's capture time onto the top left of
// the image itself, before encoding.
func (s Snapshot) DrawLabel(format string) error {
	if s.Image == nil {
		return xerror.New("cannot draw label onto snapshot without image data")
	}

	if len(format) == 0 {
		format = DATE_TIME_LABEL_FORMAT
	}

	return drawText(s.Image, 10, 42, s.Timestamp.Format(format))
}

func drawText(canvas *image.RGBA, x, y int, text string) error {
	var (
		fgColor  image.Image
		fontFace *truetype.Font
		err      error
		fontSize = 24.0
	)
	fgColor = image.White
	fontFace, err = freetype.ParseFont(goregular.TTF)
	if err != nil {
		return xerror.Errorf("unable to parse label font: %w", err)
	}

	fontDrawer := &font.Drawer{
		Dst: canvas,
		Src: fgColor,
		Face: truetype.NewFace(fontFace, &truetype.Options{
			Size:    fontSize,
			Hinting: font.HintingFull,
		}),
	}
	textBounds, _ := fontDrawer.BoundString(text)
	textHeight := textBounds.Max.Y - textBounds.Min.Y
	yPosition := fixed.I((y)-textHeight.Ceil())/2 + fixed.I(textHeight.Ceil())
	fontDrawer.Dot = fixed.Point26_6{
		X: fixed.I(x),
		Y: yPosition,
	}
	fontDrawer.DrawString(text)
	return nil
}

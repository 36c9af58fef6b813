package screen

import (
	"image"

	"github.com/kbinani/screenshot"
	"github.com/tauraamui/xerror"
)

type nativeBackend struct{}

func (b *nativeBackend) NumActiveDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (b *nativeBackend) DisplayBounds(display int) image.Rectangle {
	return screenshot.GetDisplayBounds(display)
}

func (b *nativeBackend) CaptureRect(bounds image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, xerror.Errorf("unable to capture screen rect %v: %w", bounds, err)
	}
	return img, nil
}

package screen

import (
	"image"
	"image/color"
	"math"
)

const (
	mockDisplayWidth  = 600
	mockDisplayHeight = 400
)

// mockBackend pretends to be a single attached display and renders a
// deterministic three circle canvas in place of real screen content.
type mockBackend struct{}

func (b *mockBackend) NumActiveDisplays() int {
	return 1
}

func (b *mockBackend) DisplayBounds(display int) image.Rectangle {
	return image.Rect(0, 0, mockDisplayWidth, mockDisplayHeight)
}

func (b *mockBackend) CaptureRect(bounds image.Rectangle) (*image.RGBA, error) {
	var hw, hh float64 = mockDisplayWidth / 2, mockDisplayHeight / 2
	r := 200.0
	θ := 2 * math.Pi / 3
	cr := &circle{hw - r*math.Sin(0), hh - r*math.Cos(0), 300}
	cg := &circle{hw - r*math.Sin(θ), hh - r*math.Cos(θ), 300}
	cb := &circle{hw - r*math.Sin(-θ), hh - r*math.Cos(-θ), 300}

	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			c := color.RGBA{
				cr.Brightness(float64(x), float64(y)),
				cg.Brightness(float64(x), float64(y)),
				cb.Brightness(float64(x), float64(y)),
				255,
			}
			img.Set(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return img, nil
}

type circle struct {
	X, Y, R float64
}

func (c *circle) Brightness(x, y float64) uint8 {
	var dx, dy float64 = c.X - x, c.Y - y
	d := math.Sqrt(dx*dx+dy*dy) / c.R
	if d > 1 {
		return 0
	}
	return 255
}

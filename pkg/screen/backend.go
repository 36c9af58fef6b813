package screen

import (
	"image"
)

// Backend abstracts the display enumeration and pixel grabbing
// primitives so that capture logic is testable without a real
// display server attached.
type Backend interface {
	NumActiveDisplays() int
	DisplayBounds(display int) image.Rectangle
	CaptureRect(bounds image.Rectangle) (*image.RGBA, error)
}

func Default() Backend {
	return Native()
}

func Native() Backend {
	return &nativeBackend{}
}

func Mock() Backend {
	return &mockBackend{}
}

func Resolve(t string) Backend {
	switch t {
	case "mock":
		return Mock()
	default:
		return Default()
	}
}

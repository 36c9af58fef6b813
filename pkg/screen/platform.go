package screen

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	ErrUnsupportedPlatform = errors.New("platform does not support screen capture")
	ErrNoActiveDisplays    = errors.New("no active displays found")
	ErrNoSuchDisplay       = errors.New("no display at given index")
)

var supportedPlatforms = []string{"windows", "darwin", "linux", "freebsd", "netbsd", "openbsd"}

var osName = func() string {
	return runtime.GOOS
}

// CheckSupport fails fast before any capture is attempted if the
// current platform cannot grab the screen or the requested display
// is not attached.
func CheckSupport(backend Backend, display int) error {
	current := osName()
	if !platformSupported(current) {
		return fmt.Errorf(
			"%w: running on %s, supported platforms: %s",
			ErrUnsupportedPlatform, current, strings.Join(supportedPlatforms, ", "),
		)
	}

	displayCount := backend.NumActiveDisplays()
	if displayCount == 0 {
		return ErrNoActiveDisplays
	}

	if display < 0 || display >= displayCount {
		return fmt.Errorf(
			"%w: display %d requested but %d display(s) attached",
			ErrNoSuchDisplay, display, displayCount,
		)
	}

	return nil
}

func platformSupported(name string) bool {
	for _, p := range supportedPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

package snapshot

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"
)

const TIMESTAMP_FORMAT = "20060102_150405"

var Timestamp = func() time.Time {
	return time.Now()
}

// Snapshot is a single captured image along with the moment it
// was grabbed and its position within an interval run. A sequence
// of 0 marks a single shot capture.
type Snapshot struct {
	Image     *image.RGBA
	Timestamp time.Time
	Sequence  int
}

func New(img *image.RGBA) Snapshot {
	return Snapshot{Image: img, Timestamp: Timestamp()}
}

// Naming derives the on disk location for captured snapshots.
type Naming struct {
	OutputDir       string
	Output          string
	Timestamp       bool
	TimestampFormat string
}

// FileName resolves the full output path for a snapshot. The
// timestamp suffix and the 4 digit sequence suffix are both
// inserted before the file extension so repeated captures never
// overwrite each other.
func (n Naming) FileName(s Snapshot) string {
	base := n.Output
	if filepath.Dir(base) == "." && len(n.OutputDir) > 0 {
		base = filepath.Join(n.OutputDir, base)
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if n.Timestamp {
		format := n.TimestampFormat
		if len(format) == 0 {
			format = TIMESTAMP_FORMAT
		}
		stem = fmt.Sprintf("%s_%s", stem, s.Timestamp.Format(format))
	}

	if s.Sequence > 0 {
		stem = fmt.Sprintf("%s_%04d", stem, s.Sequence)
	}

	return filepath.FromSlash(stem + ext)
}

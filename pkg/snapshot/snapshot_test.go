package snapshot_test

import (
	"image"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/tauraamui/screengrab/pkg/snapshot"
)

func overloadTimestamp(overload func() time.Time) func() {
	timestampRef := snapshot.Timestamp
	snapshot.Timestamp = overload
	return func() { snapshot.Timestamp = timestampRef }
}

func TestNewSnapshotCarriesCurrentTimestamp(t *testing.T) {
	is := is.New(t)
	fakeNow := time.Date(2021, 8, 15, 9, 30, 0, 0, time.UTC)
	reset := overloadTimestamp(func() time.Time { return fakeNow })
	defer reset()

	s := snapshot.New(image.NewRGBA(image.Rect(0, 0, 10, 10)))
	is.Equal(s.Timestamp, fakeNow)
	is.Equal(s.Sequence, 0)
}

func TestFileNamePlacesBareOutputIntoOutputDir(t *testing.T) {
	is := is.New(t)
	naming := snapshot.Naming{OutputDir: "output", Output: "screenshot.png"}

	s := snapshot.Snapshot{Timestamp: time.Now()}
	is.Equal(naming.FileName(s), filepath.Join("output", "screenshot.png"))
}

func TestFileNameLeavesExplicitDirAlone(t *testing.T) {
	is := is.New(t)
	naming := snapshot.Naming{OutputDir: "output", Output: filepath.Join("shots", "desk.png")}

	s := snapshot.Snapshot{Timestamp: time.Now()}
	is.Equal(naming.FileName(s), filepath.Join("shots", "desk.png"))
}

func TestFileNameInsertsTimestampSuffixBeforeExtension(t *testing.T) {
	is := is.New(t)
	naming := snapshot.Naming{
		Output:    "desk.png",
		Timestamp: true,
	}

	s := snapshot.Snapshot{Timestamp: time.Date(2021, 8, 15, 9, 30, 44, 0, time.UTC)}
	is.Equal(naming.FileName(s), "desk_20210815_093044.png")
}

func TestFileNameHonoursCustomTimestampFormat(t *testing.T) {
	is := is.New(t)
	naming := snapshot.Naming{
		Output:          "desk.png",
		Timestamp:       true,
		TimestampFormat: "2006-01-02",
	}

	s := snapshot.Snapshot{Timestamp: time.Date(2021, 8, 15, 9, 30, 44, 0, time.UTC)}
	is.Equal(naming.FileName(s), "desk_2021-08-15.png")
}

func TestFileNameAppendsSequenceSuffixForIntervalShots(t *testing.T) {
	is := is.New(t)
	naming := snapshot.Naming{Output: "desk.png"}

	s := snapshot.Snapshot{Timestamp: time.Now(), Sequence: 7}
	is.Equal(naming.FileName(s), "desk_0007.png")
}

func TestFileNameCombinesTimestampAndSequenceSuffixes(t *testing.T) {
	is := is.New(t)
	naming := snapshot.Naming{
		OutputDir: "output",
		Output:    "desk.png",
		Timestamp: true,
	}

	s := snapshot.Snapshot{
		Timestamp: time.Date(2021, 8, 15, 9, 30, 44, 0, time.UTC),
		Sequence:  12,
	}
	is.Equal(naming.FileName(s), filepath.Join("output", "desk_20210815_093044_0012.png"))
}

func TestFileNamesDifferAcrossSecondBoundaries(t *testing.T) {
	is := is.New(t)
	naming := snapshot.Naming{Output: "desk.png", Timestamp: true}

	first := snapshot.Snapshot{Timestamp: time.Date(2021, 8, 15, 9, 30, 44, 0, time.UTC)}
	second := snapshot.Snapshot{Timestamp: first.Timestamp.Add(time.Second)}
	is.True(naming.FileName(first) != naming.FileName(second))
}

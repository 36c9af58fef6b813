package grab

import (
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/tauraamui/screengrab/pkg/log"
	"github.com/tauraamui/screengrab/pkg/screen"
	"github.com/tauraamui/screengrab/pkg/snapshot"
)

// Result records a single written capture.
type Result struct {
	Path      string
	Timestamp time.Time
}

var sleep = time.Sleep

var now = func() time.Time {
	return time.Now()
}

// Session drives one capture run: wait out the configured delay,
// then grab the screen once or repeatedly and persist every
// snapshot to disk.
type Session struct {
	uuid     string
	settings Settings
	backend  screen.Backend
	writer   snapshot.Writer
	naming   snapshot.Naming
}

func NewSession(settings Settings, backend screen.Backend, writer snapshot.Writer) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		uuid:     uuid.NewString(),
		settings: settings,
		backend:  backend,
		writer:   writer,
		naming: snapshot.Naming{
			OutputDir:       settings.OutputDir,
			Output:          settings.Output,
			Timestamp:       settings.Timestamp,
			TimestampFormat: settings.TimestampFormat,
		},
	}, nil
}

func (s *Session) UUID() string {
	return s.uuid
}

func (s *Session) Run() ([]Result, error) {
	if err := screen.CheckSupport(s.backend, s.settings.Display); err != nil {
		return nil, err
	}

	log.Debug("Starting capture session [%s]", s.uuid)

	if s.settings.Delay > 0 {
		log.Info("Waiting %d second(s) before capturing...", s.settings.Delay)
	}
	sleep(s.settings.delayDuration())

	if s.settings.IntervalCapture() {
		return s.runInterval()
	}
	return s.runSingle()
}

func (s *Session) runSingle() ([]Result, error) {
	result, err := s.captureAndPersist(0)
	if err != nil {
		return nil, err
	}

	log.Info("Screenshot saved as %s", result.Path)
	return []Result{result}, nil
}

func (s *Session) runInterval() ([]Result, error) {
	interval := s.settings.intervalDuration()
	timeLimit := s.settings.timeLimitDuration()

	log.Info(
		"Starting interval capture: %gs interval, %gs duration",
		s.settings.Interval, s.settings.TimeLimit,
	)

	var results []Result
	start := now()
	for now().Sub(start) < timeLimit {
		result, err := s.captureAndPersist(len(results) + 1)
		if err != nil {
			return results, err
		}
		results = append(results, result)

		elapsed := now().Sub(start)
		log.Info("Screenshot #%d saved as %s (elapsed: %.1fs)", len(results), result.Path, elapsed.Seconds())

		remaining := timeLimit - now().Sub(start)
		if remaining > 0 {
			sleep(minDuration(interval, remaining))
		}
	}

	log.Info("Interval capture completed: %d screenshot(s) saved", len(results))
	return results, nil
}

func (s *Session) captureAndPersist(sequence int) (Result, error) {
	img, err := s.backend.CaptureRect(s.captureBounds())
	if err != nil {
		return Result{}, err
	}

	snap := snapshot.New(img)
	snap.Sequence = sequence

	if s.settings.DateTimeLabel {
		if err := snap.DrawLabel(s.settings.DateTimeFormat); err != nil {
			return Result{}, err
		}
	}

	path := s.naming.FileName(snap)
	if err := s.writer.Write(path, snap); err != nil {
		return Result{}, err
	}

	return Result{Path: path, Timestamp: snap.Timestamp}, nil
}

func (s *Session) captureBounds() image.Rectangle {
	if s.settings.Region != nil {
		return s.settings.Region.Rect()
	}
	return s.backend.DisplayBounds(s.settings.Display)
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

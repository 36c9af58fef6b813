package snapshot

import (
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tauraamui/xerror"
)

type Writer interface {
	Write(path string, s Snapshot) error
}

func NewWriter(fs afero.Fs) Writer {
	return &pngWriter{fs: fs}
}

type pngWriter struct {
	fs afero.Fs
}

func (w *pngWriter) Write(path string, s Snapshot) error {
	if s.Image == nil {
		return xerror.New("cannot write snapshot without image data")
	}

	if err := w.ensureParentDirExists(path); err != nil {
		return err
	}

	file, err := w.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return xerror.Errorf("unable to create/open file: %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, s.Image); err != nil {
		return xerror.Errorf("unable to encode snapshot to file: %s: %w", path, err)
	}

	return nil
}

func (w *pngWriter) ensureParentDirExists(path string) error {
	parentDirPath := filepath.Dir(path)
	if parentDirPath == "." {
		return nil
	}

	if err := w.fs.MkdirAll(parentDirPath, os.ModeDir|os.ModePerm); err != nil {
		return xerror.Errorf("unable to create output parent directory: %s: %w", parentDirPath, err)
	}

	return nil
}

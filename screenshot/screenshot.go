// Package screenshot writes frames to timestamped PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/marben/fractals"
)

// DefaultDir is the capture directory used when none is given.
const DefaultDir = "screenshots"

// TimeLayout formats the capture time in file names.
const TimeLayout = "20060102_150405"

// FileName returns "<name>_YYYYMMDD_HHMMSS.png" for t.
func FileName(name string, t time.Time) string {
	return name + "_" + t.Format(TimeLayout) + ".png"
}

// Saver stores frames in a directory, creating it on first use. Two frames
// of the same name saved within one second share a file name, the later
// one wins.
type Saver struct {
	dir string
	now func() time.Time
}

var _ fractals.ImgSaver = (*Saver)(nil)

// New returns a Saver writing into dir, or DefaultDir if dir is empty.
func New(dir string) *Saver {
	if dir == "" {
		dir = DefaultDir
	}
	return &Saver{dir: dir, now: time.Now}
}

// Dir returns the capture directory.
func (s *Saver) Dir() string { return s.dir }

// Path returns the file a frame named name would be written to now.
func (s *Saver) Path(name string) string {
	return filepath.Join(s.dir, FileName(name, s.now()))
}

// Save encodes img as PNG and returns the path written.
func (s *Saver) Save(name string, img image.Image) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	path := s.Path(name)
	if err := WriteFile(path, img); err != nil {
		return "", err
	}
	fractals.Logger().Info("screenshot saved", "path", path)
	return path, nil
}

// WriteFile encodes img as PNG into path.
func WriteFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot: %w", cerr)
		}
	}()
	return Encode(f, img)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("screenshot: encode png: %w", err)
	}
	return nil
}

// Package driver holds the registry of image container formats
// that can locate the Exif block within an image file.
//
// Container packages register themselves in an init function,
// using the format name reported by image.DecodeConfig.
package driver

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// ExifFunc returns the raw Exif block found in r.
// The returned bytes start with the TIFF header.
// It returns ErrNoExif if r has no Exif block.
type ExifFunc func(r io.ReadSeeker) ([]byte, error)

var (
	// ErrUnknownFormat is returned by ExifBytes for unregistered formats.
	ErrUnknownFormat = errors.New("driver: unknown container format")

	// ErrNoExif is returned when the container holds no Exif block.
	ErrNoExif = errors.New("driver: no Exif block found")
)

var (
	formatsMu sync.RWMutex
	formats   = make(map[string]ExifFunc)
)

// RegisterFormat registers the Exif extractor f for the image format name.
// It panics if name is already registered.
func RegisterFormat(name string, f ExifFunc) {
	formatsMu.Lock()
	defer formatsMu.Unlock()

	if _, ok := formats[name]; ok {
		panic(errors.Errorf("driver: duplicate container format %q", name))
	}
	formats[name] = f
}

// Formats returns the names of the registered formats.
func Formats() []string {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	v := make([]string, 0, len(formats))
	for n := range formats {
		v = append(v, n)
	}
	return v
}

// ExifBytes reads the Exif block of r using the extractor
// registered for format. The read starts at the beginning of r.
func ExifBytes(format string, r io.ReadSeeker) ([]byte, error) {
	formatsMu.RLock()
	f, ok := formats[format]
	formatsMu.RUnlock()

	if !ok {
		return nil, errors.Wrap(ErrUnknownFormat, format)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return f(r)
}

var (
	tiffHeaderBE = []byte("MM\x00\x2a")
	tiffHeaderLE = []byte("II\x2a\x00")
)

// TrimHeader returns p starting with the TIFF header.
// Containers may prefix Exif with "Exif\0\0" or an offset,
// everything up to the first TIFF header is removed.
//
// TrimHeader returns ErrNoExif if p has no TIFF header.
func TrimHeader(p []byte) ([]byte, error) {
	i := bytes.Index(p, tiffHeaderBE)
	j := bytes.Index(p, tiffHeaderLE)
	switch {
	case i == -1 && j == -1:
		return nil, ErrNoExif
	case i == -1:
		i = j
	case j != -1 && j < i:
		i = j
	}
	return p[i:], nil
}

package jpeg

import (
	"bytes"
	"io"

	"github.com/tajtiattila/gpsimage/driver"
)

func init() {
	driver.RegisterFormat("jpeg", func(r io.ReadSeeker) ([]byte, error) {
		return Exif(r)
	})
}

var jpegExifPfx = []byte("Exif\x00\x00")

// Exif returns the raw Exif block of the first APP1 Exif segment in r.
// It returns driver.ErrNoExif if there is no such segment
// before the start of scan.
func Exif(r io.Reader) ([]byte, error) {
	j, err := NewScanner(r)
	if err != nil {
		return nil, err
	}

	for j.Next() {
		if j.Marker() != markerAPP1 || j.Len() < len(jpegExifPfx) {
			continue
		}
		p, err := j.ReadSegment()
		if err != nil {
			return nil, err
		}
		if !bytes.HasPrefix(p, jpegExifPfx) {
			// probably XMP
			continue
		}
		return driver.TrimHeader(p[len(jpegExifPfx):])
	}

	if err := j.Err(); err != nil {
		return nil, err
	}
	return nil, driver.ErrNoExif
}

//go:build !noheif
// +build !noheif

package heif

import (
	"io"

	"github.com/jdeng/goheif"

	"github.com/tajtiattila/gpsimage/driver"
)

func init() {
	driver.RegisterFormat("heic", func(r io.ReadSeeker) ([]byte, error) {
		ra, ok := r.(io.ReaderAt)
		if !ok {
			return nil, driver.ErrNoExif
		}
		return Exif(ra)
	})
}

// Exif returns the Exif item of the HEIF file in r.
func Exif(r io.ReaderAt) ([]byte, error) {
	p, err := goheif.ExtractExif(r)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, driver.ErrNoExif
	}
	return driver.TrimHeader(p)
}

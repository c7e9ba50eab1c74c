package png

import (
	"io"

	"github.com/tajtiattila/gpsimage/driver"
)

func init() {
	driver.RegisterFormat("png", func(r io.ReadSeeker) ([]byte, error) {
		return Exif(r)
	})
}

// Exif returns the Exif block of the PNG file in r.
// The eXIf chunk takes precedence over raw profiles.
func Exif(r io.Reader) ([]byte, error) {
	f, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if f.Exif != nil {
		return driver.TrimHeader(f.Exif)
	}
	if f.RawProfile != nil {
		return driver.TrimHeader(f.RawProfile)
	}
	return nil, driver.ErrNoExif
}

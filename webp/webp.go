// Package webp finds the EXIF chunk of WebP files.
package webp

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/tajtiattila/gpsimage/driver"
)

var (
	ErrNotWebp = errors.New("webp: missing RIFF WEBP header")
	ErrCorrupt = errors.New("webp: corrupt chunk")
)

func init() {
	driver.RegisterFormat("webp", func(r io.ReadSeeker) ([]byte, error) {
		return Exif(r)
	})
}

// Exif returns the content of the EXIF chunk of the WebP file in r.
func Exif(r io.Reader) ([]byte, error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, noEOF(err)
	}
	if string(hdr[:4]) != "RIFF" || string(hdr[8:]) != "WEBP" {
		return nil, ErrNotWebp
	}

	// remaining bytes in RIFF after the form type
	left := int64(binary.LittleEndian.Uint32(hdr[4:8])) - 4

	for left >= 8 {
		var ch [8]byte
		if _, err := io.ReadFull(r, ch[:]); err != nil {
			return nil, noEOF(err)
		}
		typ := string(ch[:4])
		n := int64(binary.LittleEndian.Uint32(ch[4:]))
		padded := n + n&1
		left -= 8 + padded
		if left < 0 {
			return nil, errors.Wrapf(ErrCorrupt, "%q chunk size %d exceeds RIFF size", typ, n)
		}

		if typ != "EXIF" {
			if err := skip(r, padded); err != nil {
				return nil, err
			}
			continue
		}

		p := make([]byte, int(n))
		if _, err := io.ReadFull(r, p); err != nil {
			return nil, noEOF(err)
		}
		return driver.TrimHeader(p)
	}
	return nil, driver.ErrNoExif
}

func skip(r io.Reader, n int64) error {
	if s, ok := r.(io.Seeker); ok {
		_, err := s.Seek(n, io.SeekCurrent)
		return err
	}
	m, err := io.CopyN(io.Discard, r, n)
	if m == n {
		return nil
	}
	return noEOF(err)
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

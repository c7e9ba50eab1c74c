// Package jpeg locates marker segments, such as the Exif APP1 segment,
// in JPEG files.
package jpeg

import (
	"bufio"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

var (
	// ErrNotJpeg is returned if the file is not a jpeg file.
	ErrNotJpeg = errors.New("jpeg: missing start of image marker")

	// ErrCorrupt is returned if the segment structure is invalid.
	ErrCorrupt = errors.New("jpeg: corrupt segment")
)

const (
	markerTEM  = 0x01
	markerRST  = 0xd0 // RST0..RST7
	markerSOI  = 0xd8
	markerEOI  = 0xd9
	markerSOS  = 0xda
	markerAPP1 = 0xe1
)

// Scanner reads the marker segments of a JPEG stream
// up to the start of scan.
type Scanner struct {
	r *bufio.Reader

	marker byte
	length int  // payload length of current segment
	unread bool // payload not yet consumed

	done bool
	err  error
}

// NewScanner checks the start of image marker in r
// and returns a Scanner positioned after it.
func NewScanner(r io.Reader) (*Scanner, error) {
	br := bufio.NewReader(r)
	var soi [2]byte
	if _, err := io.ReadFull(br, soi[:]); err != nil {
		if err == io.EOF {
			// no bytes were read
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if soi[0] != 0xff || soi[1] != markerSOI {
		return nil, ErrNotJpeg
	}
	return &Scanner{r: br}, nil
}

// Next advances to the next segment.
// It returns false at the start of scan, end of image or on error.
func (j *Scanner) Next() bool {
	if j.done || j.err != nil {
		return false
	}

	if j.unread && j.length > 0 {
		if _, err := io.CopyN(ioutil.Discard, j.r, int64(j.length)); err != nil {
			j.setErr(err)
			return false
		}
	}
	j.marker, j.length, j.unread = 0, 0, false

	b, err := j.r.ReadByte()
	if err != nil {
		j.setErr(err)
		return false
	}
	if b != 0xff {
		j.err = errors.Wrapf(ErrCorrupt, "found %#02x instead of marker", b)
		return false
	}

	// skip fill bytes
	for b == 0xff {
		if b, err = j.r.ReadByte(); err != nil {
			j.setErr(err)
			return false
		}
	}

	switch {
	case b == markerSOS || b == markerEOI:
		// image data follows, we're done
		j.done = true
		return false
	case b == markerTEM || (markerRST <= b && b < markerRST+8):
		// marker with no content
		j.marker = b
		return true
	}

	var lenbuf [2]byte
	if _, err := io.ReadFull(j.r, lenbuf[:]); err != nil {
		j.setErr(err)
		return false
	}
	l := int(lenbuf[0])<<8 | int(lenbuf[1])
	if l < 2 {
		j.err = errors.Wrapf(ErrCorrupt, "segment %#02x length %d", b, l)
		return false
	}

	j.marker, j.length, j.unread = b, l-2, true
	return true
}

func (j *Scanner) setErr(err error) {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	j.err = err
}

// Marker returns the marker of the current segment.
func (j *Scanner) Marker() byte { return j.marker }

// Len returns the payload length of the current segment.
func (j *Scanner) Len() int { return j.length }

// ReadSegment reads the payload of the current segment.
func (j *Scanner) ReadSegment() ([]byte, error) {
	if j.err != nil {
		return nil, j.err
	}
	if !j.unread {
		return nil, errors.New("jpeg: segment already read")
	}
	p := make([]byte, j.length)
	if _, err := io.ReadFull(j.r, p); err != nil {
		j.setErr(err)
		return nil, j.err
	}
	j.unread = false
	return p, nil
}

// Err returns the first error encountered during Next or ReadSegment.
func (j *Scanner) Err() error {
	return j.err
}

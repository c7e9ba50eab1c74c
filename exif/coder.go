// Package exif provides name based access to the tag directories
// of a decoded Exif block.
package exif

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/tajtiattila/gpsimage/exif/exiftag"
)

const (
	// sub-IFD pointers
	ifd0exifSub    = 0x8769
	ifd0gpsSub     = 0x8825
	exifInteropSub = 0xA005
)

var (
	ErrCorruptHeader = errors.New("exif: corrupt header")
	ErrCorruptDir    = errors.New("exif: corrupt IFD")
	ErrCorruptTag    = errors.New("exif: corrupt IFD tag")
)

// Exif holds the tag directories of an Exif block.
//
// Entries of each Dir are kept in the order they appear
// in the source.
type Exif struct {
	ByteOrder binary.ByteOrder

	IFD0    Dir
	IFD1    Dir
	Exif    Dir
	GPS     Dir
	Interop Dir
}

// Dir represents an Image File Directory (IFD) within Exif.
type Dir []*tiff.Tag

// Tag returns the entry with tag t, or nil if t does not exist.
func (d Dir) Tag(t uint16) *tiff.Tag {
	for _, e := range d {
		if e.Id == t {
			return e
		}
	}
	return nil
}

// DecodeBytes decodes the raw Exif data from p.
// The data must start with the TIFF header.
//
// If a sub-IFD is corrupt, the directories decoded so far
// are returned together with the error.
func DecodeBytes(p []byte) (*Exif, error) {
	if len(p) < 8 {
		return nil, ErrCorruptHeader
	}

	tif, err := tiff.Decode(bytes.NewReader(p))
	if err != nil {
		return nil, errors.Wrap(ErrCorruptHeader, err.Error())
	}

	x := &Exif{ByteOrder: tif.Order}
	if len(tif.Dirs) > 0 {
		x.IFD0 = tif.Dirs[0].Tags
	}
	if len(tif.Dirs) > 1 {
		x.IFD1 = tif.Dirs[1].Tags
	}

	r := bytes.NewReader(p)
	if x.Exif, err = x.subDir(r, x.IFD0, ifd0exifSub); err != nil {
		return x, err
	}
	if x.GPS, err = x.subDir(r, x.IFD0, ifd0gpsSub); err != nil {
		return x, err
	}
	if x.Interop, err = x.subDir(r, x.Exif, exifInteropSub); err != nil {
		return x, err
	}
	return x, nil
}

func (x *Exif) subDir(r *bytes.Reader, parent Dir, ptr uint16) (Dir, error) {
	t := parent.Tag(ptr)
	if t == nil {
		return nil, nil
	}
	offset, err := t.Int(0)
	if err != nil || offset < 8 || int64(offset) >= r.Size() {
		// pointer must be a valid long
		return nil, errors.Wrapf(ErrCorruptTag, "sub-IFD pointer %04x", ptr)
	}
	if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(ErrCorruptDir, "seek sub-IFD %04x", ptr)
	}
	d, _, err := tiff.DecodeDir(r, x.ByteOrder)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptDir, "sub-IFD %04x: %v", ptr, err)
	}
	return d.Tags, nil
}

// Tag returns the entry for the tag id (see package exiftag),
// or nil if it is not present.
func (x *Exif) Tag(id uint32) *tiff.Tag {
	var d Dir
	switch exiftag.Id(id).Dir() {
	case exiftag.Tiff:
		d = x.IFD0
	case exiftag.Exif:
		d = x.Exif
	case exiftag.GPS:
		d = x.GPS
	case exiftag.Interop:
		d = x.Interop
	}
	return d.Tag(exiftag.Id(id).Tag())
}

// Empty reports whether x has no primary image or Exif tags.
func (x *Exif) Empty() bool {
	return x == nil || len(x.IFD0)+len(x.Exif) == 0
}

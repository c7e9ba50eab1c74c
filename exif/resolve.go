package exif

import (
	"strings"

	"github.com/rwcarlsen/goexif/tiff"

	"github.com/tajtiattila/gpsimage/exif/exiftag"
)

// Resolve returns the entry for the tag with the specified name.
//
// Names containing "GPS" are looked up in the GPS directory,
// other names in the primary image and Exif directories.
// Resolve returns nil if name is unknown or x has no such entry.
func (x *Exif) Resolve(name string) *tiff.Tag {
	id, ok := exiftag.Lookup(name)
	if !ok {
		return nil
	}

	dir := exiftag.Id(id).Dir()
	if strings.Contains(name, "GPS") {
		if dir != exiftag.GPS {
			return nil
		}
		return x.GPS.Tag(exiftag.Id(id).Tag())
	}

	switch dir {
	case exiftag.Tiff, exiftag.Exif:
		return x.Tag(id)
	}
	return nil
}

// Field is a named Exif entry.
type Field struct {
	Name string
	Tag  *tiff.Tag
}

// Fields returns the entries of directory dir (see package exiftag)
// with their names, in source order.
func (x *Exif) Fields(dir uint32) []Field {
	switch dir {
	case exiftag.Tiff:
		return fields(dir, x.IFD0)
	case exiftag.Exif:
		return fields(dir, x.Exif)
	case exiftag.GPS:
		return fields(dir, x.GPS)
	case exiftag.Interop:
		return fields(dir, x.Interop)
	}
	return nil
}

// MainFields returns the primary image entries followed by the Exif entries.
func (x *Exif) MainFields() []Field {
	return append(x.Fields(exiftag.Tiff), x.Fields(exiftag.Exif)...)
}

// GPSFields returns the GPS entries.
func (x *Exif) GPSFields() []Field {
	return x.Fields(exiftag.GPS)
}

func fields(dir uint32, d Dir) []Field {
	if len(d) == 0 {
		return nil
	}
	v := make([]Field, len(d))
	for i, t := range d {
		v[i] = Field{
			Name: exiftag.Id(dir | uint32(t.Id)).String(),
			Tag:  t,
		}
	}
	return v
}

package gpsimage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rwcarlsen/goexif/tiff"

	"github.com/tajtiattila/gpsimage/exif"
)

// Fdump writes a report of im to w: the decoded attributes
// followed by the raw camera and GPS tags.
func Fdump(w io.Writer, im *Image) error {
	ew := &errWriter{w: w}

	ew.println("## Attributes")
	for _, a := range im.Attrs() {
		ew.pretty(a.Name, a.Value)
	}

	if f := im.x.MainFields(); len(f) != 0 {
		ew.println("")
		ew.println("## Camera Raw")
		ew.fields(f)
	}

	if f := im.x.GPSFields(); len(f) != 0 {
		ew.println("")
		ew.println("## GPS Raw")
		ew.fields(f)
	}
	return ew.err
}

// Sdump returns the Fdump report of im as a string.
func Sdump(im *Image) string {
	buf := new(bytes.Buffer)
	Fdump(buf, im)
	return buf.String()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) println(s string) {
	if w.err == nil {
		_, w.err = fmt.Fprintln(w.w, s)
	}
}

func (w *errWriter) pretty(key string, value interface{}) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, "%-20s: %v\n", key, value)
	}
}

func (w *errWriter) fields(v []exif.Field) {
	for _, f := range v {
		w.pretty(f.Name, fieldValue(f))
	}
}

// fieldValue returns the value of f for display.
func fieldValue(f exif.Field) interface{} {
	if s, ok := exif.Ascii(f.Tag); ok {
		return s
	}
	if f.Tag.Format() != tiff.RatVal {
		return f.Tag
	}
	if r, err := exif.Rationals(f.Tag); err == nil {
		if len(r) == 1 {
			return r[0]
		}
		return r
	}
	return f.Tag
}

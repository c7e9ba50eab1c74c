package exif

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rwcarlsen/goexif/tiff"

	"github.com/tajtiattila/gpsimage/exif/exiftag"
)

// Fdump writes the entries of x to w, grouped by directory.
func Fdump(w io.Writer, x *Exif) {
	showTags(w, "IFD0", exiftag.Tiff, x.IFD0)
	showTags(w, "IFD1", exiftag.Tiff, x.IFD1)
	showTags(w, "Exif", exiftag.Exif, x.Exif)
	showTags(w, "GPS", exiftag.GPS, x.GPS)
	showTags(w, "Interop", exiftag.Interop, x.Interop)
}

// Sdump returns the Fdump output as a string.
func Sdump(x *Exif) string {
	buf := new(bytes.Buffer)
	Fdump(buf, x)
	return buf.String()
}

func showTags(w io.Writer, pfx string, dir uint32, d Dir) {
	if len(d) == 0 {
		return
	}
	fmt.Fprintln(w, pfx+":")
	for _, tag := range d {
		s := fmtName(dir, tag.Id, 20)
		fmt.Fprintf(w, "  %s %s: %v\n", s, fmtType(tag.Type, tag.Count), tag)
	}
}

func fmtName(dir uint32, tag uint16, maxlen int) string {
	id := exiftag.Id(dir | uint32(tag))
	return fmt.Sprintf("%04x %-*.*s", tag, maxlen, maxlen, id)
}

func fmtType(typ tiff.DataType, count uint32) string {
	var n string
	switch typ {
	case tiff.DTByte:
		n = "b"
	case tiff.DTAscii:
		n = "a"
	case tiff.DTShort:
		n = "s"
	case tiff.DTLong:
		n = "l"
	case tiff.DTRational:
		n = "r"
	case tiff.DTUndefined:
		n = "u"
	case tiff.DTSLong:
		n = "L"
	case tiff.DTSRational:
		n = "R"
	case tiff.DTSByte:
		n = "B"
	case tiff.DTSShort:
		n = "S"
	case tiff.DTFloat, tiff.DTDouble:
		n = "f"
	default:
		n = "?"
	}
	return fmt.Sprintf("%d%s", count, n)
}

package exif

import (
	"encoding/binary"
	"testing"

	"github.com/tajtiattila/gpsimage/exif/exiftag"
	"github.com/tajtiattila/gpsimage/testutil"
)

func decodeTest(t *testing.T, src *testutil.Exif) *Exif {
	x, err := DecodeBytes(src.EncodeBytes())
	if err != nil {
		t.Fatal("DecodeBytes:", err)
	}
	return x
}

func TestResolve(t *testing.T) {
	x := decodeTest(t, testutil.GPSExif(
		testutil.DMS(45, 24, 47, 1), "N",
		testutil.DMS(75, 39, 24, 1), "W").
		Set(exiftag.DateTimeOriginal, testutil.Ascii("2014:11:29 10:12:13")))

	f := func(name string, want string) {
		tag := x.Resolve(name)
		switch {
		case want == "" && tag != nil:
			t.Errorf("Resolve(%q) got %v, want nil", name, tag)
		case want != "" && tag == nil:
			t.Errorf("Resolve(%q) got nil, want %q", name, want)
		case want != "":
			if s, ok := Ascii(tag); !ok || s != want {
				t.Errorf("Resolve(%q) got %q, want %q", name, s, want)
			}
		}
	}

	f("GPSLatitudeRef", "N")
	f("GPSLongitudeRef", "W")
	f("Make", "gpsimage")
	f("DateTimeOriginal", "2014:11:29 10:12:13")

	// known but missing
	f("GPSMapDatum", "")
	f("Model", "")

	// unknown names
	f("GPSNoSuchTag", "")
	f("NoSuchTag", "")

	// GPSInfo is a primary image tag, but the name selects the GPS directory
	f("GPSInfo", "")

	// Interop tags are not part of the main directories
	f("InteroperabilityIndex", "")

	if tag := x.Resolve("GPSLatitude"); tag == nil || tag.Count != 3 {
		t.Errorf("Resolve(GPSLatitude) got %v, want 3 rationals", tag)
	}
}

func TestFields(t *testing.T) {
	x := decodeTest(t, testutil.NewExif(binary.LittleEndian).
		Set(exiftag.Model, testutil.Ascii("M")).
		Set(exiftag.GPSSatellites, testutil.Ascii("7")).
		Set(exiftag.Make, testutil.Ascii("X")).
		Set(exiftag.FNumber, testutil.Rational{28, 10}).
		Set(exiftag.GPSMapDatum, testutil.Ascii("WGS-84")).
		SetRaw(exiftag.GPS, testutil.Entry{Tag: 0x7fff, Type: testutil.TypeShort, Count: 1, Value: []byte{1, 0}}))

	testFieldNames(t, "MainFields", x.MainFields(),
		"Model", "Make", "ExifOffset", "GPSInfo", "FNumber")
	testFieldNames(t, "GPSFields", x.GPSFields(),
		"GPSSatellites", "GPSMapDatum", "Tag7FFF")

	if v := x.Fields(exiftag.Interop); v != nil {
		t.Errorf("Interop fields got %v, want nil", v)
	}
	if v := x.Fields(0x12345678); v != nil {
		t.Errorf("invalid directory fields got %v, want nil", v)
	}
}

func testFieldNames(t *testing.T, pfx string, v []Field, want ...string) {
	if len(v) != len(want) {
		t.Errorf("%s got %d fields, want %d", pfx, len(v), len(want))
		return
	}
	for i, f := range v {
		if f.Name != want[i] {
			t.Errorf("%s field %d is %q, want %q", pfx, i, f.Name, want[i])
		}
		if f.Tag == nil {
			t.Errorf("%s field %q has no tag", pfx, f.Name)
		}
	}
}

package gpsimage

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/tajtiattila/gpsimage/exif"
	"github.com/tajtiattila/gpsimage/exif/exiftag"
	"github.com/tajtiattila/gpsimage/testutil"
)

const eps = 1e-5

func TestDivide(t *testing.T) {
	f := func(num, den int64, want float64, wantok bool) {
		got, ok := Divide(exif.Rational{Num: num, Den: den})
		if ok != wantok {
			t.Errorf("Divide(%d/%d) ok=%v, want %v", num, den, ok, wantok)
			return
		}
		if got != want {
			t.Errorf("Divide(%d/%d) got %v, want %v", num, den, got, want)
		}
	}

	f(1, 2, 0.5, true)
	f(473, 10, 47.3, true)
	f(-5, 2, -2.5, true)
	f(0, 7, 0, true)
	f(0, 0, 0, true)
	f(5, 0, 0, false)
	f(-5, 0, 0, false)
}

func TestDMSToDecimal(t *testing.T) {
	dms := func(v ...int64) []exif.Rational {
		var r []exif.Rational
		for i := 0; i+1 < len(v); i += 2 {
			r = append(r, exif.Rational{Num: v[i], Den: v[i+1]})
		}
		return r
	}

	f := func(v []exif.Rational, ref string, want float64, wantok bool) {
		got, ok := DMSToDecimal(v, ref)
		if ok != wantok {
			t.Errorf("DMSToDecimal(%v, %q) ok=%v, want %v", v, ref, ok, wantok)
			return
		}
		if math.Abs(got-want) > eps {
			t.Errorf("DMSToDecimal(%v, %q) got %v, want %v", v, ref, got, want)
		}
	}

	f(dms(45, 1, 24, 1, 473, 10), "N", 45.41314, true)
	f(dms(45, 1, 24, 1, 473, 10), "S", -45.41314, true)
	f(dms(75, 1, 39, 1, 24, 1), "W", -75.65667, true)
	f(dms(75, 1, 39, 1, 24, 1), "E", 75.65667, true)
	f(dms(4541314, 100000, 0, 1, 0, 1), "N", 45.41314, true)
	f(dms(0, 0, 0, 0, 0, 0), "S", 0, true)

	// unknown references are positive
	f(dms(10, 1, 30, 1, 0, 1), "X", 10.5, true)
	f(dms(10, 1, 30, 1, 0, 1), "", 10.5, true)
	f(dms(10, 1, 30, 1, 0, 1), "s", 10.5, true)

	// wrong arity
	f(dms(45, 1, 24, 1), "N", 0, false)
	f(dms(45, 1, 24, 1, 47, 1, 0, 1), "N", 0, false)
	f(nil, "N", 0, false)

	// invalid component
	f(dms(45, 1, 24, 0, 47, 1), "N", 0, false)
}

func TestDMSSignSymmetry(t *testing.T) {
	for _, v := range [][]exif.Rational{
		{{Num: 45, Den: 1}, {Num: 24, Den: 1}, {Num: 473, Den: 10}},
		{{Num: 0, Den: 1}, {Num: 0, Den: 1}, {Num: 1, Den: 100}},
		{{Num: 179, Den: 1}, {Num: 59, Den: 1}, {Num: 5999, Den: 100}},
		{{Num: 12, Den: 1}, {Num: 0, Den: 0}, {Num: 30, Den: 1}},
	} {
		testSignSymmetry(t, v, "N", "S")
		testSignSymmetry(t, v, "E", "W")
	}
}

func testSignSymmetry(t *testing.T, v []exif.Rational, pos, neg string) {
	p, pok := DMSToDecimal(v, pos)
	n, nok := DMSToDecimal(v, neg)
	if !pok || !nok {
		t.Errorf("DMSToDecimal(%v) failed", v)
		return
	}
	if p != -n {
		t.Errorf("DMSToDecimal(%v, %q) = %v is not the opposite of %q = %v", v, pos, p, neg, n)
	}
}

func TestCoordinates(t *testing.T) {
	x := testutil.GPSExif(
		testutil.DMS(45, 24, 47, 1), "N",
		testutil.DMS(75, 39, 24, 1), "W")
	im := testJPEG(t, x)

	testFloat(t, "Latitude", im.Latitude, 45.41306)
	testFloat(t, "Longitude", im.Longitude, -75.65667)
	testFloat(t, "Y", im.Y, 45.41306)
	testFloat(t, "X", im.X, -75.65667)

	if !im.IsFixed() {
		t.Error("IsFixed is false")
	}
	if s := im.Status(); s != OK {
		t.Errorf("Status is %v, want %v", s, OK)
	}

	p := im.Geometry()
	if p == nil {
		t.Fatal("Geometry is nil")
	}
	if p.Type != "POINT" {
		t.Errorf("Geometry type is %q", p.Type)
	}
	lat, _ := im.Latitude()
	lng, _ := im.Longitude()
	if p.Coordinates != [2]float64{lng, lat} {
		t.Errorf("Geometry coordinates are %v, want [%v %v]", p.Coordinates, lng, lat)
	}
}

func TestZeroFix(t *testing.T) {
	x := testutil.GPSExif(
		testutil.DMS(0, 0, 0, 1), "N",
		testutil.Rational{0, 0, 0, 0, 0, 0}, "E")
	im := testJPEG(t, x)

	testFloat(t, "Latitude", im.Latitude, 0)
	testFloat(t, "Longitude", im.Longitude, 0)

	if !im.IsFixed() {
		t.Error("IsFixed is false for 0, 0")
	}
	if s := im.Status(); s != OK {
		t.Errorf("Status is %v, want %v", s, OK)
	}
	if p := im.Geometry(); p == nil || p.Coordinates != [2]float64{0, 0} {
		t.Errorf("Geometry is %v", p)
	}
}

func TestMissingCoordinates(t *testing.T) {
	f := func(name string, x *testutil.Exif) {
		im := testJPEG(t, x)
		if _, err := im.Latitude(); !IsNotPresent(err) {
			t.Errorf("%s: Latitude error is %v, want %v", name, err, ErrNotPresent)
		}
		if im.IsFixed() {
			t.Errorf("%s: IsFixed is true", name)
		}
		if p := im.Geometry(); p != nil {
			t.Errorf("%s: Geometry is %v, want nil", name, p)
		}
		if _, ok := im.Fix(); ok {
			t.Errorf("%s: Fix is available", name)
		}
		if s := im.Status(); s != NoGeometry {
			t.Errorf("%s: Status is %v, want %v", name, s, NoGeometry)
		}
	}

	lon := testutil.DMS(75, 39, 24, 1)

	x := testutil.NewExif(binary.BigEndian).
		Set(exiftag.Make, testutil.Ascii("gpsimage")).
		Set(exiftag.GPSLongitudeRef, testutil.Ascii("W")).
		Set(exiftag.GPSLongitude, lon)
	f("no latitude", x)

	x = testutil.NewExif(binary.BigEndian).
		Set(exiftag.Make, testutil.Ascii("gpsimage")).
		Set(exiftag.GPSLatitude, testutil.DMS(45, 24, 47, 1)).
		Set(exiftag.GPSLongitudeRef, testutil.Ascii("W")).
		Set(exiftag.GPSLongitude, lon)
	f("no latitude ref", x)

	f("two values", testutil.GPSExif(testutil.Rational{45, 1, 24, 1}, "N", lon, "W"))
	f("four values", testutil.GPSExif(testutil.Rational{45, 1, 24, 1, 47, 1, 0, 1}, "N", lon, "W"))
	f("zero denominator", testutil.GPSExif(testutil.Rational{45, 1, 24, 0, 47, 1}, "N", lon, "W"))
}

func TestCoordinateDecodeError(t *testing.T) {
	x := testutil.NewExif(binary.BigEndian).
		Set(exiftag.Make, testutil.Ascii("gpsimage")).
		Set(exiftag.GPSLatitudeRef, testutil.Ascii("N")).
		Set(exiftag.GPSLatitude, testutil.Ascii("45.5")).
		Set(exiftag.GPSLongitudeRef, testutil.Ascii("E")).
		Set(exiftag.GPSLongitude, testutil.DMS(10, 0, 0, 1))
	im := testJPEG(t, x)

	_, err := im.Latitude()
	fe, ok := err.(*FieldError)
	if !ok {
		t.Fatalf("Latitude error is %v, want *FieldError", err)
	}
	if fe.Field != "GPSLatitude" || errors.Cause(fe.Err) != exif.ErrNotRational {
		t.Errorf("unexpected field error %v", fe)
	}

	// other fields are unaffected
	testFloat(t, "Longitude", im.Longitude, 10)
	if im.IsFixed() {
		t.Error("IsFixed is true")
	}
}

func TestIntegerCoordinates(t *testing.T) {
	x := testutil.NewExif(binary.LittleEndian).
		Set(exiftag.Make, testutil.Ascii("gpsimage")).
		Set(exiftag.GPSLatitudeRef, testutil.Ascii("S")).
		Set(exiftag.GPSLatitude, testutil.Short{33, 52, 4}).
		Set(exiftag.GPSLongitudeRef, testutil.Ascii("E")).
		Set(exiftag.GPSLongitude, testutil.Long{151, 12, 36})
	im := testJPEG(t, x)

	testFloat(t, "Latitude", im.Latitude, -(33 + 52.0/60 + 4.0/3600))
	testFloat(t, "Longitude", im.Longitude, 151.21)
}

func TestFix(t *testing.T) {
	x := testutil.GPSExif(
		testutil.DMS(47, 29, 54, 1), "N",
		testutil.DMS(19, 2, 25, 1), "E").
		Set(exiftag.GPSAltitudeRef, testutil.Byte{0}).
		Set(exiftag.GPSAltitude, testutil.Rational{14204, 100}).
		Set(exiftag.GPSImgDirectionRef, testutil.Ascii("T")).
		Set(exiftag.GPSImgDirection, testutil.Rational{27150, 100}).
		Set(exiftag.GPSSatellites, testutil.Ascii("07")).
		Set(exiftag.GPSMapDatum, testutil.Ascii("TOKYO"))
	im := testJPEG(t, x)

	testFloat(t, "Altitude", im.Altitude, 142.04)
	testFloat(t, "Direction", im.Direction, 271.5)
	if d := im.Datum(); d != "TOKYO" {
		t.Errorf("Datum is %q, want %q", d, "TOKYO")
	}
	if n, err := im.Satellites(); err != nil || n != 7 {
		t.Errorf("Satellites got %v, %v; want 7", n, err)
	}

	f, ok := im.Fix()
	if !ok {
		t.Fatal("Fix is not available")
	}
	if f.Altitude == nil || math.Abs(*f.Altitude-142.04) > eps {
		t.Errorf("Fix altitude is %v", f.Altitude)
	}
	if f.Direction == nil || math.Abs(*f.Direction-271.5) > eps {
		t.Errorf("Fix direction is %v", f.Direction)
	}
	if f.Satellites == nil || *f.Satellites != 7 {
		t.Errorf("Fix satellites is %v", f.Satellites)
	}
	if f.Datum != "TOKYO" {
		t.Errorf("Fix datum is %q", f.Datum)
	}
}

func TestOptionalFields(t *testing.T) {
	x := testutil.GPSExif(
		testutil.DMS(1, 2, 3, 1), "N",
		testutil.DMS(4, 5, 6, 1), "E").
		Set(exiftag.GPSAltitude, testutil.Rational{0, 0}).
		Set(exiftag.GPSImgDirection, testutil.Rational{5, 0}).
		Set(exiftag.GPSMapDatum, testutil.Ascii("  ")).
		Set(exiftag.GPSSatellites, testutil.Ascii("many"))
	im := testJPEG(t, x)

	// 0/0 is a defined zero
	testFloat(t, "Altitude", im.Altitude, 0)

	if _, err := im.Direction(); !IsNotPresent(err) {
		t.Errorf("Direction error is %v, want %v", err, ErrNotPresent)
	}

	if d := im.Datum(); d != DefaultDatum {
		t.Errorf("Datum is %q, want %q", d, DefaultDatum)
	}

	_, err := im.Satellites()
	if fe, ok := err.(*FieldError); !ok || fe.Field != "GPSSatellites" {
		t.Errorf("Satellites error is %v, want *FieldError", err)
	}
	if IsNotPresent(err) {
		t.Error("Satellites parse error reported as not present")
	}

	f, ok := im.Fix()
	if !ok {
		t.Fatal("Fix is not available")
	}
	if f.Altitude == nil || *f.Altitude != 0 {
		t.Errorf("Fix altitude is %v, want 0", f.Altitude)
	}
	if f.Direction != nil || f.Satellites != nil {
		t.Errorf("Fix has unexpected direction or satellites: %+v", f)
	}
}

func TestAbsentFields(t *testing.T) {
	im := testJPEG(t, testutil.NewExif(nil).Set(exiftag.Make, testutil.Ascii("gpsimage")))

	for _, f := range []struct {
		name string
		get  func() (float64, error)
	}{
		{"Latitude", im.Latitude},
		{"Longitude", im.Longitude},
		{"Altitude", im.Altitude},
		{"Direction", im.Direction},
	} {
		if _, err := f.get(); !IsNotPresent(err) {
			t.Errorf("%s error is %v, want %v", f.name, err, ErrNotPresent)
		}
	}
	if _, err := im.Satellites(); !IsNotPresent(err) {
		t.Errorf("Satellites error is %v, want %v", err, ErrNotPresent)
	}
	if d := im.Datum(); d != DefaultDatum {
		t.Errorf("Datum is %q, want %q", d, DefaultDatum)
	}
	if s := im.Status(); s != NoGPSInfo {
		t.Errorf("Status is %v, want %v", s, NoGPSInfo)
	}
}

func TestStatus(t *testing.T) {
	gps := testutil.GPSExif(
		testutil.DMS(45, 24, 47, 1), "N",
		testutil.DMS(75, 39, 24, 1), "W")
	full := decodeExif(t, gps)

	f := func(name string, x *exif.Exif, want Status) {
		if got := FromExif(x).Status(); got != want {
			t.Errorf("%s: Status is %v, want %v", name, got, want)
		}
	}

	f("full", full, OK)
	f("nil", nil, NoExif)
	f("empty", new(exif.Exif), NoExif)

	// GPS directory without primary entries
	f("gps only", &exif.Exif{GPS: full.GPS}, NoExif)

	f("no gps", &exif.Exif{IFD0: full.IFD0}, NoGPSInfo)

	// GPS directory without latitude
	var partial exif.Dir
	for _, e := range full.GPS {
		if e.Id != exiftag.Id(exiftag.GPSLatitude).Tag() {
			partial = append(partial, e)
		}
	}
	f("no geometry", &exif.Exif{IFD0: full.IFD0, GPS: partial}, NoGeometry)
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{
		OK:         "OK",
		NoExif:     "ERROR - Exif not found",
		NoGPSInfo:  "ERROR - No GPS Info",
		NoGeometry: "ERROR - No Geometry",
		Status(42): "ERROR - Unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("Status(%d) is %q, want %q", int(s), got, want)
		}
	}
}

func testFloat(t *testing.T, name string, f func() (float64, error), want float64) {
	got, err := f()
	if err != nil {
		t.Errorf("%s error: %v", name, err)
		return
	}
	if math.Abs(got-want) > eps {
		t.Errorf("%s got %v, want %v", name, got, want)
	}
}

// testJPEG returns the Image of a jpeg file with Exif x.
func testJPEG(t *testing.T, x *testutil.Exif, opt ...Option) *Image {
	p := testutil.JPEG(8, 8, x.EncodeBytes())
	im, err := Decode(bytes.NewReader(p), opt...)
	if err != nil {
		t.Fatal("Decode:", err)
	}
	return im
}

func decodeExif(t *testing.T, x *testutil.Exif) *exif.Exif {
	ex, err := exif.DecodeBytes(x.EncodeBytes())
	if err != nil {
		t.Fatal("DecodeBytes:", err)
	}
	return ex
}

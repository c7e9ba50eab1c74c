package gpsimage

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tajtiattila/gpsimage/exif"
)

// ErrNotPresent is returned by accessors for fields
// missing from the image or holding invalid values.
var ErrNotPresent = errors.New("gpsimage: field not present")

// IsNotPresent reports whether err means that the field is absent.
func IsNotPresent(err error) bool {
	return errors.Cause(err) == ErrNotPresent
}

var errNotAscii = errors.New("value is not a string")

// FieldError records a field that could not be decoded.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "gpsimage: " + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// DefaultDatum is reported by Datum when the image has none.
const DefaultDatum = "WGS-84"

// Divide returns the value of r.
//
// 0/0 is zero, it is used for unset values by some cameras.
// Other values with a zero denominator are invalid,
// and Divide returns false for them.
func Divide(r exif.Rational) (float64, bool) {
	if r.Den == 0 {
		return 0, r.Num == 0
	}
	return float64(r.Num) / float64(r.Den), true
}

// DMSToDecimal converts degrees, minutes and seconds in dms
// to decimal degrees. The result is negative if ref is "S" or "W".
// Other references, including unknown ones, yield positive values.
//
// DMSToDecimal returns false if dms does not hold exactly three values,
// or if any of them is invalid.
func DMSToDecimal(dms []exif.Rational, ref string) (float64, bool) {
	if len(dms) != 3 {
		return 0, false
	}
	d, ok1 := Divide(dms[0])
	m, ok2 := Divide(dms[1])
	s, ok3 := Divide(dms[2])
	if !(ok1 && ok2 && ok3) {
		return 0, false
	}

	v := d + m/60 + s/3600
	switch ref {
	case "S", "W":
		v = -v
	}
	return v, true
}

func (im *Image) rationals(name string) ([]exif.Rational, error) {
	t := im.x.Resolve(name)
	if t == nil {
		return nil, ErrNotPresent
	}
	v, err := exif.Rationals(t)
	if err != nil {
		return nil, &FieldError{name, err}
	}
	return v, nil
}

func (im *Image) ascii(name string) (string, error) {
	t := im.x.Resolve(name)
	if t == nil {
		return "", ErrNotPresent
	}
	s, ok := exif.Ascii(t)
	if !ok {
		return "", &FieldError{name, errNotAscii}
	}
	return s, nil
}

// text is like ascii but empty values are absent.
func (im *Image) text(name string) (string, error) {
	s, err := im.ascii(name)
	if err == nil && s == "" {
		err = ErrNotPresent
	}
	return s, err
}

// divide returns the value of a single rational field.
func (im *Image) divide(name string) (float64, error) {
	v, err := im.rationals(name)
	if err != nil {
		return 0, err
	}
	if len(v) != 1 {
		return 0, ErrNotPresent
	}
	f, ok := Divide(v[0])
	if !ok {
		return 0, ErrNotPresent
	}
	return f, nil
}

func (im *Image) coordinate(name, refName string) (float64, error) {
	dms, err := im.rationals(name)
	if err != nil {
		return 0, err
	}
	ref, err := im.ascii(refName)
	if err != nil {
		return 0, err
	}
	v, ok := DMSToDecimal(dms, ref)
	if !ok {
		return 0, ErrNotPresent
	}
	return v, nil
}

// Latitude returns the latitude of the image position
// in decimal degrees. North is positive.
func (im *Image) Latitude() (float64, error) {
	return im.coordinate("GPSLatitude", "GPSLatitudeRef")
}

// Longitude returns the longitude of the image position
// in decimal degrees. East is positive.
func (im *Image) Longitude() (float64, error) {
	return im.coordinate("GPSLongitude", "GPSLongitudeRef")
}

// Y is the same as Latitude.
func (im *Image) Y() (float64, error) { return im.Latitude() }

// X is the same as Longitude.
func (im *Image) X() (float64, error) { return im.Longitude() }

// Altitude returns the altitude of the image position.
// The value is used as recorded, GPSAltitudeRef is not applied.
func (im *Image) Altitude() (float64, error) {
	return im.divide("GPSAltitude")
}

// Direction returns the direction of the image in degrees.
func (im *Image) Direction() (float64, error) {
	return im.divide("GPSImgDirection")
}

// Datum returns the geodetic datum of the position,
// or DefaultDatum if it is not recorded.
func (im *Image) Datum() string {
	s, err := im.text("GPSMapDatum")
	if err != nil {
		return DefaultDatum
	}
	return s
}

// Satellites returns the number of satellites used for the fix.
func (im *Image) Satellites() (int, error) {
	s, err := im.text("GPSSatellites")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FieldError{"GPSSatellites", err}
	}
	return n, nil
}

// IsFixed reports whether both latitude and longitude are available.
// Zero is a valid value for either of them.
func (im *Image) IsFixed() bool {
	_, laterr := im.Latitude()
	_, lngerr := im.Longitude()
	return laterr == nil && lngerr == nil
}

// Point is a GeoJSON style point.
type Point struct {
	Type string `json:"type"`

	// Coordinates holds longitude and latitude, in that order.
	Coordinates [2]float64 `json:"coordinates"`
}

// Geometry returns the image position, or nil if it is not fixed.
func (im *Image) Geometry() *Point {
	lat, laterr := im.Latitude()
	lng, lngerr := im.Longitude()
	if laterr != nil || lngerr != nil {
		return nil
	}
	return &Point{
		Type:        "POINT",
		Coordinates: [2]float64{lng, lat},
	}
}

// Fix is the decoded GPS position of an image.
type Fix struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Datum     string  `json:"datum"`

	// optional values
	Altitude   *float64 `json:"altitude,omitempty"`
	Direction  *float64 `json:"direction,omitempty"`
	Satellites *int     `json:"satellites,omitempty"`
}

// Fix returns the GPS fix of im.
// It returns false if im has no position.
func (im *Image) Fix() (Fix, bool) {
	lat, laterr := im.Latitude()
	lng, lngerr := im.Longitude()
	if laterr != nil || lngerr != nil {
		return Fix{}, false
	}

	f := Fix{
		Latitude:  lat,
		Longitude: lng,
		Datum:     im.Datum(),
	}
	if v, err := im.Altitude(); err == nil {
		f.Altitude = &v
	}
	if v, err := im.Direction(); err == nil {
		f.Direction = &v
	}
	if n, err := im.Satellites(); err == nil {
		f.Satellites = &n
	}
	return f, true
}

package exif

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rwcarlsen/goexif/tiff"
)

// ErrNotRational is returned by Rationals for entries
// that hold no numeric values.
var ErrNotRational = errors.New("exif: value is not numeric")

// Rational is an unsigned or signed Exif rational value.
type Rational struct {
	Num, Den int64
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Rationals returns the values of t as rationals.
// Integer entries are returned with a denominator of 1.
//
// Rationals returns nil for a nil t.
func Rationals(t *tiff.Tag) ([]Rational, error) {
	if t == nil {
		return nil, nil
	}

	v := make([]Rational, int(t.Count))
	switch t.Format() {
	case tiff.RatVal:
		for i := range v {
			num, den, err := t.Rat2(i)
			if err != nil {
				return nil, errors.Wrapf(ErrNotRational, "tag %04x: %v", t.Id, err)
			}
			v[i] = Rational{num, den}
		}
	case tiff.IntVal:
		for i := range v {
			n, err := t.Int64(i)
			if err != nil {
				return nil, errors.Wrapf(ErrNotRational, "tag %04x: %v", t.Id, err)
			}
			v[i] = Rational{n, 1}
		}
	default:
		return nil, errors.Wrapf(ErrNotRational, "tag %04x", t.Id)
	}
	return v, nil
}

// Ascii returns the string value of t with surrounding
// white space removed. It returns false if t is nil or
// is not an ASCII entry.
func Ascii(t *tiff.Tag) (string, bool) {
	if t == nil {
		return "", false
	}
	s, err := t.StringVal()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(strings.TrimRight(s, "\x00")), true
}

package gpsimage

import (
	"strings"
	"sync"
	"time"

	"github.com/bradfitz/latlong"
	"github.com/pkg/errors"
)

// Time is like time.Time but records the precision
// (year, month, day, hour, minute, second or subsecond)
// from the parsed value and whether a time zone was
// specified.
type Time struct {
	// Actual time value.
	// Its location is time.Local if ZoneKnown is false.
	time.Time

	// Prec records the number of valid components
	// from the beginning of the RFC3339 format.
	// Exif date/time values have a precision of 6.
	//  0: invalid
	//  1: yyyy
	//  2: yyyy-mm
	//  3: yyyy-mm-dd
	//  4: yyyy-mm-ddThh
	//  5: yyyy-mm-ddThh:mm
	//  6: yyyy-mm-ddThh:mm:ss
	//  7: yyyy-mm-ddThh:mm:ss.ss
	Prec int

	// ZoneKnown is true if source has a specific time zone.
	ZoneKnown bool
}

// ParseTime parses a time string based on the RFC 3339 format,
// possibly truncated and with or without a time zone.
// The Exif format "2006:01:02 15:04:05" is also accepted.
func ParseTime(s string) Time {
	tp := timeParser{p: s}

	// TODO: limit length of elements so that
	// 20060102T000000 is not parsed as year 20060102

	year := tp.val(":-")
	month := tp.xval(":-")
	day := tp.xval("tT ")

	if tp.prec == 0 {
		return Time{}
	}

	hour := tp.val(":")
	min := tp.val(":")
	sec := tp.val(".")

	nsec, ndenom, ok := tp.rat("")
	if ok {
		for ndenom < 1e9 {
			nsec, ndenom = nsec*10, ndenom*10
		}
	}

	loc := tp.loc()

	return Time{
		Time:      time.Date(year, time.Month(month), day, hour, min, sec, nsec, loc),
		Prec:      tp.prec,
		ZoneKnown: tp.zoneknown,
	}
}

// In returns t with the location information set to loc.
// If t.ZoneKnown was false, the time.Time of the result will have
// the same Date() and Clock() as before and its ZoneKnown set.
//
// In panics if loc is nil.
func (t Time) In(loc *time.Location) Time {
	if t.ZoneKnown {
		t.Time = t.Time.In(loc)
		return t
	}

	// Zone was not known beforehand.
	// Store old and new offset and adjust time value as needed.
	_, o0 := t.Time.Zone()
	t.Time = t.Time.In(loc)
	_, o1 := t.Time.Zone()
	t.Time = t.Time.Add(time.Duration(o0-o1) * time.Second)
	t.ZoneKnown = true
	return t
}

type timeParser struct {
	p string
	r int

	prec      int
	zoneknown bool

	done bool
}

func (p *timeParser) val(sep string) int {
	r, _, _ := p.rat(sep)
	return r
}

func (p *timeParser) xval(sep string) int {
	r, _, ok := p.rat(sep)
	if !ok {
		r = 1
	}
	return r
}

func (p *timeParser) rat(sep string) (num, denom int, ok bool) {
	if p.done {
		return 0, 1, false
	}
	start := p.r
	denom = 1
	for ; p.r < len(p.p); p.r++ {
		c := p.p[p.r]
		if '0' <= c && c <= '9' {
			if denom < 1e9 {
				num = num*10 + int(c-'0')
				denom *= 10
			}
		} else {
			break
		}
	}
	if start == p.r {
		p.done = true
		return 0, 1, false
	}
	p.prec++
	if sep != "" {
		p.sep(sep)
	}
	return num, denom, true
}

func (p *timeParser) sep(chars string) {
	if p.done {
		return
	}
	if p.r < len(p.p) {
		for _, c := range chars {
			if rune(p.p[p.r]) == c {
				p.r++
				return
			}
		}
	}
	p.done = true
}

func (p *timeParser) loc() *time.Location {
	if p.r == len(p.p) {
		return time.Local
	}
	for _, l := range []string{
		"Z07:00",
		"Z0700",
		"Z07:00:00",
		"Z070000",
		"Z07",
	} {
		t, err := time.Parse(l, p.p[p.r:])
		if err == nil {
			p.zoneknown = true
			return t.Location()
		}
	}
	// can't parse location
	return time.Local
}

var timeFields = []struct {
	datetime, offset string
}{
	{"DateTimeOriginal", "OffsetTimeOriginal"},
	{"DateTimeDigitized", "OffsetTimeDigitized"},
	{"DateTime", "OffsetTime"},
}

// Timestamp returns the time the image was taken.
//
// DateTimeOriginal is used if present, otherwise DateTimeDigitized
// or DateTime. The time zone is taken from the corresponding offset field.
// Without an offset the zone at the image position is used,
// or the location set with the Location option.
func (im *Image) Timestamp() (Time, error) {
	for _, f := range timeFields {
		s, err := im.text(f.datetime)
		if IsNotPresent(err) || unsetTime(s) {
			continue
		}
		if err != nil {
			return Time{}, err
		}

		if off, err := im.text(f.offset); err == nil {
			s += off
		}

		t := ParseTime(s)
		if t.Prec == 0 {
			return Time{}, &FieldError{f.datetime, errors.Errorf("invalid time %q", s)}
		}
		if !t.ZoneKnown {
			t = t.In(im.zone())
		}
		return t, nil
	}
	return Time{}, ErrNotPresent
}

// unsetTime reports if s is empty or has only zero digits,
// such as "0000:00:00 00:00:00".
func unsetTime(s string) bool {
	return strings.Trim(s, "0: ") == ""
}

// zone returns the location for times without zone information.
func (im *Image) zone() *time.Location {
	if !im.zoneLookup {
		return im.loc
	}
	lat, laterr := im.Latitude()
	lng, lngerr := im.Longitude()
	if laterr != nil || lngerr != nil {
		return im.loc
	}
	name := latlong.LookupZoneName(lat, lng)
	if name == "" {
		return im.loc
	}
	loc, err := lookupLocation(name)
	if err != nil {
		im.log.WithError(err).WithField("zone", name).Warn("time zone lookup failed")
		return im.loc
	}
	return loc
}

var zoneCache struct {
	sync.RWMutex
	m map[string]*time.Location
}

func lookupLocation(zone string) (*time.Location, error) {
	zoneCache.RLock()
	l, ok := zoneCache.m[zone]
	zoneCache.RUnlock()
	if ok {
		return l, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}

	zoneCache.Lock()
	if zoneCache.m == nil {
		zoneCache.m = make(map[string]*time.Location)
	}
	zoneCache.m[zone] = loc
	zoneCache.Unlock()
	return loc, nil
}

// GPSTime returns the time of the GPS fix in UTC.
func (im *Image) GPSTime() (time.Time, error) {
	ds, err := im.text("GPSDateStamp")
	if err != nil {
		return time.Time{}, err
	}
	date, err := time.Parse("2006:01:02", ds)
	if err != nil {
		return time.Time{}, &FieldError{"GPSDateStamp", err}
	}

	hms, err := im.rationals("GPSTimeStamp")
	if err != nil {
		return time.Time{}, err
	}
	if len(hms) != 3 {
		return time.Time{}, ErrNotPresent
	}

	var d time.Duration
	for i, unit := range []time.Duration{time.Hour, time.Minute, time.Second} {
		r := hms[i]
		if r.Den == 0 {
			if r.Num != 0 {
				return time.Time{}, ErrNotPresent
			}
			continue
		}
		d += time.Duration(r.Num) * unit / time.Duration(r.Den)
	}
	return date.Add(d), nil
}

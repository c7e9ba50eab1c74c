package gpsimage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Attr is a decoded image attribute.
type Attr struct {
	Name  string
	Value interface{}
}

// attrs lists the attributes reported by Attrs, in order.
var attrs = []struct {
	name string
	get  func(im *Image) (interface{}, error)
}{
	{"altitude", func(im *Image) (interface{}, error) { return im.Altitude() }},
	{"basename", func(im *Image) (interface{}, error) { return nonEmpty(im.Basename()) }},
	{"datum", func(im *Image) (interface{}, error) { return im.Datum(), nil }},
	{"direction", func(im *Image) (interface{}, error) { return im.Direction() }},
	{"dpi", func(im *Image) (interface{}, error) { return im.DPI() }},
	{"geometry", func(im *Image) (interface{}, error) {
		if p := im.Geometry(); p != nil {
			return p, nil
		}
		return nil, ErrNotPresent
	}},
	{"height", func(im *Image) (interface{}, error) { return im.Height() }},
	{"make", func(im *Image) (interface{}, error) { return im.Make() }},
	{"model", func(im *Image) (interface{}, error) { return im.Model() }},
	{"satellites", func(im *Image) (interface{}, error) { return im.Satellites() }},
	{"size", func(im *Image) (interface{}, error) { return im.Size() }},
	{"status", func(im *Image) (interface{}, error) { return im.Status(), nil }},
	{"timestamp", func(im *Image) (interface{}, error) { return im.Timestamp() }},
	{"width", func(im *Image) (interface{}, error) { return im.Width() }},
}

func nonEmpty(s string) (interface{}, error) {
	if s == "" {
		return nil, ErrNotPresent
	}
	return s, nil
}

// Attrs returns the decoded attributes of im.
// Missing attributes and ones that fail to decode are left out.
func (im *Image) Attrs() []Attr {
	var v []Attr
	for _, a := range attrs {
		x, err := a.get(im)
		if err != nil {
			if !IsNotPresent(err) {
				im.log.WithError(err).WithField("attr", a.name).Debug("attribute skipped")
			}
			continue
		}
		v = append(v, Attr{a.name, x})
	}
	return v
}

// MarshalJSON encodes the attributes of im as a JSON object,
// with keys in the order of Attrs.
func (im *Image) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, a := range im.Attrs() {
		if i != 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Basename returns the last element of the image path,
// or an empty string if the image was not opened from a file.
func (im *Image) Basename() string {
	if im.path == "" {
		return ""
	}
	return filepath.Base(im.path)
}

func (im *Image) String() string {
	lat, laterr := im.Latitude()
	lng, lngerr := im.Longitude()
	if laterr != nil || lngerr != nil {
		return fmt.Sprintf("<gpsimage [%s]>", im.Status())
	}
	if n := im.Basename(); n != "" {
		return fmt.Sprintf("<gpsimage %s [%g, %g (%s)]>", n, lat, lng, im.Datum())
	}
	return fmt.Sprintf("<gpsimage [%g, %g (%s)]>", lat, lng, im.Datum())
}

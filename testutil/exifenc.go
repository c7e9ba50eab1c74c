package testutil

import (
	"encoding/binary"

	"github.com/tajtiattila/gpsimage/exif/exiftag"
)

// Exif field types
const (
	TypeByte      = 1
	TypeAscii     = 2
	TypeShort     = 3
	TypeLong      = 4
	TypeRational  = 5
	TypeSByte     = 6
	TypeUndef     = 7
	TypeSShort    = 8
	TypeSLong     = 9
	TypeSRational = 10
)

// Value is a value that can be stored in an Exif entry.
type Value interface {
	typ() uint16
	count() int
	put(bo binary.ByteOrder) []byte
}

// Byte, Undef and Ascii values are stored as is.
// Ascii values get their terminating NUL added.
type (
	Byte  []byte
	Undef []byte
	Ascii string
)

// Short and Long are lists of unsigned integers.
type (
	Short []uint16
	Long  []uint32
)

// Rational holds numerator/denominator pairs.
type Rational []uint32

// SRational holds signed numerator/denominator pairs.
type SRational []int32

func (v Byte) typ() uint16                    { return TypeByte }
func (v Byte) count() int                     { return len(v) }
func (v Byte) put(bo binary.ByteOrder) []byte { return []byte(v) }

func (v Undef) typ() uint16                    { return TypeUndef }
func (v Undef) count() int                     { return len(v) }
func (v Undef) put(bo binary.ByteOrder) []byte { return []byte(v) }

func (v Ascii) typ() uint16                    { return TypeAscii }
func (v Ascii) count() int                     { return len(v) + 1 }
func (v Ascii) put(bo binary.ByteOrder) []byte { return append([]byte(v), 0) }

func (v Short) typ() uint16 { return TypeShort }
func (v Short) count() int  { return len(v) }
func (v Short) put(bo binary.ByteOrder) []byte {
	p := make([]byte, 2*len(v))
	for i, x := range v {
		bo.PutUint16(p[2*i:], x)
	}
	return p
}

func (v Long) typ() uint16 { return TypeLong }
func (v Long) count() int  { return len(v) }
func (v Long) put(bo binary.ByteOrder) []byte {
	p := make([]byte, 4*len(v))
	for i, x := range v {
		bo.PutUint32(p[4*i:], x)
	}
	return p
}

func (v Rational) typ() uint16 { return TypeRational }
func (v Rational) count() int  { return len(v) / 2 }
func (v Rational) put(bo binary.ByteOrder) []byte {
	return Long(v[:2*v.count()]).put(bo)
}

func (v SRational) typ() uint16 { return TypeSRational }
func (v SRational) count() int  { return len(v) / 2 }
func (v SRational) put(bo binary.ByteOrder) []byte {
	p := make([]byte, 8*v.count())
	for i, x := range v[:2*v.count()] {
		bo.PutUint32(p[4*i:], uint32(x))
	}
	return p
}

// Entry is a raw IFD entry.
type Entry struct {
	Tag   uint16
	Type  uint16
	Count uint32
	Value []byte
}

// Exif builds raw Exif data for tests.
//
// Entries are encoded in the order they were added.
type Exif struct {
	ByteOrder binary.ByteOrder

	IFD0, Exif, GPS []Entry
}

// NewExif returns an empty Exif using byte order bo.
func NewExif(bo binary.ByteOrder) *Exif {
	return &Exif{ByteOrder: bo}
}

// Set adds the entry for the tag id (see package exiftag) with value v.
// It returns x so that calls may be chained.
func (x *Exif) Set(id uint32, v Value) *Exif {
	e := Entry{
		Tag:   exiftag.Id(id).Tag(),
		Type:  v.typ(),
		Count: uint32(v.count()),
		Value: v.put(x.byteOrder()),
	}
	switch exiftag.Id(id).Dir() {
	case exiftag.Exif:
		x.Exif = append(x.Exif, e)
	case exiftag.GPS:
		x.GPS = append(x.GPS, e)
	default:
		x.IFD0 = append(x.IFD0, e)
	}
	return x
}

// SetRaw adds e to directory dir. It is used to create malformed entries.
func (x *Exif) SetRaw(dir uint32, e Entry) *Exif {
	switch dir {
	case exiftag.Exif:
		x.Exif = append(x.Exif, e)
	case exiftag.GPS:
		x.GPS = append(x.GPS, e)
	default:
		x.IFD0 = append(x.IFD0, e)
	}
	return x
}

func (x *Exif) byteOrder() binary.ByteOrder {
	if x.ByteOrder == nil {
		return binary.BigEndian
	}
	return x.ByteOrder
}

const (
	ifd0exifSub = 0x8769
	ifd0gpsSub  = 0x8825
)

// EncodeBytes encodes x as a TIFF structured Exif block.
// Sub-IFD pointers are added to IFD0 as needed.
func (x *Exif) EncodeBytes() []byte {
	bo := x.byteOrder()

	ifd0 := append([]Entry(nil), x.IFD0...)

	subifd := []struct {
		idx int // within IFD0
		dir []Entry
	}{
		{-1, x.Exif},
		{-1, x.GPS},
	}
	subtags := []uint16{ifd0exifSub, ifd0gpsSub}
	for j := range subifd {
		sub := &subifd[j]
		if len(sub.dir) == 0 {
			continue
		}
		sub.idx = len(ifd0)
		ifd0 = append(ifd0, Entry{
			Tag:   subtags[j],
			Type:  TypeLong,
			Count: 1,
			Value: make([]byte, 4),
		})
	}

	// calculate offsets for sub-IFDs
	suboffset := 8 + encodedLen(ifd0)
	for _, sub := range subifd {
		if sub.idx != -1 {
			bo.PutUint32(ifd0[sub.idx].Value, uint32(suboffset))
			suboffset += encodedLen(sub.dir)
		}
	}

	p := make([]byte, suboffset)

	// write header
	if bo == binary.LittleEndian {
		p[0], p[1] = 'I', 'I'
	} else {
		p[0], p[1] = 'M', 'M'
	}
	bo.PutUint16(p[2:], 42)
	bo.PutUint32(p[4:], 8)

	offset := encodeDir(bo, p, 8, ifd0)
	for _, sub := range subifd {
		if sub.idx != -1 {
			offset = encodeDir(bo, p, offset, sub.dir)
		}
	}
	return p
}

func encodedLen(d []Entry) int {
	// tags and next IFD pointer
	n := 2 + len(d)*12 + 4
	for _, t := range d {
		if len(t.Value) > 4 {
			n += len(t.Value)
		}
	}
	return n
}

func encodeDir(bo binary.ByteOrder, p []byte, offset int, d []Entry) int {
	// offset for data outside tag header
	dataoffset := offset + 2 + len(d)*12 + 4

	bo.PutUint16(p[offset:], uint16(len(d)))
	offset += 2

	for _, t := range d {
		bo.PutUint16(p[offset:], t.Tag)
		bo.PutUint16(p[offset+2:], t.Type)
		bo.PutUint32(p[offset+4:], t.Count)
		if len(t.Value) <= 4 {
			copy(p[offset+8:], t.Value)
		} else {
			bo.PutUint32(p[offset+8:], uint32(dataoffset))
			copy(p[dataoffset:], t.Value)
			dataoffset += len(t.Value)
		}
		offset += 12
	}

	// next IFD pointer is left as zero
	return dataoffset
}

// DMS returns a rational triplet for whole degrees, minutes
// and seconds with the seconds scaled by secDenom.
func DMS(deg, min, sec, secDenom uint32) Rational {
	return Rational{deg, 1, min, 1, sec, secDenom}
}

// GPSExif returns an Exif with Make and a GPS fix
// using the provided coordinate values.
func GPSExif(lat Rational, latRef string, lon Rational, lonRef string) *Exif {
	x := NewExif(binary.BigEndian)
	x.Set(exiftag.Make, Ascii("gpsimage"))
	x.Set(exiftag.GPSVersionID, Byte{2, 2, 0, 0})
	x.Set(exiftag.GPSLatitudeRef, Ascii(latRef))
	x.Set(exiftag.GPSLatitude, lat)
	x.Set(exiftag.GPSLongitudeRef, Ascii(lonRef))
	x.Set(exiftag.GPSLongitude, lon)
	return x
}

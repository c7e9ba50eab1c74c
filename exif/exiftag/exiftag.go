// Package exiftag lists Exif and GPS tag identifiers and their names.
//
// A tag identifier combines the directory (Tiff, Exif, GPS or Interop)
// in the upper 16 bits with the 16-bit tag value of the IFD entry.
package exiftag

import "fmt"

// Directories.
const (
	Tiff    uint32 = 0 << 16 // IFD0 and IFD1
	Exif    uint32 = 1 << 16 // Exif sub-IFD
	GPS     uint32 = 2 << 16 // GPS sub-IFD
	Interop uint32 = 3 << 16 // Interoperability sub-IFD

	dirMask uint32 = 0xffff0000
)

// Id is a tag identifier.
type Id uint32

// Dir returns the directory of id.
func (id Id) Dir() uint32 { return uint32(id) & dirMask }

// Tag returns the IFD entry tag of id.
func (id Id) Tag() uint16 { return uint16(id) }

// String returns the name of id, or a hex representation
// for tags not known to this package.
func (id Id) String() string {
	if n, ok := names[uint32(id)]; ok {
		return n
	}
	return fmt.Sprintf("Tag%04X", id.Tag())
}

// Name returns the name of the tag tag within directory dir.
// It returns false if the tag is not known.
func Name(dir uint32, tag uint16) (string, bool) {
	n, ok := names[dir|uint32(tag)]
	return n, ok
}

// Lookup returns the identifier of the named tag.
func Lookup(name string) (id uint32, ok bool) {
	id, ok = ids[name]
	return id, ok
}

// Names returns the id → name table of directory dir.
// The returned map is a fresh copy.
func Names(dir uint32) map[uint16]string {
	m := make(map[uint16]string)
	for id, n := range names {
		if id&dirMask == dir {
			m[uint16(id)] = n
		}
	}
	return m
}

// ids is names inverted.
var ids = func() map[string]uint32 {
	m := make(map[string]uint32, len(names))
	for id, n := range names {
		m[n] = id
	}
	return m
}()

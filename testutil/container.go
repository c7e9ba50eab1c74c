package testutil

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
)

// Image returns a small test image of size dx×dy.
func Image(dx, dy int) image.Image {
	im := image.NewRGBA(image.Rect(0, 0, dx, dy))
	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			im.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	return im
}

var jpegExifPfx = []byte("Exif\x00\x00")

// JPEG returns a jpeg image of size dx×dy.
// If ex is not nil, it is stored in an APP1 Exif segment.
func JPEG(dx, dy int, ex []byte) []byte {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, Image(dx, dy), nil); err != nil {
		panic(err)
	}
	p := buf.Bytes()
	if ex == nil {
		return p
	}

	seg := make([]byte, 4, 4+len(jpegExifPfx)+len(ex))
	seg[0], seg[1] = 0xff, 0xe1
	binary.BigEndian.PutUint16(seg[2:], uint16(2+len(jpegExifPfx)+len(ex)))
	seg = append(seg, jpegExifPfx...)
	seg = append(seg, ex...)

	// insert after start of image
	return bytes.Join([][]byte{p[:2], seg, p[2:]}, nil)
}

// PNG returns a png image of size dx×dy.
// If ex is not nil, it is stored in an eXIf chunk.
func PNG(dx, dy int, ex []byte) []byte {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, Image(dx, dy)); err != nil {
		panic(err)
	}
	p := buf.Bytes()
	if ex == nil {
		return p
	}

	// signature and IHDR
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	return bytes.Join([][]byte{p[:ihdrEnd], PNGChunk("eXIf", ex), p[ihdrEnd:]}, nil)
}

// PNGChunk returns an encoded png chunk.
func PNGChunk(typ string, data []byte) []byte {
	p := make([]byte, 8, 12+len(data))
	binary.BigEndian.PutUint32(p, uint32(len(data)))
	copy(p[4:], typ)
	p = append(p, data...)
	crc := crc32.NewIEEE()
	crc.Write(p[4:])
	return append(p, crc.Sum(nil)...)
}

// RIFF returns a RIFF WEBP container holding the provided chunks
// as type, data pairs.
func RIFF(chunks ...interface{}) []byte {
	body := []byte("WEBP")
	for i := 0; i+1 < len(chunks); i += 2 {
		typ := chunks[i].(string)
		data := chunks[i+1].([]byte)
		hdr := make([]byte, 8)
		copy(hdr, typ)
		binary.LittleEndian.PutUint32(hdr[4:], uint32(len(data)))
		body = append(body, hdr...)
		body = append(body, data...)
		if len(data)%2 != 0 {
			body = append(body, 0)
		}
	}
	p := make([]byte, 8, 8+len(body))
	copy(p, "RIFF")
	binary.LittleEndian.PutUint32(p[4:], uint32(len(body)))
	return append(p, body...)
}

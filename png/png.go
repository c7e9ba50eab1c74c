// Package png finds Exif data in PNG files.
//
// Exif is read from the eXIf chunk, or from the hex encoded
// "Raw profile type exif" text chunks written by ImageMagick
// and older versions of exiftool.
package png

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"encoding/hex"
	"hash/crc32"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrNotPng   = errors.New("png: invalid signature")
	ErrChecksum = errors.New("png: invalid checksum")
)

// File holds the metadata found in a PNG file.
type File struct {
	// Exif is the content of the eXIf chunk, if any.
	Exif []byte

	// RawProfile is the decoded Exif raw profile from a text chunk.
	RawProfile []byte
}

const pngHeader = "\x89PNG\r\n\x1a\n"

var rawProfileKeywords = []string{
	"Raw profile type exif",
	"Raw profile type APP1",
}

// Parse reads chunks from r until the eXIf chunk or the end of the image.
func Parse(r io.Reader) (*File, error) {
	d := decoder{
		r:   r,
		tmp: make([]byte, 1<<16),
	}
	if err := d.decode(); err != nil {
		return nil, err
	}
	return &File{
		Exif:       d.exif,
		RawProfile: d.rawProfile,
	}, nil
}

type decoder struct {
	r   io.Reader
	tmp []byte

	exif       []byte
	rawProfile []byte
}

func (d *decoder) decode() error {
	_, err := io.ReadFull(d.r, d.tmp[:len(pngHeader)])
	if err != nil {
		return noEOF(err)
	}
	if string(d.tmp[:len(pngHeader)]) != pngHeader {
		return ErrNotPng
	}
	for {
		// Read the length and chunk type.
		_, err := io.ReadFull(d.r, d.tmp[:8])
		if err != nil {
			return noEOF(err)
		}
		length := binary.BigEndian.Uint32(d.tmp[:4])
		typ := string(d.tmp[4:8])
		switch typ {
		case "eXIf":
			p, err := d.readChunk(typ, length)
			if err != nil {
				return err
			}
			d.exif = p
			return nil
		case "zTXt", "iTXt", "tEXt":
			if d.rawProfile != nil {
				if err := d.skip(length + 4); err != nil {
					return err
				}
				break
			}
			p, err := d.readChunk(typ, length)
			if err != nil {
				return err
			}
			if err := d.decodeText(typ, p); err != nil {
				return err
			}
		case "IEND":
			return nil
		default:
			if err := d.skip(length + 4); err != nil {
				return err
			}
		}
	}
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (d *decoder) skip(length uint32) error {
	// length and CRC
	l := int(length)
	if s, ok := d.r.(io.Seeker); ok {
		_, err := s.Seek(int64(l), io.SeekCurrent)
		return err
	}
	for l > 0 {
		n := l
		if n > len(d.tmp) {
			n = len(d.tmp)
		}
		_, err := io.ReadFull(d.r, d.tmp[:n])
		if err != nil {
			return noEOF(err)
		}
		l -= n
	}
	return nil
}

// readChunk reads chunk data and verifies its checksum.
func (d *decoder) readChunk(typ string, length uint32) ([]byte, error) {
	const maxChunk = 1 << 24
	if length > maxChunk {
		return nil, errors.Errorf("png: %s chunk too large (%d bytes)", typ, length)
	}
	p := make([]byte, int(length))
	if _, err := io.ReadFull(d.r, p); err != nil {
		return nil, noEOF(err)
	}
	if _, err := io.ReadFull(d.r, d.tmp[:4]); err != nil {
		return nil, noEOF(err)
	}
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(p)
	if binary.BigEndian.Uint32(d.tmp[:4]) != crc.Sum32() {
		return nil, errors.Wrap(ErrChecksum, typ)
	}
	return p, nil
}

func (d *decoder) decodeText(typ string, p []byte) error {
	var (
		keyword string
		text    []byte
		err     error
	)
	switch typ {
	case "tEXt":
		i := bytes.IndexByte(p, 0)
		if i == -1 {
			return errors.New("png: invalid tEXt chunk")
		}
		keyword, text = string(p[:i]), p[i+1:]
	case "zTXt":
		i := bytes.IndexByte(p, 0)
		if i == -1 || i+2 > len(p) {
			return errors.New("png: invalid zTXt chunk")
		}
		keyword = string(p[:i])
		if !isRawProfile(keyword) {
			return nil
		}
		if p[i+1] != 0 {
			return errors.New("png: unsupported compression method")
		}
		if text, err = inflate(p[i+2:]); err != nil {
			return err
		}
	case "iTXt":
		h, n, err := decodeiTXtHeader(p)
		if err != nil {
			return err
		}
		keyword, text = h.keyword, p[n:]
		if !isRawProfile(keyword) {
			return nil
		}
		if h.compression == 1 {
			if h.compressionMethod != 0 {
				return errors.New("png: unsupported compression method")
			}
			if text, err = inflate(text); err != nil {
				return err
			}
		}
	}

	if !isRawProfile(keyword) {
		return nil
	}

	raw, err := decodeRawProfile(text)
	if err != nil {
		return errors.Wrapf(err, "png: %s %q", typ, keyword)
	}
	d.rawProfile = raw
	return nil
}

func isRawProfile(keyword string) bool {
	for _, k := range rawProfileKeywords {
		if keyword == k {
			return true
		}
	}
	return false
}

func inflate(p []byte) ([]byte, error) {
	z, err := zlib.NewReader(bytes.NewReader(p))
	if err != nil {
		return nil, err
	}
	defer z.Close()
	return ioutil.ReadAll(z)
}

// decodeRawProfile decodes an ImageMagick raw profile:
//
//	"\n" name "\n" length "\n" hex data split into lines
func decodeRawProfile(p []byte) ([]byte, error) {
	f := bytes.Fields(p)
	if len(f) < 2 {
		return nil, errors.New("raw profile header missing")
	}
	n, err := strconv.Atoi(string(f[1]))
	if err != nil || n < 0 {
		return nil, errors.Errorf("invalid raw profile length %q", f[1])
	}
	h := bytes.Join(f[2:], nil)
	if len(h) < 2*n {
		return nil, errors.Errorf("raw profile has %d hex digits, want %d", len(h), 2*n)
	}
	raw := make([]byte, n)
	if _, err := hex.Decode(raw, h[:2*n]); err != nil {
		return nil, err
	}
	return raw, nil
}

// https://www.w3.org/TR/PNG/#11iTXt
type iTXthdr struct {
	keyword           string
	compression       byte
	compressionMethod byte
	languageTag       string
	translatedKeyword string
}

func decodeiTXtHeader(p []byte) (h *iTXthdr, length int, err error) {
	d := itxtDec{src: p}

	h = &iTXthdr{
		keyword:           d.string(),
		compression:       d.byte(),
		compressionMethod: d.byte(),
		languageTag:       d.string(),
		translatedKeyword: d.string(),
	}

	if d.fail {
		return nil, 0, errors.New("png: invalid iTXt header")
	}

	return h, d.pos, nil
}

type itxtDec struct {
	src  []byte
	pos  int
	fail bool
}

func (d *itxtDec) string() string {
	if d.fail {
		return ""
	}

	i := bytes.IndexByte(d.src[d.pos:], 0)
	if i == -1 {
		d.fail = true
		return ""
	}

	p := d.pos
	n := d.pos + i
	d.pos = n + 1

	return string(d.src[p:n])
}

func (d *itxtDec) byte() byte {
	if d.fail || d.pos >= len(d.src) {
		d.fail = true
		return 0
	}

	b := d.src[d.pos]
	d.pos++
	return b
}

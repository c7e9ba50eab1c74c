package webp

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"

	"github.com/tajtiattila/gpsimage/driver"
	"github.com/tajtiattila/gpsimage/exif/exiftag"
	"github.com/tajtiattila/gpsimage/testutil"
)

func TestExif(t *testing.T) {
	// odd length to exercise chunk padding
	ex := testutil.NewExif(binary.LittleEndian).Set(exiftag.Make, testutil.Ascii("webp")).EncodeBytes()
	ex = append(ex, 0)
	vp8x := make([]byte, 10)

	f := func(name string, src []byte, want []byte, wanterr error) {
		got, err := Exif(bytes.NewReader(src))
		if errors.Cause(err) != wanterr {
			t.Errorf("%s: got error %v, want %v", name, err, wanterr)
			return
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s: Exif data mismatch", name)
		}
	}

	f("extended", testutil.RIFF("VP8X", vp8x, "ICCP", []byte{1, 2, 3}, "EXIF", ex), ex, nil)
	f("prefixed", testutil.RIFF("VP8X", vp8x, "EXIF", append([]byte("Exif\x00\x00"), ex...)), ex, nil)
	f("noexif", testutil.RIFF("VP8X", vp8x, "XMP ", []byte("<x/>")), nil, driver.ErrNoExif)
	f("empty", testutil.RIFF(), nil, driver.ErrNoExif)
	f("notwebp", testutil.PNG(2, 2, nil), nil, ErrNotWebp)
	f("short", []byte("RIFF"), nil, io.ErrUnexpectedEOF)

	bad := testutil.RIFF("VP8X", vp8x)
	binary.LittleEndian.PutUint32(bad[16:], 1000)
	f("oversize", bad, nil, ErrCorrupt)

	trunc := testutil.RIFF("VP8X", vp8x, "EXIF", ex)
	f("truncated", trunc[:len(trunc)-8], nil, io.ErrUnexpectedEOF)
}

func TestExifMedia(t *testing.T) {
	for _, fn := range testutil.MediaFileNames(t, "image/webp") {
		f, err := os.Open(fn)
		if err != nil {
			t.Error(err)
			continue
		}
		_, err = Exif(f)
		f.Close()
		if err != nil && err != driver.ErrNoExif {
			t.Errorf("%s: %v", fn, err)
		}
	}
}

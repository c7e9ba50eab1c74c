package main

import (
	"bytes"
	"strings"
	"testing"
	"text/template"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/tajtiattila/gpsimage"
	"github.com/tajtiattila/gpsimage/exif/exiftag"
	"github.com/tajtiattila/gpsimage/testutil"
)

func TestDedup(t *testing.T) {
	t0 := time.Date(2018, 3, 28, 10, 11, 33, 0, time.UTC)
	v := []point{
		pt(t0, 1, 2),
		pt(t0, 1, 2),
		pt(t0.Add(time.Second), 1, 2),
		pt(t0.Add(time.Second), 1, 3),
		pt(t0.Add(time.Second), 1, 3),
	}
	if got := dedup(v); len(got) != 3 {
		t.Errorf("dedup returned %d points, want 3", len(got))
	}
	if got := dedup(nil); len(got) != 0 {
		t.Errorf("dedup(nil) returned %v", got)
	}
}

func TestRecord(t *testing.T) {
	logger, _ := test.NewNullLogger()
	w := walker{log: logger}

	gps := func(lat, lng uint32) *testutil.Exif {
		return testutil.GPSExif(
			testutil.DMS(lat, 0, 0, 1), "N",
			testutil.DMS(lng, 0, 0, 1), "E")
	}

	for _, x := range []*testutil.Exif{
		gps(2, 2).
			Set(exiftag.GPSDateStamp, testutil.Ascii("2018:03:28")).
			Set(exiftag.GPSTimeStamp, testutil.Rational{12, 1, 0, 1, 0, 1}),
		gps(1, 1).
			Set(exiftag.DateTimeOriginal, testutil.Ascii("2018:03:28 10:00:00")).
			Set(exiftag.OffsetTimeOriginal, testutil.Ascii("Z")),
		testutil.NewExif(nil).Set(exiftag.Make, testutil.Ascii("nogps")),
	} {
		p := testutil.JPEG(4, 4, x.EncodeBytes())
		im, err := gpsimage.Decode(bytes.NewReader(p), gpsimage.Logger(logger))
		if err != nil {
			t.Fatal(err)
		}
		if err := w.record(im); err != nil {
			t.Error("record:", err)
		}
	}

	// time missing
	p := testutil.JPEG(4, 4, gps(3, 3).EncodeBytes())
	im, err := gpsimage.Decode(bytes.NewReader(p), gpsimage.Logger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.record(im); err == nil {
		t.Error("record of image without time succeeded")
	}

	if len(w.pt) != 2 {
		t.Fatalf("recorded %d points, want 2", len(w.pt))
	}

	buf := new(bytes.Buffer)
	tmpl := template.Must(template.New("gpx").Parse(gpxt))
	if err := tmpl.Execute(buf, w.pt); err != nil {
		t.Fatal(err)
	}
	want := `<trkpt lat="2" lon="2"><time>2018-03-28T12:00:00Z</time></trkpt>
<trkpt lat="1" lon="1"><time>2018-03-28T10:00:00Z</time></trkpt>
`
	if s := buf.String(); !strings.Contains(s, want) {
		t.Errorf("gpx output is missing\n%s\ngot\n%s", want, s)
	}
}

// Command gentrack writes the positions of images as a track,
// ordered by the time the images were taken.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tajtiattila/gpsimage"
)

func main() {
	gpx := flag.Bool("gpx", false, "gpx output")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	w := walker{log: log}
	for _, a := range flag.Args() {
		w.walk(a)
	}

	sort.Sort(bytime(w.pt))

	pts := dedup(w.pt)

	if *gpx {
		t := template.Must(template.New("gpx").Parse(gpxt))
		if err := t.Execute(os.Stdout, pts); err != nil {
			log.Fatal(err)
		}
	} else {
		for _, p := range pts {
			fmt.Printf("%s %11.6f %11.6f\n", p.TimeZ(), p.Lat, p.Lon)
		}
	}
}

type walker struct {
	log logrus.FieldLogger
	pt  []point
}

func (w *walker) walk(root string) {
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.log.WithError(err).Warn("walk")
			return nil
		}
		if info.IsDir() {
			return nil
		}

		im, err := gpsimage.Open(path, gpsimage.Logger(w.log))
		if err != nil {
			if errors.Cause(err) != gpsimage.ErrNotAnImage {
				w.log.WithError(err).Warn("open")
			}
			return nil
		}

		if err := w.record(im); err != nil {
			w.log.WithError(err).WithField("path", path).Warn("skipped")
		}
		return nil
	})
}

func (w *walker) record(im *gpsimage.Image) error {
	fix, ok := im.Fix()
	if !ok {
		return nil
	}
	t, err := pointTime(im)
	if err != nil {
		return err
	}
	w.pt = append(w.pt, pt(t, fix.Latitude, fix.Longitude))
	return nil
}

// pointTime returns the time of the fix,
// or the time the image was taken if it is missing.
func pointTime(im *gpsimage.Image) (time.Time, error) {
	t, err := im.GPSTime()
	if err == nil {
		return t, nil
	}
	if !gpsimage.IsNotPresent(err) {
		return time.Time{}, err
	}
	ts, err := im.Timestamp()
	if err != nil {
		if gpsimage.IsNotPresent(err) {
			return time.Time{}, errors.New("time missing")
		}
		return time.Time{}, err
	}
	return ts.Time, nil
}

type point struct {
	t        time.Time
	Lat, Lon float64
}

func pt(t time.Time, lat, lon float64) point {
	return point{t.UTC(), lat, lon}
}

func (p point) TimeZ() string {
	return p.t.Format(time.RFC3339)
}

type bytime []point

func (b bytime) Len() int           { return len(b) }
func (b bytime) Less(i, j int) bool { return b[i].t.Before(b[j].t) }
func (b bytime) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

func dedup(v []point) []point {
	if len(v) == 0 {
		return v
	}
	j := 1
	for _, p := range v[1:] {
		if p != v[j-1] {
			v[j], j = p, j+1
		}
	}
	return v[:j]
}

var gpxt = `<?xml version="1.0" encoding="utf-8"?>
<gpx version="1.0"
 xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
 xmlns="http://www.topografix.com/GPX/1/0"
 xsi:schemaLocation="http://www.topografix.com/GPX/1/0 http://www.topografix.com/GPX/1/0/gpx.xsd">
<trk>
<trkseg>
{{range . -}}
<trkpt lat="{{.Lat}}" lon="{{.Lon}}"><time>{{.TimeZ}}</time></trkpt>
{{end -}}
</trkseg>
</trk>
</gpx>
`

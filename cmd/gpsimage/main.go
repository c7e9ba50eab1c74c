// Command gpsimage prints the GPS position and camera details
// of image files.
//
// Directories given as arguments are walked recursively.
// Files that are not images are skipped.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tajtiattila/gpsimage"
	"github.com/tajtiattila/gpsimage/exif"
)

func main() {
	var p printer
	flag.BoolVar(&p.json, "json", false, "print attributes as JSON, one object per line")
	flag.BoolVar(&p.geojson, "geojson", false, "print positions as a GeoJSON feature collection")
	flag.BoolVar(&p.debug, "debug", false, "print attributes and raw tags")
	flag.BoolVar(&p.raw, "raw", false, "print all Exif entries by directory")
	tz := flag.String("tz", "", "time zone for timestamps without zone information")
	nolookup := flag.Bool("nolookup", false, "disable time zone lookup from position")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	p.w = os.Stdout
	p.log = log
	p.opt = []gpsimage.Option{
		gpsimage.Logger(log),
		gpsimage.ZoneLookup(!*nolookup),
	}
	if *tz != "" {
		loc, err := time.LoadLocation(*tz)
		if err != nil {
			log.Fatal(err)
		}
		p.opt = append(p.opt, gpsimage.Location(loc))
	}

	for _, a := range flag.Args() {
		p.walk(a)
	}
	if err := p.finish(); err != nil {
		log.Fatal(err)
	}
}

type printer struct {
	w   io.Writer
	log logrus.FieldLogger
	opt []gpsimage.Option

	json    bool
	geojson bool
	debug   bool
	raw     bool

	images []*gpsimage.Image
}

func (p *printer) walk(root string) {
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			p.log.WithError(err).Warn("walk")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if err := p.file(path); err != nil {
			p.log.WithError(err).Warn("print")
		}
		return nil
	})
}

func (p *printer) file(path string) error {
	im, err := gpsimage.Open(path, p.opt...)
	if err != nil {
		if errors.Cause(err) == gpsimage.ErrNotAnImage {
			p.log.WithField("path", path).Debug("not an image")
			return nil
		}
		return err
	}

	switch {
	case p.geojson:
		p.images = append(p.images, im)
		return nil
	case p.json:
		return json.NewEncoder(p.w).Encode(im)
	case p.debug:
		if _, err := fmt.Fprintf(p.w, "# %s\n", path); err != nil {
			return err
		}
		if err := gpsimage.Fdump(p.w, im); err != nil {
			return err
		}
		_, err := fmt.Fprintln(p.w)
		return err
	case p.raw:
		if _, err := fmt.Fprintf(p.w, "# %s\n", path); err != nil {
			return err
		}
		exif.Fdump(p.w, im.Exif())
		return nil
	}

	_, err = fmt.Fprintf(p.w, "%s: %s\n", path, summary(im))
	return err
}

func (p *printer) finish() error {
	if !p.geojson {
		return nil
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(gpsimage.FeatureCollection(p.images))
}

func summary(im *gpsimage.Image) string {
	fix, ok := im.Fix()
	if !ok {
		return im.Status().String()
	}
	s := fmt.Sprintf("%.6f, %.6f (%s)", fix.Latitude, fix.Longitude, fix.Datum)
	if fix.Altitude != nil {
		s += fmt.Sprintf(" %.1fm", *fix.Altitude)
	}
	if t, err := im.Timestamp(); err == nil {
		s += " " + t.Format(time.RFC3339)
	}
	return s
}

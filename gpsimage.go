// Package gpsimage reads the GPS position and camera details
// recorded in the Exif block of image files.
//
// JPEG, PNG, TIFF, WebP and HEIF files are supported.
// Other formats known to the image package, such as GIF and BMP,
// can be opened but never have Exif data.
package gpsimage

import (
	"bytes"
	"image"
	"io"
	"io/ioutil"
	"os"
	"time"

	// image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tajtiattila/gpsimage/driver"
	"github.com/tajtiattila/gpsimage/exif"

	// Exif containers
	_ "github.com/tajtiattila/gpsimage/heif"
	_ "github.com/tajtiattila/gpsimage/jpeg"
	_ "github.com/tajtiattila/gpsimage/png"
	_ "github.com/tajtiattila/gpsimage/webp"
)

var (
	// ErrPathNotFound is returned by Open if the file does not exist.
	ErrPathNotFound = errors.New("gpsimage: path does not exist")

	// ErrNotAnImage is returned when the image format
	// of the source is not recognised.
	ErrNotAnImage = errors.New("gpsimage: not a decodable image")
)

func init() {
	// TIFF files are Exif blocks themselves.
	driver.RegisterFormat("tiff", func(r io.ReadSeeker) ([]byte, error) {
		p, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return driver.TrimHeader(p)
	})
}

// Image holds the Exif data of an image file.
//
// An Image is immutable and safe for concurrent use.
type Image struct {
	path   string
	format string

	// dimensions from the image header
	width, height int

	x *exif.Exif

	log        logrus.FieldLogger
	loc        *time.Location
	zoneLookup bool
}

// Option configures how images are decoded.
type Option func(o *options)

type options struct {
	log        logrus.FieldLogger
	loc        *time.Location
	zoneLookup bool
}

// Logger sets the logger used to report non-fatal problems.
// The default logger writes warnings to standard error.
func Logger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// Location sets the time zone of timestamps without zone information
// for images without a GPS position. Default is time.Local.
func Location(loc *time.Location) Option {
	return func(o *options) { o.loc = loc }
}

// ZoneLookup enables or disables finding the time zone
// of timestamps from the GPS position. It is enabled by default.
func ZoneLookup(enable bool) Option {
	return func(o *options) { o.zoneLookup = enable }
}

var defaultLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

func newOptions(opt []Option) options {
	o := options{
		log:        defaultLogger,
		loc:        time.Local,
		zoneLookup: true,
	}
	for _, f := range opt {
		f(&o)
	}
	if o.loc == nil {
		o.loc = time.Local
	}
	return o
}

func newImage(x *exif.Exif, o options) *Image {
	if x == nil {
		x = new(exif.Exif)
	}
	return &Image{
		x:          x,
		log:        o.log,
		loc:        o.loc,
		zoneLookup: o.zoneLookup,
	}
}

// Open reads the image file at path.
//
// A file without Exif data is not an error,
// the Status of the returned Image is NoExif.
func Open(path string, opt ...Option) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrPathNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, errors.Wrap(ErrNotAnImage, path)
	}

	o := newOptions(opt)
	o.log = o.log.WithField("path", path)

	im, err := decode(io.NewSectionReader(f, 0, fi.Size()), o)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	im.path = path
	return im, nil
}

// Decode reads an image from r.
func Decode(r io.Reader, opt ...Option) (*Image, error) {
	p, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(bytes.NewReader(p), newOptions(opt))
}

// DecodeAt reads an image of the specified size from r.
func DecodeAt(r io.ReaderAt, size int64, opt ...Option) (*Image, error) {
	return decode(io.NewSectionReader(r, 0, size), newOptions(opt))
}

// FromExif returns an Image for the Exif block x.
// It is useful when x was decoded by other means.
func FromExif(x *exif.Exif, opt ...Option) *Image {
	return newImage(x, newOptions(opt))
}

type readSeekerAt interface {
	io.ReadSeeker
	io.ReaderAt
}

func decode(r readSeekerAt, o options) (*Image, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, errors.Wrap(ErrNotAnImage, err.Error())
	}

	log := o.log.WithField("format", format)
	o.log = log

	var x *exif.Exif
	p, err := driver.ExifBytes(format, r)
	switch errors.Cause(err) {
	case nil:
		x, err = exif.DecodeBytes(p)
		if err != nil {
			log.WithError(err).Warn("corrupt Exif block")
		}
	case driver.ErrNoExif, driver.ErrUnknownFormat:
		log.Debug("no Exif block")
	default:
		log.WithError(err).Warn("can't read Exif block")
	}

	im := newImage(x, o)
	im.format = format
	im.width, im.height = cfg.Width, cfg.Height
	return im, nil
}

// Exif returns the Exif block of im.
// The result must not be modified.
func (im *Image) Exif() *exif.Exif { return im.x }

// Format returns the image format name, as used by the image package.
func (im *Image) Format() string { return im.format }

// Path returns the path of the file im was read from.
func (im *Image) Path() string { return im.path }

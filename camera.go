package gpsimage

import "math"

// Make returns the camera manufacturer.
func (im *Image) Make() (string, error) { return im.text("Make") }

// Model returns the camera model.
func (im *Image) Model() (string, error) { return im.text("Model") }

// Width returns the image width in pixels.
// The image header is used if available, otherwise PixelXDimension.
func (im *Image) Width() (int, error) {
	return im.dimension(im.width, "PixelXDimension")
}

// Height returns the image height in pixels.
// The image header is used if available, otherwise PixelYDimension.
func (im *Image) Height() (int, error) {
	return im.dimension(im.height, "PixelYDimension")
}

func (im *Image) dimension(hdr int, name string) (int, error) {
	if hdr > 0 {
		return hdr, nil
	}
	v, err := im.rationals(name)
	if err != nil {
		return 0, err
	}
	if len(v) != 1 || v[0].Den != 1 || v[0].Num <= 0 {
		return 0, ErrNotPresent
	}
	return int(v[0].Num), nil
}

// Size returns the image width and height.
func (im *Image) Size() ([2]int, error) {
	w, err := im.Width()
	if err != nil {
		return [2]int{}, err
	}
	h, err := im.Height()
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{w, h}, nil
}

// Resolution units
const (
	resolutionInch = 2
	resolutionCm   = 3
)

// DPI returns the horizontal and vertical resolution in dots per inch.
// A resolution of 0/0 means 72 DPI.
func (im *Image) DPI() ([2]int, error) {
	x, err := im.divide("XResolution")
	if err != nil {
		return [2]int{}, err
	}
	y, err := im.divide("YResolution")
	if err != nil {
		return [2]int{}, err
	}
	if x == 0 && y == 0 {
		return [2]int{72, 72}, nil
	}

	if u, err := im.rationals("ResolutionUnit"); err == nil && len(u) == 1 && u[0].Num == resolutionCm {
		x, y = x*2.54, y*2.54
	}
	return [2]int{int(math.Round(x)), int(math.Round(y))}, nil
}

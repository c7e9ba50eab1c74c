package gpsimage

// Status classifies the GPS information of an image.
type Status int

const (
	OK         Status = iota // position available
	NoExif                   // no Exif data
	NoGPSInfo                // Exif data without GPS directory
	NoGeometry               // GPS directory without position
)

var statusText = []string{
	OK:         "OK",
	NoExif:     "ERROR - Exif not found",
	NoGPSInfo:  "ERROR - No GPS Info",
	NoGeometry: "ERROR - No Geometry",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusText) {
		return "ERROR - Unknown"
	}
	return statusText[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status returns the classification of the GPS information of im.
func (im *Image) Status() Status {
	switch {
	case im.x.Empty():
		return NoExif
	case len(im.x.GPS) == 0:
		return NoGPSInfo
	case !im.IsFixed():
		return NoGeometry
	}
	return OK
}

package gpsimage

import (
	"github.com/venicegeo/geojson-go/geojson"
)

// Feature returns im as a GeoJSON point feature with its attributes
// as properties. It returns nil if im has no position.
func (im *Image) Feature() *geojson.Feature {
	p := im.Geometry()
	if p == nil {
		return nil
	}
	props := make(map[string]interface{})
	for _, a := range im.Attrs() {
		if a.Name == "geometry" {
			continue
		}
		props[a.Name] = a.Value
	}
	pt := geojson.NewPoint([]float64{p.Coordinates[0], p.Coordinates[1]})
	return geojson.NewFeature(pt, im.Basename(), props)
}

// FeatureCollection returns the positions of images as a
// GeoJSON feature collection. Images without position are skipped.
func FeatureCollection(images []*Image) *geojson.FeatureCollection {
	features := make([]*geojson.Feature, 0, len(images))
	for _, im := range images {
		if f := im.Feature(); f != nil {
			features = append(features, f)
		}
	}
	return geojson.NewFeatureCollection(features)
}

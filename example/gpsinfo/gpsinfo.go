package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tajtiattila/gpsimage"
)

func main() {
	for _, arg := range os.Args[1:] {
		filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				log.Println(err)
				return nil
			}
			if info.Mode().IsDir() {
				return nil
			}
			if err := desc(path); err != nil {
				log.Println(err)
			}
			return nil
		})
	}
}

func desc(fn string) error {
	fmt.Println(fn)
	im, err := gpsimage.Open(fn)
	if err != nil {
		return err
	}

	for _, f := range im.Exif().GPSFields() {
		fmt.Printf("  %s = %v\n", f.Name, f.Tag)
	}

	if fix, ok := im.Fix(); ok {
		fmt.Printf("  => %.6f, %.6f (%s)\n", fix.Latitude, fix.Longitude, fix.Datum)
	} else {
		fmt.Printf("  => %s\n", im.Status())
	}
	return nil
}

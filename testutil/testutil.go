// Package testutil provides test fixtures: an in-memory Exif encoder,
// image container wrappers and access to the optional test-media repository.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// MediaRoot returns the root of the test media files.
// It is taken from the MEDIA_TEST environment variable, or the
// github.com/tajtiattila/test-media directory within GOPATH.
// The test is skipped if neither exists.
func MediaRoot(t *testing.T) string {
	if v := os.Getenv("MEDIA_TEST"); v != "" {
		return v
	}
	const testMedia = "github.com/tajtiattila/test-media"
	for _, x := range filepath.SplitList(os.Getenv("GOPATH")) {
		p := filepath.Join(x, "src", testMedia)
		if s, err := os.Stat(p); err == nil && s.Mode().IsDir() {
			return p
		}
	}
	t.Skip("test-media not found")
	panic("unreachable")
}

// MediaFileInfos returns the exiftool records of the test media files.
// The records are read from exiftool.json in MediaRoot, which is expected
// to be generated with "exiftool -json -n".
func MediaFileInfos(t *testing.T) []FileInfo {
	root := MediaRoot(t)

	var fi []FileInfo

	pth := filepath.Join(root, "exiftool.json")
	f, err := os.Open(pth)
	if err != nil {
		t.Skipf("%s not found", pth)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&fi); err != nil {
		t.Skipf("%s decode error %v", pth, err)
	}

	for _, e := range fi {
		fn, ok := e.String("SourceFile")
		if !ok {
			continue
		}
		e["SourceFile"] = filepath.Join(root, fn)
	}

	return fi
}

// MediaFileNames returns test file paths having mimetype.
func MediaFileNames(t *testing.T, mimetype string) []string {
	var files []string
	for _, e := range MediaFileInfos(t) {
		fn, ok := e.String("SourceFile")
		if !ok {
			continue
		}

		if mimetype != "" {
			if mt, ok := e.String("MIMEType"); !ok || mt != mimetype {
				continue
			}
		}

		files = append(files, fn)
	}

	if len(files) == 0 {
		t.Skip("no test files found")
	}
	return files
}

// GPSFileInfos returns the records of test files
// for which exiftool reported a GPS position.
func GPSFileInfos(t *testing.T) []FileInfo {
	var v []FileInfo
	for _, e := range MediaFileInfos(t) {
		_, latok := e.Float64("GPSLatitude")
		_, lonok := e.Float64("GPSLongitude")
		if latok && lonok {
			v = append(v, e)
		}
	}
	if len(v) == 0 {
		t.Skip("no test files with GPS position found")
	}
	return v
}

// FileInfo is an exiftool record.
type FileInfo map[string]interface{}

func (e FileInfo) Int(n string) (v int, ok bool) {
	x, ok := e[n]
	if !ok {
		return
	}
	w, ok := x.(float64)
	return int(w), ok
}

func (e FileInfo) Float64(n string) (v float64, ok bool) {
	x, ok := e[n]
	if !ok {
		return
	}
	v, ok = x.(float64)
	return v, ok
}

func (e FileInfo) String(n string) (v string, ok bool) {
	x, ok := e[n]
	if !ok {
		return
	}
	v, ok = x.(string)
	return v, ok
}

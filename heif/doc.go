// Package heif extracts Exif data from HEIF/HEIC files.
//
// It depends on cgo through github.com/jdeng/goheif.
// Build with the noheif tag to leave HEIF support out.
package heif

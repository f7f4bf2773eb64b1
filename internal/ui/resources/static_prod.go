//go:build !dev

package resources

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// assets returns the embedded files. They never change within a build, so
// browsers may cache them for a day.
func assets() (fs.FS, string) {
	fsys, _ := fs.Sub(staticFS, "static")
	return fsys, "public, max-age=86400"
}

// Package resources serves the static assets of the UI: the stylesheet and
// the script that drives the force-directed renderer.
package resources

import (
	"io/fs"
	"net/http"
)

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}

// Handler returns an HTTP handler for serving static files under /static/.
func Handler() http.Handler {
	fsys, cacheControl := assets()
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(fsys)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheControl != "" {
			w.Header().Set("Cache-Control", cacheControl)
		}
		fileServer.ServeHTTP(w, r)
	})
}

// ReadFile returns the content of a static asset.
func ReadFile(name string) ([]byte, error) {
	fsys, _ := assets()
	return fs.ReadFile(fsys, name)
}

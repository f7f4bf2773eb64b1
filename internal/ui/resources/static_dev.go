//go:build dev

package resources

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// staticDir derives the absolute path to the static directory relative to
// this source file, regardless of where the binary is run from.
func staticDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(filename), "static")
}

// assets serves files straight from the source tree so edits show up on
// reload.
func assets() (fs.FS, string) {
	return os.DirFS(staticDir()), "no-cache"
}

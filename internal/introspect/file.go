package introspect

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// FilePath reports whether endpoint names a local introspection file and
// returns its path. file:// URLs and anything that is not an http(s) URL
// are treated as paths.
func FilePath(endpoint string) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "file://"):
		u, err := url.Parse(endpoint)
		if err != nil || u.Path == "" {
			return strings.TrimPrefix(endpoint, "file://"), true
		}
		return filepath.FromSlash(u.Path), true
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
		return "", false
	case endpoint == "":
		return "", false
	default:
		return endpoint, true
	}
}

// ReadFile reads a saved introspection response. Both the full envelope
// ({"data":{"__schema":...}}) and a bare {"__schema":...} object are
// accepted.
func ReadFile(path string) ([]schema.Descriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading introspection file: %w", err)
	}

	types, err := decode(bytes.NewReader(raw))
	if errors.Is(err, ErrNoSchema) {
		wrapped := append(append([]byte(`{"data":`), raw...), '}')
		return decode(bytes.NewReader(wrapped))
	}
	return types, err
}

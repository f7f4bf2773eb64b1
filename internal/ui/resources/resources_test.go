package resources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ServesAssets(t *testing.T) {
	tests := []struct {
		path        string
		wantStatus  int
		wantContent string
	}{
		{"/static/graph.js", http.StatusOK, "ForceGraph"},
		{"/static/style.css", http.StatusOK, "#graph"},
		{"/static/missing.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.NotEmpty(t, rec.Header().Get("Cache-Control"))
			}
			assert.Contains(t, rec.Body.String(), tt.wantContent)
		})
	}
}

func TestReadFile(t *testing.T) {
	b, err := ReadFile("graph.js")
	require.NoError(t, err)
	assert.Contains(t, string(b), "/api/graph")
	assert.Equal(t, "/static/graph.js", StaticPath("graph.js"))
}

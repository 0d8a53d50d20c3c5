package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewp/blockforge/internal/infrastructure/config"
)

var (
	testSrv  *Server
	initOnce sync.Once
)

// testServer builds the server once for the whole package. Prometheus
// collectors register globally, so a second NewServer call in the same
// process would panic.
func testServer(t *testing.T) *Server {
	t.Helper()
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		srv, err := NewServer(config.Default())
		if err != nil {
			t.Fatalf("NewServer: %v", err)
		}
		testSrv = srv
	})
	return testSrv
}

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	testServer(t).Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRootAndHealth(t *testing.T) {
	w := do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "blockforge", decode(t, w)["service"])

	w = do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.NotZero(t, body["sections"])
}

func TestListSections(t *testing.T) {
	w := do(t, http.MethodGet, "/sections", "")
	require.Equal(t, http.StatusOK, w.Code)

	sections := decode(t, w)["sections"].(map[string]interface{})
	require.Contains(t, sections, "hero")
	variants := sections["hero"].([]interface{})
	assert.Equal(t, "centered", variants[0])
}

func TestGenerateSection(t *testing.T) {
	t.Run("known section", func(t *testing.T) {
		w := do(t, http.MethodPost, "/generate/section",
			`{"type":"hero","config":{"title":"Launch day"}}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, "hero", body["section"])
		markup := body["markup"].(string)
		assert.Contains(t, markup, "<!-- wp:group")
		assert.Contains(t, markup, "Launch day")
	})

	t.Run("unknown section", func(t *testing.T) {
		w := do(t, http.MethodPost, "/generate/section", `{"type":"carousel"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decode(t, w)["error"], "carousel")
	})

	t.Run("missing type", func(t *testing.T) {
		w := do(t, http.MethodPost, "/generate/section", `{"variant":"grid"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("sanitize override", func(t *testing.T) {
		w := do(t, http.MethodPost, "/generate/section",
			`{"type":"hero","sanitize":true,"config":{"title":"Hi<script>alert(1)</script>"}}`)
		require.Equal(t, http.StatusOK, w.Code)
		markup := decode(t, w)["markup"].(string)
		assert.NotContains(t, markup, "<script>")
		assert.Contains(t, markup, "Hi")
	})
}

func TestGeneratePage(t *testing.T) {
	t.Run("valid blueprint", func(t *testing.T) {
		bp := "site:\n  title: Acme\nsections:\n  - type: hero\n    title: Ship it\n  - type: footer\n    siteName: Acme\n"
		w := do(t, http.MethodPost, "/generate/page", bp)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, "Acme", body["title"])
		assert.NotEmpty(t, body["id"])
		assert.Contains(t, body["markup"], "Ship it")
	})

	t.Run("empty body", func(t *testing.T) {
		w := do(t, http.MethodPost, "/generate/page", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid blueprint", func(t *testing.T) {
		w := do(t, http.MethodPost, "/generate/page", "sections:\n  - type: hero\n")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "site.title")
	})
}

func TestBuildTheme(t *testing.T) {
	w := do(t, http.MethodPost, "/theme", `{"colors":{"primary":"#0B6E4F"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(3), body["version"])
	assert.Contains(t, body["$schema"], "schemas.wp.org")

	settings := body["settings"].(map[string]interface{})
	color := settings["color"].(map[string]interface{})
	palette := color["palette"].([]interface{})
	require.Len(t, palette, 1)
	assert.Equal(t, "#0B6E4F", palette[0].(map[string]interface{})["color"])
}

func TestMetricsEndpoint(t *testing.T) {
	w := do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blockforge_")
}

package pages

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler()

	r := gin.New()
	r.GET("/pages", handler.List)
	r.GET("/pages/:slug", handler.Get)
	return r
}

func TestHandler_ListPages(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/pages", nil))

	require.Equal(t, 200, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]any)
	require.Len(t, data, 3)

	first := data[0].(map[string]any)
	require.Equal(t, "about", first["slug"])
}

func TestHandler_GetPage(t *testing.T) {
	r := newTestRouter()

	for _, slug := range []string{"about", "privacy", "accessibility"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/pages/"+slug, nil))
		require.Equal(t, 200, w.Code, "slug %s", slug)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, slug, data["slug"])
		require.NotEmpty(t, data["title"])
		require.NotEmpty(t, data["body"])
	}
}

func TestHandler_GetUnknownPage(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/pages/donate", nil))
	require.Equal(t, 404, w.Code)
}

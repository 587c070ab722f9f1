package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Success(c, map[string]string{"foo": "bar"})

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body["status"])
	require.Equal(t, map[string]any{"foo": "bar"}, body["data"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Created(c, map[string]string{"id": "1"})
	require.Equal(t, 201, w.Code)
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		fn   func(c *gin.Context, message string, errorCode ...string)
		code int
	}{
		{BadRequest, 400},
		{NotFound, 404},
		{ValidationError, 422},
		{TooManyRequests, 429},
		{InternalServerError, 500},
		{BadGateway, 502},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		tc.fn(c, "something went wrong", "SOME_CODE")

		require.Equal(t, tc.code, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "something went wrong", body["error"])
		require.Equal(t, "SOME_CODE", body["code"])
	}
}

func TestErrorWithoutCodeOmitsField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	BadRequest(c, "bad input")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "bad input", body["error"])
	require.NotContains(t, body, "code")
}

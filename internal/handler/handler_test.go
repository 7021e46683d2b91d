package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, url string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c, w
}

func TestParseOrigin(t *testing.T) {
	c, _ := newTestContext(t, "/x?latitude=41.1579&longitude=-8.6291")
	lat, lng, ok := parseOrigin(c)
	require.True(t, ok)
	assert.Equal(t, 41.1579, lat)
	assert.Equal(t, -8.6291, lng)
}

func TestParseOriginMissing(t *testing.T) {
	cases := []string{
		"/x",
		"/x?latitude=41.1",
		"/x?longitude=-8.6",
	}
	for _, url := range cases {
		c, w := newTestContext(t, url)
		_, _, ok := parseOrigin(c)
		assert.False(t, ok, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestParseOriginNonNumeric(t *testing.T) {
	c, w := newTestContext(t, "/x?latitude=north&longitude=-8.6")
	_, _, ok := parseOrigin(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseIDParam(t *testing.T) {
	c, _ := newTestContext(t, "/x/7")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	id, ok := parseIDParam(c, "id")
	require.True(t, ok)
	assert.Equal(t, uint(7), id)

	c, w := newTestContext(t, "/x/abc")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = parseIDParam(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryDefaults(t *testing.T) {
	c, _ := newTestContext(t, "/x?radius=2.5&hours=6")
	assert.Equal(t, 2.5, queryFloat(c, "radius", 10))
	assert.Equal(t, 6, queryInt(c, "hours", 24))

	c, _ = newTestContext(t, "/x?radius=wide")
	assert.Equal(t, 10.0, queryFloat(c, "radius", 10))
	assert.Equal(t, 24, queryInt(c, "hours", 24))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiterAllow(t *testing.T) {
	l := NewSlidingWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("1.2.3.4"), "request %d should pass", i+1)
	}
	assert.False(t, l.Allow("1.2.3.4"), "request over the limit should be refused")

	// Other keys are counted independently.
	assert.True(t, l.Allow("5.6.7.8"))
}

func TestSlidingWindowLimiterWindowExpiry(t *testing.T) {
	l := NewSlidingWindowLimiter(1, 20*time.Millisecond)

	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow("k"), "limit should reset after the window passes")
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(NewSlidingWindowLimiter(2, time.Minute)))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

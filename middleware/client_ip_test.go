// File: middleware/client_ip_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ipForHeaders(headers map[string]string, remoteAddr string) string {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return getClientIP(c)
}

func TestClientIPPrefersFirstForwardedFor(t *testing.T) {
	ip := ipForHeaders(map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1, 10.0.0.2",
		"X-Real-IP":       "10.0.0.9",
	}, "192.0.2.1:5555")
	assert.Equal(t, "203.0.113.7", ip)
}

func TestClientIPFallsBackToRealIP(t *testing.T) {
	ip := ipForHeaders(map[string]string{"X-Real-IP": "203.0.113.9"}, "192.0.2.1:5555")
	assert.Equal(t, "203.0.113.9", ip)
}

func TestClientIPStripsPortFromRemoteAddr(t *testing.T) {
	assert.Equal(t, "192.0.2.1", ipForHeaders(nil, "192.0.2.1:5555"))
	assert.Equal(t, "192.0.2.1", ipForHeaders(nil, "192.0.2.1"))
}

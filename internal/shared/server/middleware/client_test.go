package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientKeyStableAndHeaderAware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ClientKey())
	router.GET("/key", func(c *gin.Context) {
		c.String(http.StatusOK, ClientKeyFromContext(c))
	})

	get := func(clientID string) string {
		req := httptest.NewRequest(http.MethodGet, "/key", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		if clientID != "" {
			req.Header.Set("X-Client-Id", clientID)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp.Body.String()
	}

	ipKey := get("")
	if ipKey == "" || len(ipKey) != 16 {
		t.Fatalf("expected 16-char key, got %q", ipKey)
	}
	if again := get(""); again != ipKey {
		t.Fatalf("expected stable key, got %q then %q", ipKey, again)
	}
	if browser := get("browser-1"); browser == ipKey {
		t.Fatalf("expected X-Client-Id to change the key")
	}
}

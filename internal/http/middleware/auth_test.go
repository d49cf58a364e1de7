package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubTokens map[string]string

func (s stubTokens) ParseToken(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func newAuthEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", AuthRequired(stubTokens{"good": "u1"}), func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	cases := []struct {
		header string
		status int
		body   string
	}{
		{"", http.StatusUnauthorized, "token not provided"},
		{"good", http.StatusUnauthorized, "malformatted token"},
		{"Basic good", http.StatusUnauthorized, "malformatted token"},
		{"Bearer nope", http.StatusUnauthorized, "invalid token"},
		{"Bearer good", http.StatusOK, "u1"},
	}

	r := newAuthEngine()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.status {
			t.Fatalf("%q: status got %d want %d", tc.header, w.Code, tc.status)
		}
		if !strings.Contains(w.Body.String(), tc.body) {
			t.Fatalf("%q: body %q missing %q", tc.header, w.Body.String(), tc.body)
		}
	}
}

func TestRequestIDKeepsClientValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" || w.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("client request id not propagated: %q", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(w.Body.String()) != 36 {
		t.Fatalf("expected generated uuid, got %q", w.Body.String())
	}
}

// Copyright (c) 2026 SkillSync. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillsync/api/internal/platform/middleware"
)

// stubConfig drives the CORS middleware's environment decisions.
type stubConfig struct {
	development  bool
	extraOrigins []string
}

func (c *stubConfig) IsDevelopment() bool      { return c.development }
func (c *stubConfig) AllowedOrigins() []string { return c.extraOrigins }

func TestCORS(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       *stubConfig
		origin    string
		wantAllow string
	}{
		{
			name:      "development allows any origin",
			cfg:       &stubConfig{development: true},
			origin:    "http://localhost:3000",
			wantAllow: "http://localhost:3000",
		},
		{
			name:      "production allows platform domains",
			cfg:       &stubConfig{},
			origin:    "https://www.skillsync.app",
			wantAllow: "https://www.skillsync.app",
		},
		{
			name:      "production allows configured extra origin",
			cfg:       &stubConfig{extraOrigins: []string{"https://partner.example.com"}},
			origin:    "https://partner.example.com",
			wantAllow: "https://partner.example.com",
		},
		{
			name:      "production rejects unknown origin",
			cfg:       &stubConfig{extraOrigins: []string{"https://partner.example.com"}},
			origin:    "https://evil.example.com",
			wantAllow: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
			request.Header.Set("Origin", testCase.origin)
			recorder := httptest.NewRecorder()

			middleware.CORS(testCase.cfg)(next).ServeHTTP(recorder, request)

			assert.Equal(t, testCase.wantAllow, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("preflight answers 204", func(t *testing.T) {
		next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("preflight must not reach the next handler")
		})

		request := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
		request.Header.Set("Origin", "https://www.skillsync.app")
		recorder := httptest.NewRecorder()

		middleware.CORS(&stubConfig{})(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

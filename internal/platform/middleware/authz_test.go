// Copyright (c) 2026 SkillSync. All rights reserved.

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/api/internal/platform/capability"
	"github.com/skillsync/api/internal/platform/ctxutil"
	"github.com/skillsync/api/internal/platform/middleware"
	"github.com/skillsync/api/internal/platform/sec"
)

// stubVerifier returns canned claims or a canned error, recording the token
// it was asked to verify.
type stubVerifier struct {
	claims *sec.SessionClaims
	err    error

	seenToken string
}

func (v *stubVerifier) Verify(tokenString string) (*sec.SessionClaims, error) {
	v.seenToken = tokenString
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

// terminalHandler ends the chain and records the claims visible to it.
type terminalHandler struct {
	called bool
	claims *sec.SessionClaims
}

func (p *terminalHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	p.called = true
	p.claims = ctxutil.GetClaims(request.Context())
	writer.WriteHeader(http.StatusOK)
}

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestAuthenticate_AnonymousPassthrough(t *testing.T) {
	verifier := &stubVerifier{}
	terminal := &terminalHandler{}

	request := httptest.NewRequest(http.MethodGet, "/courses", nil)
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(terminal).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, terminal.called)
	assert.Nil(t, terminal.claims, "anonymous requests carry no claims")
	assert.Empty(t, verifier.seenToken, "verifier should not be consulted without a header")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing scheme", header: "abc.def.ghi"},
		{name: "wrong scheme", header: "Basic abc.def.ghi"},
		{name: "too many parts", header: "Bearer abc def"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			verifier := &stubVerifier{}
			terminal := &terminalHandler{}

			request := httptest.NewRequest(http.MethodGet, "/courses", nil)
			request.Header.Set("Authorization", testCase.header)
			recorder := httptest.NewRecorder()

			middleware.Authenticate(verifier)(terminal).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, terminal.called)
			body := decodeErrorBody(t, recorder)
			assert.Equal(t, "Invalid authorization format", body["error"])
		})
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: sec.ErrExpiredToken}
	terminal := &terminalHandler{}

	request := httptest.NewRequest(http.MethodGet, "/courses", nil)
	request.Header.Set("Authorization", "Bearer stale-token")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(terminal).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, terminal.called)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, "Token expired. Please log in again", body["error"])
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: sec.ErrInvalidToken}
	terminal := &terminalHandler{}

	request := httptest.NewRequest(http.MethodGet, "/courses", nil)
	request.Header.Set("Authorization", "Bearer garbage")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(terminal).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, "Invalid token", body["error"])
}

func TestAuthenticate_InjectsClaims(t *testing.T) {
	claims := &sec.SessionClaims{
		UserID: "user-1",
		Email:  "ada@skillsync.app",
		Role:   sec.RoleInstructor,
	}
	verifier := &stubVerifier{claims: claims}
	terminal := &terminalHandler{}

	request := httptest.NewRequest(http.MethodGet, "/courses", nil)
	request.Header.Set("Authorization", "Bearer valid-token")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(terminal).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "valid-token", verifier.seenToken)
	require.NotNil(t, terminal.claims)
	assert.Equal(t, "user-1", terminal.claims.UserID)
	assert.Equal(t, sec.RoleInstructor, terminal.claims.Role)
}

func TestRequireAuth(t *testing.T) {
	t.Run("blocks anonymous", func(t *testing.T) {
		terminal := &terminalHandler{}
		request := httptest.NewRequest(http.MethodGet, "/enrollments", nil)
		recorder := httptest.NewRecorder()

		middleware.RequireAuth(terminal).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, terminal.called)
		body := decodeErrorBody(t, recorder)
		assert.Equal(t, "Authentication required", body["error"])
	})

	t.Run("passes authenticated", func(t *testing.T) {
		terminal := &terminalHandler{}
		request := httptest.NewRequest(http.MethodGet, "/enrollments", nil)
		ctx := ctxutil.WithClaims(request.Context(), &sec.SessionClaims{UserID: "user-1", Role: sec.RoleStudent})
		recorder := httptest.NewRecorder()

		middleware.RequireAuth(terminal).ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, terminal.called)
	})
}

func TestRequireRole(t *testing.T) {
	testCases := []struct {
		name       string
		claims     *sec.SessionClaims
		allowed    []sec.UserRole
		wantStatus int
		wantError  string
	}{
		{
			name:       "anonymous is unauthorized",
			claims:     nil,
			allowed:    []sec.UserRole{sec.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authentication required",
		},
		{
			name:       "role outside allow-set is forbidden",
			claims:     &sec.SessionClaims{UserID: "user-1", Role: sec.RoleStudent},
			allowed:    []sec.UserRole{sec.RoleInstructor, sec.RoleAdmin},
			wantStatus: http.StatusForbidden,
			wantError:  "Insufficient permissions",
		},
		{
			name:       "instructor allowed",
			claims:     &sec.SessionClaims{UserID: "user-2", Role: sec.RoleInstructor},
			allowed:    []sec.UserRole{sec.RoleInstructor, sec.RoleAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin allowed",
			claims:     &sec.SessionClaims{UserID: "user-3", Role: sec.RoleAdmin},
			allowed:    []sec.UserRole{sec.RoleInstructor, sec.RoleAdmin},
			wantStatus: http.StatusOK,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			terminal := &terminalHandler{}
			request := httptest.NewRequest(http.MethodPost, "/courses", nil)
			if testCase.claims != nil {
				request = request.WithContext(ctxutil.WithClaims(request.Context(), testCase.claims))
			}
			recorder := httptest.NewRecorder()

			middleware.RequireRole(testCase.allowed...)(terminal).ServeHTTP(recorder, request)

			assert.Equal(t, testCase.wantStatus, recorder.Code)
			if testCase.wantError != "" {
				body := decodeErrorBody(t, recorder)
				assert.Equal(t, testCase.wantError, body["error"])
				assert.False(t, terminal.called)
			} else {
				assert.True(t, terminal.called)
			}
		})
	}
}

func TestDegraded(t *testing.T) {
	t.Run("blocks api traffic without a database", func(t *testing.T) {
		terminal := &terminalHandler{}
		request := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		recorder := httptest.NewRecorder()

		middleware.Degraded(capability.Status{DatabaseReady: false})(terminal).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.False(t, terminal.called)
		body := decodeErrorBody(t, recorder)
		assert.Equal(t, "Service is running in degraded mode", body["error"])
		assert.Equal(t, "SERVICE_UNAVAILABLE", body["code"])
	})

	t.Run("passes through when ready", func(t *testing.T) {
		terminal := &terminalHandler{}
		request := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		recorder := httptest.NewRecorder()

		middleware.Degraded(capability.Status{DatabaseReady: true})(terminal).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, terminal.called)
	})
}

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignIn(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(s testServices)
		wantStatus int
		wantBody   string
		wantCookie bool
	}{
		{
			name: "success",
			body: `{"email":"admin@example.com","password":"hunter22"}`,
			setup: func(s testServices) {
				s.auth.EXPECT().
					SignIn(gomock.Any(), "admin@example.com", "hunter22", models.SessionMeta{IPAddress: "192.0.2.1", UserAgent: "test-agent"}).
					Return(models.SignInResult{Account: testAccount(), Token: testToken}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"user":{"id":"acc-1","email":"admin@example.com","name":"Admin"}}`,
			wantCookie: true,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			setup:      func(s testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			body:       `{"email":"admin@example.com"}`,
			setup:      func(s testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			body: `{"email":"admin@example.com","password":"wrong"}`,
			setup: func(s testServices) {
				s.auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.SignInResult{}, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"error":"invalid email or password"}`,
		},
		{
			name: "misconfiguration",
			body: `{"email":"admin@example.com","password":"hunter22"}`,
			setup: func(s testServices) {
				s.auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.SignInResult{}, service.ErrMisconfiguration)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svcs := newTestHandler(t, testConfig())
			tt.setup(svcs)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in/email", strings.NewReader(tt.body))
			req.RemoteAddr = "192.0.2.1:54321"
			req.Header.Set("User-Agent", "test-agent")
			rr := httptest.NewRecorder()

			h.signIn(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantCookie {
				require.Len(t, rr.Result().Cookies(), 1)
				assert.Equal(t, testToken, rr.Result().Cookies()[0].Value)
			} else {
				assert.Empty(t, rr.Result().Cookies())
			}
		})
	}
}

func TestSignUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svcs := newTestHandler(t, testConfig())
		svcs.auth.EXPECT().
			SignUp(gomock.Any(), models.SignUpRequest{Email: "new@example.com", Password: "secret-pass", Name: "New"}, gomock.Any()).
			Return(models.SignInResult{Account: testAccount(), Token: testToken}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader(`{"email":"new@example.com","password":"secret-pass","name":"New"}`))
		rr := httptest.NewRecorder()

		h.signUp(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Set-Cookie"), "session="+testToken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, svcs := newTestHandler(t, testConfig())
		svcs.auth.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.SignInResult{}, service.ErrDuplicateEmail)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
		rr := httptest.NewRecorder()

		h.signUp(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"email already exists"}`, rr.Body.String())
	})
}

func TestSignOut(t *testing.T) {
	t.Run("revokes session and clears cookie", func(t *testing.T) {
		h, svcs := newTestHandler(t, testConfig())
		svcs.auth.EXPECT().SignOut(gomock.Any(), testToken).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-out", nil)
		req.AddCookie(sessionCookie(testToken))
		rr := httptest.NewRecorder()

		h.signOut(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true}`, rr.Body.String())
		assert.Contains(t, rr.Header().Get("Set-Cookie"), "Max-Age=0")
	})

	t.Run("without cookie", func(t *testing.T) {
		h, _ := newTestHandler(t, testConfig())

		rr := httptest.NewRecorder()
		h.signOut(rr, httptest.NewRequest(http.MethodPost, "/api/auth/sign-out", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Set-Cookie"), "session=;")
	})

	t.Run("store failure still succeeds", func(t *testing.T) {
		h, svcs := newTestHandler(t, testConfig())
		svcs.auth.EXPECT().SignOut(gomock.Any(), testToken).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-out", nil)
		req.AddCookie(sessionCookie(testToken))
		rr := httptest.NewRecorder()

		h.signOut(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestGetSession(t *testing.T) {
	tests := []struct {
		name          string
		withCookie    bool
		resolved      *models.ResolvedSession
		err           error
		wantBody      string
		wantSetCookie bool
	}{
		{
			name:     "no cookie",
			wantBody: `{"user":null}`,
		},
		{
			name:       "unknown session",
			withCookie: true,
			wantBody:   `{"user":null}`,
		},
		{
			name:       "store failure",
			withCookie: true,
			err:        errors.New("db down"),
			wantBody:   `{"user":null}`,
		},
		{
			name:       "live session",
			withCookie: true,
			resolved:   &models.ResolvedSession{Account: testAccount()},
			wantBody:   `{"user":{"id":"acc-1","email":"admin@example.com","name":"Admin"}}`,
		},
		{
			name:          "refreshed session re-issues cookie",
			withCookie:    true,
			resolved:      &models.ResolvedSession{Account: testAccount(), Refreshed: true},
			wantBody:      `{"user":{"id":"acc-1","email":"admin@example.com","name":"Admin"}}`,
			wantSetCookie: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svcs := newTestHandler(t, testConfig())

			req := httptest.NewRequest(http.MethodGet, "/api/auth/get-session", nil)
			if tt.withCookie {
				req.AddCookie(sessionCookie(testToken))
				svcs.auth.EXPECT().ResolveSessionDetails(gomock.Any(), testToken).Return(tt.resolved, tt.err)
			}
			rr := httptest.NewRecorder()

			h.getSession(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantSetCookie, rr.Header().Get("Set-Cookie") != "")
		})
	}
}

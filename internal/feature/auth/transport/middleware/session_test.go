package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_balance/internal/feature/auth/domain/entity"
	"youth_balance/internal/feature/auth/usecase"
	httpmw "youth_balance/internal/platform/http/middleware"
	jwtmw "youth_balance/internal/platform/jwt"
	"youth_balance/internal/platform/logger"
	"youth_balance/internal/platform/web"
)

const testCookie = "yb_session"

type mockAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, id string) (*entity.Session, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, id string) (*entity.Session, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, id)
	}
	return nil, usecase.ErrSessionNotFound
}

func liveSession(id string) *entity.Session {
	return &entity.Session{ID: id, UserID: 9, Username: "alice", Email: "alice@example.com", ExpiresAt: time.Now().Add(time.Hour)}
}

func newTestRouter(auth SessionAuthenticator) (*gin.Engine, *Cookies) {
	gin.SetMode(gin.TestMode)
	signer := jwtmw.NewSigner("test-secret")
	cookies := NewCookies(signer, testCookie, false)
	r := gin.New()
	r.Use(web.Flashes(signer), NewSessions(auth, cookies, logger.Discard()).Load())
	r.GET("/api/whoami", RequireAPI(), func(c *gin.Context) {
		id, _ := Identity(c)
		userID, _ := c.Get(httpmw.ContextUserID)
		c.JSON(http.StatusOK, gin.H{"username": id.Username, "ctx_user_id": userID})
	})
	r.GET("/dashboard", RequirePage(), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return r, cookies
}

func signedCookie(t *testing.T, sid string) *http.Cookie {
	t.Helper()
	token, err := jwtmw.NewSigner("test-secret").Sign(sid, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: token}
}

func TestRequireAPI(t *testing.T) {
	auth := &mockAuthenticator{AuthenticateFunc: func(ctx context.Context, id string) (*entity.Session, error) {
		if id == "good" {
			return liveSession(id), nil
		}
		return nil, usecase.ErrSessionExpired
	}}

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		wantBody   string
	}{
		{"no cookie", nil, http.StatusUnauthorized, `{"error":"Not authenticated"}`},
		{"tampered cookie", &http.Cookie{Name: testCookie, Value: "not-a-token"}, http.StatusUnauthorized, `{"error":"Not authenticated"}`},
		{"expired session", signedCookie(t, "old"), http.StatusUnauthorized, `{"error":"Not authenticated"}`},
		{"live session", signedCookie(t, "good"), http.StatusOK, `{"ctx_user_id":9,"username":"alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(auth)
			req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestLoad_ClearsStaleCookie(t *testing.T) {
	r, _ := newTestRouter(&mockAuthenticator{})

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(signedCookie(t, "gone"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLoad_StoreFailureIsInternalError(t *testing.T) {
	r, _ := newTestRouter(&mockAuthenticator{AuthenticateFunc: func(ctx context.Context, id string) (*entity.Session, error) {
		return nil, errors.New("redis down")
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(signedCookie(t, "any"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies(), "cookie must survive a store outage")
}

func TestLoad_StoreFailureOnPageIsNotALoginRedirect(t *testing.T) {
	r, _ := newTestRouter(&mockAuthenticator{AuthenticateFunc: func(ctx context.Context, id string) (*entity.Session, error) {
		return nil, errors.New("redis down")
	}})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(signedCookie(t, "any"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRequirePage_RedirectsToLogin(t *testing.T) {
	r, _ := newTestRouter(&mockAuthenticator{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "yb_flash", cookies[0].Name)
}

func TestCookies_Issue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cookies := NewCookies(jwtmw.NewSigner("test-secret"), testCookie, true)

	tests := []struct {
		name       string
		remember   bool
		wantMaxAge bool
	}{
		{"browser session cookie", false, false},
		{"remember me cookie persists", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

			s := liveSession("sid-1")
			s.Remember = tt.remember
			s.ExpiresAt = time.Now().Add(30 * 24 * time.Hour)
			require.NoError(t, cookies.Issue(c, s))

			got := w.Result().Cookies()
			require.Len(t, got, 1)
			assert.Equal(t, testCookie, got[0].Name)
			assert.True(t, got[0].HttpOnly)
			assert.True(t, got[0].Secure)
			assert.Equal(t, http.SameSiteLaxMode, got[0].SameSite)
			if tt.wantMaxAge {
				assert.Greater(t, got[0].MaxAge, 29*24*60*60)
			} else {
				assert.Zero(t, got[0].MaxAge)
			}

			// the issued value round-trips to the session id
			c.Request.AddCookie(&http.Cookie{Name: testCookie, Value: got[0].Value})
			assert.Equal(t, "sid-1", cookies.SessionID(c))
		})
	}
}

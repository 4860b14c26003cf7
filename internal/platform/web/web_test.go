package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtmw "youth_balance/internal/platform/jwt"
)

var testSigner = jwtmw.NewSigner("test-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(Templates())
	r.Use(Flashes(testSigner))
	return r
}

func TestTemplates_AllPagesRender(t *testing.T) {
	pages := []string{PageHome, PageLogin, PageSignup, PageDashboard, PageWellbeing, PageTasks, PageResources}

	for _, page := range pages {
		t.Run(page, func(t *testing.T) {
			r := newRouter()
			r.GET("/", func(c *gin.Context) {
				Render(c, http.StatusOK, page, gin.H{"Title": "Test", "Username": "alice", "Form": gin.H{}})
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Test | Youth Balance")
		})
	}
}

func TestFlash_RoundTrip(t *testing.T) {
	r := newRouter()
	r.GET("/set", func(c *gin.Context) {
		SetFlash(c, FlashSuccess, "Account created successfully! You can now login")
		c.Redirect(http.StatusSeeOther, "/show")
	})
	r.GET("/show", func(c *gin.Context) {
		Render(c, http.StatusOK, PageLogin, gin.H{"Title": "Login", "Form": gin.H{}})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, flashCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotContains(t, cookies[0].Value, "Account created", "message must travel signed")

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `class="flash flash-success"`)
	assert.Contains(t, body, "Account created successfully! You can now login")

	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookie, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestPopFlash_Rejected(t *testing.T) {
	expired, err := testSigner.SignFlash(FlashSuccess, "old news", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	foreign, err := jwtmw.NewSigner("other-secret").SignFlash(FlashError, "Please login first", time.Now().Add(time.Minute))
	require.NoError(t, err)
	session, err := testSigner.Sign("sid", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
	}{
		{"unsigned message", "success%7CYou+won+a+prize"},
		{"bad escape", "%zz"},
		{"expired", expired},
		{"wrong secret", foreign},
		{"session token", session},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.AddCookie(&http.Cookie{Name: flashCookie, Value: tt.value})
			c.Set(ctxFlashSigner, testSigner)

			_, ok := PopFlash(c)

			assert.False(t, ok)
		})
	}
}

func TestSetFlash_WithoutSigner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SetFlash(c, FlashError, "lost")

	assert.Empty(t, w.Result().Cookies())
	assert.Len(t, c.Errors, 1)
}

func TestRender_ImmediateMessage(t *testing.T) {
	r := newRouter()
	r.GET("/", func(c *gin.Context) {
		Render(c, http.StatusUnauthorized, PageLogin, gin.H{"Title": "Login", "Form": gin.H{"Username": "bob"}},
			Flash{Category: FlashError, Message: "Invalid username or password. Please try again."})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password. Please try again.")
	assert.Contains(t, w.Body.String(), `value="bob"`)
}

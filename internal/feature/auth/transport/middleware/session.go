// Package middleware はログインセッションを HTTP リクエストに結び付けます。
package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"youth_balance/internal/feature/auth/domain/entity"
	httpmw "youth_balance/internal/platform/http/middleware"
	"youth_balance/internal/platform/web"
	"youth_balance/internal/shared/apperr"
	"youth_balance/internal/shared/identity"
)

// MsgLoginRequired は匿名ユーザが保護されたページを開いたときに表示します。
const MsgLoginRequired = "Please login first to access your dashboard"

// SessionAuthenticator はセッション ID を有効なセッションに解決します。
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, id string) (*entity.Session, error)
}

// TokenSigner はセッション ID を改ざんできない Cookie の値に包みます。
type TokenSigner interface {
	Sign(sessionID string, expiresAt time.Time) (string, error)
	Parse(token string) (string, error)
}

// Cookies はセッション Cookie を読み書きします。
type Cookies struct {
	signer TokenSigner
	name   string
	secure bool
}

// NewCookies は name という名前の Cookie を扱う Cookies を生成します。
func NewCookies(signer TokenSigner, name string, secure bool) *Cookies {
	return &Cookies{signer: signer, name: name, secure: secure}
}

// Issue はセッション Cookie を設定します。ログイン状態を保持するセッションは永続 Cookie、
// それ以外はブラウザを閉じるまで有効です。
func (k *Cookies) Issue(c *gin.Context, s *entity.Session) error {
	token, err := k.signer.Sign(s.ID, s.ExpiresAt)
	if err != nil {
		return err
	}
	maxAge := 0
	if s.Remember {
		maxAge = int(time.Until(s.ExpiresAt).Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(k.name, token, maxAge, "/", "", k.secure, true)
	return nil
}

// SessionID は有効な Cookie が持つ ID を返し、無ければ "" を返します。
func (k *Cookies) SessionID(c *gin.Context) string {
	token, err := c.Cookie(k.name)
	if err != nil || token == "" {
		return ""
	}
	sid, err := k.signer.Parse(token)
	if err != nil {
		return ""
	}
	return sid
}

// Clear はセッション Cookie を削除します。
func (k *Cookies) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(k.name, "", -1, "/", "", k.secure, true)
}

// Sessions は有効なセッションを持つリクエストに呼び出し元の Identity を付与します。
type Sessions struct {
	sessions SessionAuthenticator
	cookies  *Cookies
	log      *logrus.Logger
}

// NewSessions はセッションのミドルウェアを生成します。
func NewSessions(sessions SessionAuthenticator, cookies *Cookies, log *logrus.Logger) *Sessions {
	return &Sessions{sessions: sessions, cookies: cookies, log: log}
}

// Load はセッション Cookie を解決します。有効なセッションが無いリクエストは匿名のまま続行し、
// 古い Cookie は消去します。セッションストアの障害時は 500 で終了し、
// Cookie はそのまま残します。
func (m *Sessions) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := m.cookies.SessionID(c)
		if sid == "" {
			c.Next()
			return
		}

		s, err := m.sessions.Authenticate(c.Request.Context(), sid)
		switch {
		case err == nil:
			id := s.Identity()
			c.Set(httpmw.ContextUserID, id.UserID)
			c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		case errors.Is(err, apperr.ErrUnauthenticated):
			m.cookies.Clear(c)
		default:
			m.log.WithError(err).Error("session lookup failed")
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Next()
	}
}

// RequireAPI は匿名の JSON リクエストを 401 で拒否します。
func RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := identity.FromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}

// RequirePage は匿名のページリクエストをログインフォームに送ります。
func RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := identity.FromContext(c.Request.Context()); !ok {
			web.SetFlash(c, web.FlashError, MsgLoginRequired)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity は Load が付与した呼び出し元を返します。
func Identity(c *gin.Context) (identity.Identity, bool) {
	return identity.FromContext(c.Request.Context())
}

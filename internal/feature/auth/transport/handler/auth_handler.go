// Package handler は auth feature の HTTP ハンドラ（アカウントのページ、
// サインアップ・ログイン・ログアウトのフォーム、ログイン中ユーザのエンドポイント）を提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"youth_balance/internal/feature/auth/domain/entity"
	"youth_balance/internal/feature/auth/transport/http/dto"
	"youth_balance/internal/feature/auth/transport/middleware"
	"youth_balance/internal/feature/auth/usecase"
	"youth_balance/internal/platform/web"
)

// アカウントのページに表示するメッセージ。
const (
	MsgMissingFields  = "Please fill in all required fields"
	MsgInvalidEmail   = "Please enter a valid email address"
	MsgUsernameTaken  = "Username already exists. Please choose a different one."
	MsgSignupSuccess  = "Account created successfully! You can now login"
	MsgLoginSuccess   = "Welcome back! Login successful!"
	MsgLoginFailed    = "Invalid username or password. Please try again."
	MsgLoggedOut      = "You have been logged out successfully"
	MsgSomethingWrong = "Something went wrong. Please try again."
)

// AuthUsecase はハンドラが使うアカウント操作を定義します。
type AuthUsecase interface {
	// Register はアカウントを作成し、その ID を返します。
	Register(ctx context.Context, username, password, email string) (uint, error)
	// Login は認証情報を検証し、セッションを開始します。
	Login(ctx context.Context, username, password string, remember bool) (*entity.Session, error)
}

// SessionEnder はログインセッションを終了します。
type SessionEnder interface {
	End(ctx context.Context, id string) error
}

// AuthHandler はアカウントのページとフォームを処理します。
type AuthHandler struct {
	auth     AuthUsecase
	sessions SessionEnder
	cookies  *middleware.Cookies
	log      *logrus.Logger
}

// NewAuthHandler は AuthHandler を生成します。
func NewAuthHandler(auth AuthUsecase, sessions SessionEnder, cookies *middleware.Cookies, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookies: cookies, log: log}
}

func pageData(c *gin.Context, title string, form any) gin.H {
	data := gin.H{"Title": title, "Form": form}
	if id, ok := middleware.Identity(c); ok {
		data["Username"] = id.Username
	}
	return data
}

// Home はログイン済みならダッシュボードへ送り、それ以外はトップページを描画します。
func (h *AuthHandler) Home(c *gin.Context) {
	if _, ok := middleware.Identity(c); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	web.Render(c, http.StatusOK, web.PageHome, pageData(c, "Home", nil))
}

// Page は静的ページを描画します。
func (h *AuthHandler) Page(page, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		web.Render(c, http.StatusOK, page, pageData(c, title, nil))
	}
}

// SignupPage はサインアップフォームを描画します。
func (h *AuthHandler) SignupPage(c *gin.Context) {
	web.Render(c, http.StatusOK, web.PageSignup, pageData(c, "Sign up", dto.SignupForm{}))
}

// Signup は POST /signup を処理します。
// - 必須項目の欠落やメール形式の誤りは 400 でフォームを再表示
// - 使用済みのユーザ名は 409 で再表示
// - 成功時はフラッシュ付きでログインページへリダイレクト
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.WithError(err).WithField("remote_addr", c.ClientIP()).Warn("signup form rejected")
		h.renderSignup(c, http.StatusBadRequest, form, MsgMissingFields)
		return
	}

	id, err := h.auth.Register(c.Request.Context(), form.Username, form.Password, form.Email)
	if err != nil {
		entry := h.log.WithError(err).WithFields(logrus.Fields{"username": form.Username, "remote_addr": c.ClientIP()})
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			h.renderSignup(c, http.StatusBadRequest, form, MsgMissingFields)
		case errors.Is(err, usecase.ErrInvalidEmail):
			h.renderSignup(c, http.StatusBadRequest, form, MsgInvalidEmail)
		case errors.Is(err, usecase.ErrUsernameTaken):
			entry.Warn("signup failed")
			h.renderSignup(c, http.StatusConflict, form, MsgUsernameTaken)
		default:
			entry.Error("signup failed")
			h.renderSignup(c, http.StatusInternalServerError, form, MsgSomethingWrong)
		}
		return
	}

	h.log.WithFields(logrus.Fields{"user_id": id, "remote_addr": c.ClientIP()}).Info("user signup successful")
	web.SetFlash(c, web.FlashSuccess, MsgSignupSuccess)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) renderSignup(c *gin.Context, status int, form dto.SignupForm, msg string) {
	form.Password = ""
	web.Render(c, status, web.PageSignup, pageData(c, "Sign up", form), web.Flash{Category: web.FlashError, Message: msg})
}

// LoginPage はログインフォームを描画します。
func (h *AuthHandler) LoginPage(c *gin.Context) {
	web.Render(c, http.StatusOK, web.PageLogin, pageData(c, "Login", dto.LoginForm{}))
}

// Login は POST /login を処理します。
// 存在しないユーザとパスワード誤りは同じ 401 ページになります。
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		h.renderLogin(c, http.StatusBadRequest, form, MsgMissingFields)
		return
	}

	s, err := h.auth.Login(c.Request.Context(), form.Username, form.Password, form.Remember())
	if err != nil {
		entry := h.log.WithError(err).WithFields(logrus.Fields{"username": form.Username, "remote_addr": c.ClientIP()})
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			entry.Warn("login failed")
			h.renderLogin(c, http.StatusUnauthorized, form, MsgLoginFailed)
			return
		}
		entry.Error("login failed")
		h.renderLogin(c, http.StatusInternalServerError, form, MsgSomethingWrong)
		return
	}

	if err := h.cookies.Issue(c, s); err != nil {
		h.log.WithError(err).Error("failed to issue session cookie")
		h.renderLogin(c, http.StatusInternalServerError, form, MsgSomethingWrong)
		return
	}

	h.log.WithFields(logrus.Fields{"user_id": s.UserID, "remember": s.Remember, "remote_addr": c.ClientIP()}).Info("user login successful")
	web.SetFlash(c, web.FlashSuccess, MsgLoginSuccess)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form dto.LoginForm, msg string) {
	form.Password = ""
	web.Render(c, status, web.PageLogin, pageData(c, "Login", form), web.Flash{Category: web.FlashError, Message: msg})
}

// Logout はセッションを終了して Cookie を消し、トップページに戻します。
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid := h.cookies.SessionID(c); sid != "" {
		if err := h.sessions.End(c.Request.Context(), sid); err != nil {
			h.log.WithError(err).Error("failed to end session")
		}
	}
	h.cookies.Clear(c)
	web.SetFlash(c, web.FlashSuccess, MsgLoggedOut)
	c.Redirect(http.StatusSeeOther, "/")
}

// Dashboard はログイン後のページを描画します。middleware.RequirePage の後ろにルーティングします。
func (h *AuthHandler) Dashboard(c *gin.Context) {
	web.Render(c, http.StatusOK, web.PageDashboard, pageData(c, "Dashboard", nil))
}

// Account はダッシュボードかログインフォームへリダイレクトします。
func (h *AuthHandler) Account(c *gin.Context) {
	if _, ok := middleware.Identity(c); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// Me は呼び出し元の情報を返します。middleware.RequireAPI の後ろにルーティングします。
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{ID: id.UserID, Username: id.Username, Email: id.Email})
}

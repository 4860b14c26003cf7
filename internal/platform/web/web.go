// Package web はサーバ側で描画するページと、一度だけ表示するフラッシュメッセージの Cookie を扱います。
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// ページテンプレート名。
const (
	PageHome      = "home.html"
	PageLogin     = "login.html"
	PageSignup    = "signup.html"
	PageDashboard = "dashboard.html"
	PageWellbeing = "wellbeing.html"
	PageTasks     = "tasks.html"
	PageResources = "resources.html"
)

// フラッシュの種別。
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const (
	flashCookie    = "yb_flash"
	flashTTL       = 10 * time.Minute
	ctxFlashSigner = "web.flash_signer"
)

// FlashSigner はフラッシュメッセージに署名し、サーバ以外が設定できないようにします。
type FlashSigner interface {
	SignFlash(category, message string, expiresAt time.Time) (string, error)
	ParseFlash(token string) (category, message string, err error)
}

// Flashes はリクエスト中の SetFlash と PopFlash から signer を使えるようにします。
func Flashes(signer FlashSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxFlashSigner, signer)
		c.Next()
	}
}

func flashSigner(c *gin.Context) (FlashSigner, bool) {
	v, ok := c.Get(ctxFlashSigner)
	if !ok {
		return nil, false
	}
	signer, ok := v.(FlashSigner)
	return signer, ok
}

// Templates は埋め込みのページテンプレートを解析します。テンプレートが壊れていれば panic します。
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// Flash は次に描画されるページで一度だけ表示されるメッセージです。
type Flash struct {
	Category string
	Message  string
}

// SetFlash は次のページ描画用にメッセージを保存します。
// Flashes で signer が設定されていなければメッセージは捨てられます。
func SetFlash(c *gin.Context, category, message string) {
	signer, ok := flashSigner(c)
	if !ok {
		_ = c.Error(errors.New("flash signer not installed"))
		return
	}
	token, err := signer.SignFlash(category, message, time.Now().Add(flashTTL))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, token, 0, "/", "", false, true)
}

// PopFlash は保留中のメッセージがあれば返し、消去します。
// 偽造・期限切れ・不正な Cookie は破棄します。
func PopFlash(c *gin.Context) (Flash, bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return Flash{}, false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	signer, ok := flashSigner(c)
	if !ok {
		return Flash{}, false
	}
	category, message, err := signer.ParseFlash(raw)
	if err != nil {
		return Flash{}, false
	}
	return Flash{Category: category, Message: message}, true
}

// Render は data で page を描画し、保留中のフラッシュを "Flashes" に加えます。
// 引数で渡したメッセージはリダイレクトを待たず同じレスポンスで表示します。
func Render(c *gin.Context, status int, page string, data gin.H, now ...Flash) {
	if data == nil {
		data = gin.H{}
	}
	flashes := append([]Flash(nil), now...)
	if f, ok := PopFlash(c); ok {
		flashes = append([]Flash{f}, flashes...)
	}
	data["Flashes"] = flashes
	c.HTML(status, page, data)
}

// Package router は gin のエンジンを組み立てます。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	authhandler "youth_balance/internal/feature/auth/transport/handler"
	"youth_balance/internal/feature/auth/transport/middleware"
	goalhandler "youth_balance/internal/feature/goals/transport/handler"
	notehandler "youth_balance/internal/feature/notes/transport/handler"
	taskhandler "youth_balance/internal/feature/tasks/transport/handler"
	platformhandler "youth_balance/internal/platform/http/handler"
	httpmw "youth_balance/internal/platform/http/middleware"
	"youth_balance/internal/platform/validation"
	"youth_balance/internal/platform/web"
)

// Handlers は NewRouter が登録する各 feature のハンドラをまとめます。
type Handlers struct {
	Auth   *authhandler.AuthHandler
	Tasks  *taskhandler.TaskHandler
	Notes  *notehandler.NoteHandler
	Goals  *goalhandler.GoalHandler
	Health *platformhandler.HealthHandler
}

// NewRouter はエンジンを生成します。CORS は origins の指定があるときのみ有効です。
// flashes はフラッシュメッセージに署名します。
func NewRouter(h Handlers, sessions *middleware.Sessions, flashes web.FlashSigner, origins []string, log *logrus.Logger) (*gin.Engine, error) {
	if err := validation.RegisterGin(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmw.Logger(log), web.Flashes(flashes))
	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
		}))
	}
	r.SetHTMLTemplate(web.Templates())

	// 認証不要
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	pages := r.Group("/", sessions.Load())
	{
		pages.GET("/", h.Auth.Home)
		pages.GET("/home", h.Auth.Home)
		pages.GET("/signup", h.Auth.SignupPage)
		pages.POST("/signup", h.Auth.Signup)
		pages.GET("/login", h.Auth.LoginPage)
		pages.POST("/login", h.Auth.Login)
		pages.GET("/logout", h.Auth.Logout)
		pages.GET("/account", h.Auth.Account)
		pages.GET("/wellbeing", h.Auth.Page(web.PageWellbeing, "Wellbeing"))
		pages.GET("/tasks", h.Auth.Page(web.PageTasks, "Tasks"))
		pages.GET("/resources", h.Auth.Page(web.PageResources, "Resources"))
		pages.GET("/dashboard", middleware.RequirePage(), h.Auth.Dashboard)
	}

	api := r.Group("/api", sessions.Load(), middleware.RequireAPI())
	{
		api.GET("/me", h.Auth.Me)

		api.GET("/tasks", h.Tasks.List)
		api.POST("/tasks", h.Tasks.Create)
		api.PUT("/tasks/:id", h.Tasks.Update)
		api.DELETE("/tasks/:id", h.Tasks.Delete)
		api.POST("/tasks/:id/toggle", h.Tasks.Toggle)

		api.GET("/notes", h.Notes.List)
		api.POST("/notes", h.Notes.Create)
		api.PUT("/notes/:id", h.Notes.Update)
		api.DELETE("/notes/:id", h.Notes.Delete)

		api.GET("/goals", h.Goals.List)
		api.POST("/goals", h.Goals.Create)
		api.PUT("/goals/:id", h.Goals.Update)
		api.DELETE("/goals/:id", h.Goals.Delete)
	}

	return r, nil
}

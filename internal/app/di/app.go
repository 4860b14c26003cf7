// Package di はアプリケーションのコンポーネントを生成する DI 用のファクトリを提供します。
package di

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"youth_balance/internal/app/router"
	authadapters "youth_balance/internal/feature/auth/adapters"
	authentity "youth_balance/internal/feature/auth/domain/entity"
	authhandler "youth_balance/internal/feature/auth/transport/handler"
	"youth_balance/internal/feature/auth/transport/middleware"
	authusecase "youth_balance/internal/feature/auth/usecase"
	goaladapters "youth_balance/internal/feature/goals/adapters"
	goalhandler "youth_balance/internal/feature/goals/transport/handler"
	goalusecase "youth_balance/internal/feature/goals/usecase"
	noteadapters "youth_balance/internal/feature/notes/adapters"
	notehandler "youth_balance/internal/feature/notes/transport/handler"
	noteusecase "youth_balance/internal/feature/notes/usecase"
	"youth_balance/internal/feature/starter"
	taskadapters "youth_balance/internal/feature/tasks/adapters"
	taskhandler "youth_balance/internal/feature/tasks/transport/handler"
	taskusecase "youth_balance/internal/feature/tasks/usecase"
	"youth_balance/internal/platform/config"
	"youth_balance/internal/platform/db"
	platformhandler "youth_balance/internal/platform/http/handler"
	jwtmw "youth_balance/internal/platform/jwt"
	"youth_balance/internal/platform/password"
)

// Models は永続化するモデルの一覧です。feature のテーブルが参照できるよう
// users を先頭に置くこと。
func Models() []any {
	return []any{
		&authentity.User{},
		&authadapters.SessionModel{},
		&taskadapters.TaskModel{},
		&noteadapters.NoteModel{},
		&goaladapters.GoalModel{},
	}
}

// DemoBootstrapper は空の DB にデモアカウントを作成します。
type DemoBootstrapper interface {
	BootstrapDemoUser(ctx context.Context) (bool, error)
}

// App は組み立て済みのアプリケーションです。
type App struct {
	Router   *gin.Engine
	Sessions *authusecase.SessionUsecase
	Accounts DemoBootstrapper
}

// NewApp はリポジトリ、usecase、ハンドラを結線します。rdb は nil でもかまいません。
func NewApp(cfg *config.Config, conn *gorm.DB, rdb *redis.Client, log *logrus.Logger) (*App, error) {
	hasher, err := password.New(cfg.Password.Hasher)
	if err != nil {
		return nil, err
	}

	// Repository
	userRepo := authadapters.NewUserRepository(conn)
	sessionRepo := NewSessionRepository(rdb, conn)
	taskRepo := taskadapters.NewTaskRepository(conn)
	noteRepo := noteadapters.NewNoteRepository(conn)
	goalRepo := goaladapters.NewGoalRepository(conn)

	// Usecase
	sessionUC := authusecase.NewSessionUsecase(sessionRepo, cfg.Session.DefaultTTL, cfg.Session.RememberTTL)
	seeder := starter.NewSeeder(taskRepo, noteRepo, goalRepo)
	authUC := authusecase.NewAuthUsecase(userRepo, seeder, db.NewTransactor(conn), sessionUC,
		hasher, NewMailer(cfg.Mail, log), log)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)
	noteUC := noteusecase.NewNoteUsecase(noteRepo)
	goalUC := goalusecase.NewGoalUsecase(goalRepo)

	// Handler
	signer := jwtmw.NewSigner(cfg.Session.Secret)
	cookies := middleware.NewCookies(signer, cfg.Session.CookieName, cfg.Session.SecureCookie)
	handlers := router.Handlers{
		Auth:   authhandler.NewAuthHandler(authUC, sessionUC, cookies, log),
		Tasks:  taskhandler.NewTaskHandler(taskUC, log),
		Notes:  notehandler.NewNoteHandler(noteUC, log),
		Goals:  goalhandler.NewGoalHandler(goalUC, log),
		Health: platformhandler.NewHealthHandler(healthChecks(conn, rdb), log),
	}

	r, err := router.NewRouter(handlers, middleware.NewSessions(sessionUC, cookies, log), signer, cfg.CORS.Origins, log)
	if err != nil {
		return nil, err
	}
	return &App{Router: r, Sessions: sessionUC, Accounts: authUC}, nil
}

func healthChecks(conn *gorm.DB, rdb *redis.Client) map[string]platformhandler.Check {
	checks := map[string]platformhandler.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}

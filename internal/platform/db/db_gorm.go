// Package db は gorm の接続を開き、feature のリポジトリが共有する
// トランザクション処理を提供します。
package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// retryInterval は接続リトライの間隔です。
var retryInterval = 3 * time.Second

// Config はダイアレクトと DSN を指定します。
type Config struct {
	Driver         string // "sqlite" or "postgres"
	DSN            string
	ConnectTimeout time.Duration
}

// Opener は DSN に対して gorm の接続を開きます。テストで差し替え可能です。
type Opener func(dsn string) (*gorm.DB, error)

// Open は cfg.ConnectTimeout が経過するか ctx が終了するまでリトライしながら接続します。
// 重複キーと not found のエラーは gorm の共通センチネルに変換されます。
func Open(ctx context.Context, cfg Config, log *logrus.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	var opener Opener
	dsn := cfg.DSN
	switch cfg.Driver {
	case "sqlite", "":
		dsn = SQLiteDSN(cfg.DSN)
		opener = func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }
	case "postgres":
		opener = func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	db, err := ConnectWithRetry(ctx, dsn, timeout, opener, log)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" || cfg.Driver == "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite は書き込みが1本のみ。1接続にすると :memory: も共有される
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// SQLiteDSN は DSN に指定が無ければ外部キー制約を有効にします。
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// ConnectWithRetry は成功するか、timeout が経過するか、ctx が終了するまで opener を呼び出します。
func ConnectWithRetry(ctx context.Context, dsn string, timeout time.Duration, opener Opener, log *logrus.Logger) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		if log != nil {
			log.WithError(err).Warn("db connect failed, retrying")
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("db connect aborted: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

// Migrate は models に不足しているテーブルとカラムを作成します。削除は一切行いません。
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

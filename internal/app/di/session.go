package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "youth_balance/internal/feature/auth/adapters"
	"youth_balance/internal/feature/auth/usecase"
	"youth_balance/internal/platform/session"
)

// NewSessionRepository は SessionRepository の実装を生成します。
// Redis が使える場合は Redis の実装を返し、
// それ以外は sessions テーブルにフォールバックします。
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionSQL(db)
}

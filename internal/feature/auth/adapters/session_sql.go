package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"youth_balance/internal/feature/auth/domain/entity"
	"youth_balance/internal/feature/auth/usecase"
	"youth_balance/internal/platform/db"
)

// sessionSQL は usecase.SessionRepository の GORM 実装です。
type sessionSQL struct {
	db *gorm.DB
}

// NewSessionSQL は sessions テーブルを使うセッションのリポジトリを生成します。
func NewSessionSQL(db *gorm.DB) *sessionSQL {
	return &sessionSQL{db: db}
}

var _ usecase.SessionRepository = (*sessionSQL)(nil)

func (r *sessionSQL) Create(ctx context.Context, session *entity.Session) error {
	return db.Conn(ctx, r.db).Omit("User").Create(SessionModelFromEntity(session)).Error
}

func (r *sessionSQL) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var m SessionModel
	if err := db.Conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

func (r *sessionSQL) Delete(ctx context.Context, id string) error {
	return db.Conn(ctx, r.db).Where("id = ?", id).Delete(&SessionModel{}).Error
}

func (r *sessionSQL) DeleteExpired(ctx context.Context) (int64, error) {
	res := db.Conn(ctx, r.db).Where("expires_at < ?", time.Now()).Delete(&SessionModel{})
	return res.RowsAffected, res.Error
}

package adapters

import (
	"time"

	"youth_balance/internal/feature/auth/domain/entity"
	"youth_balance/internal/platform/db"
)

// SessionModel は sessions テーブルの GORM モデルです。
// Redis が未設定のときのみ使います。
type SessionModel struct {
	ID        string     `gorm:"primaryKey;size:64"`
	UserID    uint       `gorm:"index;not null"`
	User      db.UserRef `gorm:"constraint:OnDelete:CASCADE"`
	Username  string     `gorm:"size:150;not null"`
	Email     string     `gorm:"size:255"`
	Remember  bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"index"`
}

// TableNameはGORMにテーブル名を返します。
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity は GORM モデルをドメインエンティティに変換します。
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Email:     m.Email,
		Remember:  m.Remember,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
	}
}

// SessionModelFromEntity はドメインエンティティを GORM モデルに変換します。
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Username:  s.Username,
		Email:     s.Email,
		Remember:  s.Remember,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
	}
}

package adapters

import (
	"time"

	"youth_balance/internal/feature/tasks/domain/entity"
	"youth_balance/internal/platform/db"
)

// TaskModel は tasks テーブルの GORM モデルです。
type TaskModel struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"index;not null"`
	User        db.UserRef `gorm:"constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:"not null;default:''"`
	Completed   bool       `gorm:"not null;default:false"`
	Priority    string     `gorm:"size:32;not null;default:medium"`
	Category    string     `gorm:"size:64;not null;default:general"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableNameはGORMにテーブル名を返します。
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity は GORM モデルをドメインエンティティに変換します。
func (m *TaskModel) ToEntity() entity.Task {
	return entity.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Completed:   m.Completed,
		Priority:    m.Priority,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
	}
}

// TaskModelFromEntity はドメインエンティティを GORM モデルに変換します。
func TaskModelFromEntity(t *entity.Task) *TaskModel {
	return &TaskModel{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
	}
}

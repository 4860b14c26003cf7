package adapters

import (
	"time"

	"youth_balance/internal/feature/goals/domain/entity"
	"youth_balance/internal/platform/db"
)

// GoalModel は goals テーブルの GORM モデルです。
type GoalModel struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"index;not null"`
	User        db.UserRef `gorm:"constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:"not null;default:''"`
	TargetDate  *time.Time `gorm:"type:date"`
	Progress    int        `gorm:"not null;default:0"`
	Status      string     `gorm:"size:32;not null;default:active"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableNameはGORMにテーブル名を返します。
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity は GORM モデルをドメインエンティティに変換します。
func (m *GoalModel) ToEntity() entity.Goal {
	g := entity.Goal{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Progress:    m.Progress,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
	if m.TargetDate != nil {
		d := entity.Day(*m.TargetDate)
		g.TargetDate = &d
	}
	return g
}

// GoalModelFromEntity はドメインエンティティを GORM モデルに変換します。
func GoalModelFromEntity(g *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:          g.ID,
		UserID:      g.UserID,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  g.TargetDate,
		Progress:    g.Progress,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
	}
}

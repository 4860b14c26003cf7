package adapters

import (
	"time"

	"youth_balance/internal/feature/notes/domain/entity"
	"youth_balance/internal/platform/db"
)

// NoteModel は notes テーブルの GORM モデルです。
type NoteModel struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"index;not null"`
	User      db.UserRef `gorm:"constraint:OnDelete:CASCADE"`
	Title     string     `gorm:"not null"`
	Content   string     `gorm:"type:text;not null;default:''"`
	Category  string     `gorm:"size:64;not null;default:general"`
	Color     string     `gorm:"size:16;not null;default:'#ff99c8'"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableNameはGORMにテーブル名を返します。
func (NoteModel) TableName() string {
	return "notes"
}

// ToEntity は GORM モデルをドメインエンティティに変換します。
func (m *NoteModel) ToEntity() entity.Note {
	return entity.Note{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		Category:  m.Category,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}

// NoteModelFromEntity はドメインエンティティを GORM モデルに変換します。
func NoteModelFromEntity(n *entity.Note) *NoteModel {
	return &NoteModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
	}
}

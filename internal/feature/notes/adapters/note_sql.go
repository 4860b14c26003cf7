// Package adapters は GORM でノートを永続化します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"youth_balance/internal/feature/notes/domain/entity"
	"youth_balance/internal/feature/notes/usecase"
	"youth_balance/internal/platform/db"
	"youth_balance/internal/shared/apperr"
)

// noteRepository は usecase.NoteRepository の GORM 実装です。
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository は db を使うノートのリポジトリを生成します。
func NewNoteRepository(db *gorm.DB) *noteRepository {
	return &noteRepository{db: db}
}

var _ usecase.NoteRepository = (*noteRepository)(nil)

func (r *noteRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Note, error) {
	var models []NoteModel
	err := db.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	notes := make([]entity.Note, 0, len(models))
	for i := range models {
		notes = append(notes, models[i].ToEntity())
	}
	return notes, nil
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	m := NoteModelFromEntity(note)
	if err := db.Conn(ctx, r.db).Omit("User").Create(m).Error; err != nil {
		return err
	}
	note.ID = m.ID
	note.CreatedAt = m.CreatedAt
	return nil
}

func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	res := db.Conn(ctx, r.db).Model(&NoteModel{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]any{
			"title":    note.Title,
			"content":  note.Content,
			"category": note.Category,
			"color":    note.Color,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, userID, id uint) error {
	res := db.Conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&NoteModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Package usecase はノートの操作を実装します。
package usecase

import (
	"context"

	"youth_balance/internal/feature/notes/domain/entity"
)

// NoteRepository はノートの永続化層を抽象化します。
// Update と Delete は、ノートが存在しないか他人の所有であれば apperr.ErrNotFound を返します。
type NoteRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.Note, error)
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, userID, id uint) error
}

// NoteUsecase はユーザのノートを管理します。
type NoteUsecase struct {
	repo NoteRepository
}

// NewNoteUsecase は NoteUsecase を生成します。
func NewNoteUsecase(repo NoteRepository) *NoteUsecase {
	return &NoteUsecase{repo: repo}
}

// List はユーザのノートを新しい順に返します。
func (u *NoteUsecase) List(ctx context.Context, userID uint) ([]entity.Note, error) {
	return u.repo.ListByUser(ctx, userID)
}

// Create はノートを追加し、その ID を返します。
func (u *NoteUsecase) Create(ctx context.Context, userID uint, f entity.Fields) (uint, error) {
	note, err := entity.NewNote(userID, f)
	if err != nil {
		return 0, err
	}
	if err := u.repo.Create(ctx, note); err != nil {
		return 0, err
	}
	return note.ID, nil
}

// Update はノートの編集可能な項目を置き換えます。
func (u *NoteUsecase) Update(ctx context.Context, userID, id uint, f entity.Fields) error {
	f, err := f.Normalize()
	if err != nil {
		return err
	}
	note := &entity.Note{ID: id, UserID: userID}
	note.Apply(f)
	return u.repo.Update(ctx, note)
}

// Delete はノートを削除します。
func (u *NoteUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}

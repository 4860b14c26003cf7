// Package usecase はタスクの操作を実装します。すべての呼び出しは操作中のユーザに限定されます。
package usecase

import (
	"context"

	"youth_balance/internal/feature/tasks/domain/entity"
)

// TaskRepository はタスクの永続化層を抽象化します。
// Update・Delete・Toggle は、タスクが存在しないか他人の所有であれば apperr.ErrNotFound を返します。
type TaskRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, userID, id uint) error
	Toggle(ctx context.Context, userID, id uint) (bool, error)
}

// TaskUsecase はユーザのタスクを管理します。
type TaskUsecase struct {
	repo TaskRepository
}

// NewTaskUsecase は TaskUsecase を生成します。
func NewTaskUsecase(repo TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

// List はユーザのタスクを新しい順に返します。
func (u *TaskUsecase) List(ctx context.Context, userID uint) ([]entity.Task, error) {
	return u.repo.ListByUser(ctx, userID)
}

// Create はタスクを追加し、その ID を返します。
func (u *TaskUsecase) Create(ctx context.Context, userID uint, f entity.Fields) (uint, error) {
	task, err := entity.NewTask(userID, f)
	if err != nil {
		return 0, err
	}
	if err := u.repo.Create(ctx, task); err != nil {
		return 0, err
	}
	return task.ID, nil
}

// Update はタスクの編集可能な項目を置き換えます。省略した任意項目はデフォルト値に戻ります。
func (u *TaskUsecase) Update(ctx context.Context, userID, id uint, f entity.Fields) error {
	f, err := f.Normalize()
	if err != nil {
		return err
	}
	task := &entity.Task{ID: id, UserID: userID}
	task.Apply(f)
	return u.repo.Update(ctx, task)
}

// Delete はタスクを削除します。
func (u *TaskUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}

// Toggle は完了フラグを反転し、新しい値を返します。
func (u *TaskUsecase) Toggle(ctx context.Context, userID, id uint) (bool, error) {
	return u.repo.Toggle(ctx, userID, id)
}

// Package adapters は GORM でタスクを永続化します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"youth_balance/internal/feature/tasks/domain/entity"
	"youth_balance/internal/feature/tasks/usecase"
	"youth_balance/internal/platform/db"
	"youth_balance/internal/shared/apperr"
)

// taskRepository は usecase.TaskRepository の GORM 実装です。
// すべての SQL は user_id で絞り込みます。
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository は db を使うタスクのリポジトリを生成します。
func NewTaskRepository(db *gorm.DB) *taskRepository {
	return &taskRepository{db: db}
}

var _ usecase.TaskRepository = (*taskRepository)(nil)

func (r *taskRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	var models []TaskModel
	err := db.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	tasks := make([]entity.Task, 0, len(models))
	for i := range models {
		tasks = append(tasks, models[i].ToEntity())
	}
	return tasks, nil
}

// Create はタスクを DB に追加し、ID と CreatedAt を設定します。
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	m := TaskModelFromEntity(task)
	if err := db.Conn(ctx, r.db).Omit("User").Create(m).Error; err != nil {
		return err
	}
	task.ID = m.ID
	task.CreatedAt = m.CreatedAt
	return nil
}

// Update はタスクの編集可能な項目を書き込みます。task.UserID の所有する
// task.ID の行が無ければ apperr.ErrNotFound を返します。
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	res := db.Conn(ctx, r.db).Model(&TaskModel{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"priority":    task.Priority,
			"category":    task.Category,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, id uint) error {
	res := db.Conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&TaskModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Toggle は1回の UPDATE で completed を反転し、同じトランザクションで
// 新しい値を読み戻します。
func (r *taskRepository) Toggle(ctx context.Context, userID, id uint) (bool, error) {
	var completed bool
	err := db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&TaskModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("completed", gorm.Expr("NOT completed"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		var values []bool
		if err := tx.Model(&TaskModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Pluck("completed", &values).Error; err != nil {
			return err
		}
		if len(values) == 0 {
			return apperr.ErrNotFound
		}
		completed = values[0]
		return nil
	})
	return completed, err
}

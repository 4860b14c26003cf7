// Package adapters は GORM でゴールを永続化します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"youth_balance/internal/feature/goals/domain/entity"
	"youth_balance/internal/feature/goals/usecase"
	"youth_balance/internal/platform/db"
	"youth_balance/internal/shared/apperr"
)

// goalRepository は usecase.GoalRepository の GORM 実装です。
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository は db を使うゴールのリポジトリを生成します。
func NewGoalRepository(db *gorm.DB) *goalRepository {
	return &goalRepository{db: db}
}

var _ usecase.GoalRepository = (*goalRepository)(nil)

func (r *goalRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Goal, error) {
	var models []GoalModel
	err := db.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	goals := make([]entity.Goal, 0, len(models))
	for i := range models {
		goals = append(goals, models[i].ToEntity())
	}
	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	m := GoalModelFromEntity(goal)
	if err := db.Conn(ctx, r.db).Omit("User").Create(m).Error; err != nil {
		return err
	}
	goal.ID = m.ID
	goal.CreatedAt = m.CreatedAt
	return nil
}

// Update は title、description、target_date、progress を書き込みます。status は変更しません。
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	res := db.Conn(ctx, r.db).Model(&GoalModel{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Updates(map[string]any{
			"title":       goal.Title,
			"description": goal.Description,
			"target_date": goal.TargetDate,
			"progress":    goal.Progress,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, userID, id uint) error {
	res := db.Conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&GoalModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Package usecase はゴールの操作を実装します。
package usecase

import (
	"context"

	"youth_balance/internal/feature/goals/domain/entity"
)

// GoalRepository はゴールの永続化層を抽象化します。
// Update と Delete は、ゴールが存在しないか他人の所有であれば apperr.ErrNotFound を返します。
type GoalRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.Goal, error)
	Create(ctx context.Context, goal *entity.Goal) error
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, userID, id uint) error
}

// GoalUsecase はユーザのゴールを管理します。
type GoalUsecase struct {
	repo GoalRepository
}

// NewGoalUsecase は GoalUsecase を生成します。
func NewGoalUsecase(repo GoalRepository) *GoalUsecase {
	return &GoalUsecase{repo: repo}
}

// List はユーザのゴールを新しい順に返します。
func (u *GoalUsecase) List(ctx context.Context, userID uint) ([]entity.Goal, error) {
	return u.repo.ListByUser(ctx, userID)
}

// Create は active なゴールを追加し、その ID を返します。
func (u *GoalUsecase) Create(ctx context.Context, userID uint, f entity.Fields) (uint, error) {
	goal, err := entity.NewGoal(userID, f)
	if err != nil {
		return 0, err
	}
	if err := u.repo.Create(ctx, goal); err != nil {
		return 0, err
	}
	return goal.ID, nil
}

// Update はタイトル、説明、目標日、進捗を置き換えます。
// 目標日を省略すると消去され、進捗を省略すると0に戻ります。
func (u *GoalUsecase) Update(ctx context.Context, userID, id uint, f entity.Fields) error {
	f, err := f.Normalize()
	if err != nil {
		return err
	}
	goal := &entity.Goal{ID: id, UserID: userID}
	goal.Apply(f)
	return u.repo.Update(ctx, goal)
}

// Delete はゴールを削除します。
func (u *GoalUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}

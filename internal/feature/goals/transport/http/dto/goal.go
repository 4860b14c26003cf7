// Package dto はゴールのエンドポイントの JSON ボディを定義します。
package dto

import (
	"time"

	"youth_balance/internal/feature/goals/domain/entity"
)

// GoalRequest は POST /api/goals と PUT /api/goals/:id のボディです。
// target_date が null・空・省略のときは目標日なしです。
type GoalRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TargetDate  *string `json:"target_date"`
	Progress    int     `json:"progress"`
}

// Fields はリクエストを編集可能なゴールの項目に変換します。
func (r GoalRequest) Fields() (entity.Fields, error) {
	var raw string
	if r.TargetDate != nil {
		raw = *r.TargetDate
	}
	target, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Fields{}, err
	}
	return entity.Fields{
		Title:       r.Title,
		Description: r.Description,
		TargetDate:  target,
		Progress:    r.Progress,
	}, nil
}

// GoalResponse は GET /api/goals の1要素です。
type GoalResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetDate  *string   `json:"target_date"`
	Progress    int       `json:"progress"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGoalList は一覧エンドポイント用にゴールを変換します。nil は返しません。
func NewGoalList(goals []entity.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalResponse{
			ID:          g.ID,
			UserID:      g.UserID,
			Title:       g.Title,
			Description: g.Description,
			TargetDate:  entity.FormatDate(g.TargetDate),
			Progress:    g.Progress,
			Status:      g.Status,
			CreatedAt:   g.CreatedAt,
		})
	}
	return out
}

// Package dto はタスクのエンドポイントの JSON ボディを定義します。
package dto

import (
	"time"

	"youth_balance/internal/feature/tasks/domain/entity"
)

// TaskRequest は POST /api/tasks と PUT /api/tasks/:id のボディです。
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// Fields はリクエストを編集可能なタスクの項目に変換します。
func (r TaskRequest) Fields() entity.Fields {
	return entity.Fields{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
	}
}

// TaskResponse は GET /api/tasks の1要素です。
type TaskResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTaskList は一覧エンドポイント用にタスクを変換します。nil は返しません。
func NewTaskList(tasks []entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskResponse{
			ID:          t.ID,
			UserID:      t.UserID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			Priority:    t.Priority,
			Category:    t.Category,
			CreatedAt:   t.CreatedAt,
		})
	}
	return out
}

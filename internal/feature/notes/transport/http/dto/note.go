// Package dto はノートのエンドポイントの JSON ボディを定義します。
package dto

import (
	"time"

	"youth_balance/internal/feature/notes/domain/entity"
)

// NoteRequest は POST /api/notes と PUT /api/notes/:id のボディです。
type NoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// Fields はリクエストを編集可能なノートの項目に変換します。
func (r NoteRequest) Fields() entity.Fields {
	return entity.Fields{Title: r.Title, Content: r.Content, Category: r.Category, Color: r.Color}
}

// NoteResponse は GET /api/notes の1要素です。
type NoteResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNoteList は一覧エンドポイント用にノートを変換します。nil は返しません。
func NewNoteList(notes []entity.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Content:   n.Content,
			Category:  n.Category,
			Color:     n.Color,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

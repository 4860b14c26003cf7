// Package entity はタスクのドメインモデルを定義します。
package entity

import (
	"fmt"
	"strings"
	"time"

	"youth_balance/internal/shared/apperr"
)

// 項目が空のときに使うデフォルト値。
const (
	DefaultPriority = "medium"
	DefaultCategory = "general"
)

// 既定の優先度。それ以外の値もそのまま保存します。
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ErrTitleRequired はタイトルが空または空白のみのときに返されます。
var ErrTitleRequired = fmt.Errorf("%w: title is required", apperr.ErrValidation)

// Task は1人のユーザが持つ ToDo 項目です。
type Task struct {
	ID          uint
	UserID      uint
	Title       string
	Description string
	Completed   bool
	Priority    string
	Category    string
	CreatedAt   time.Time
}

// Fields はユーザが編集できるタスクの属性です。
type Fields struct {
	Title       string
	Description string
	Priority    string
	Category    string
}

// Normalize はタイトルを検査し、空の任意項目にデフォルト値を入れます。
func (f Fields) Normalize() (Fields, error) {
	if strings.TrimSpace(f.Title) == "" {
		return Fields{}, ErrTitleRequired
	}
	if f.Priority == "" {
		f.Priority = DefaultPriority
	}
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	return f, nil
}

// NewTask は userID の未完了タスクを生成します。
func NewTask(userID uint, f Fields) (*Task, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	return &Task{
		UserID:      userID,
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.Priority,
		Category:    f.Category,
	}, nil
}

// Apply は編集可能な項目を置き換えます。f は Normalize 済みであること。
func (t *Task) Apply(f Fields) {
	t.Title = f.Title
	t.Description = f.Description
	t.Priority = f.Priority
	t.Category = f.Category
}

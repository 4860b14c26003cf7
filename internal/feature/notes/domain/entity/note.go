// Package entity はノートのドメインモデルを定義します。
package entity

import (
	"fmt"
	"strings"
	"time"

	"youth_balance/internal/shared/apperr"
)

// 項目が空のときに使うデフォルト値。
const (
	DefaultCategory = "general"
	DefaultColor    = "#ff99c8"
)

// ErrTitleRequired はタイトルが空または空白のみのときに返されます。
var ErrTitleRequired = fmt.Errorf("%w: title is required", apperr.ErrValidation)

// Note は1人のユーザが持つ自由記述のカードです。
type Note struct {
	ID        uint
	UserID    uint
	Title     string
	Content   string
	Category  string
	Color     string
	CreatedAt time.Time
}

// Fields はユーザが編集できるノートの属性です。
type Fields struct {
	Title    string
	Content  string
	Category string
	Color    string
}

// Normalize はタイトルを検査し、空の任意項目にデフォルト値を入れます。
func (f Fields) Normalize() (Fields, error) {
	if strings.TrimSpace(f.Title) == "" {
		return Fields{}, ErrTitleRequired
	}
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	if f.Color == "" {
		f.Color = DefaultColor
	}
	return f, nil
}

// NewNote は userID のノートを生成します。
func NewNote(userID uint, f Fields) (*Note, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	n := &Note{UserID: userID}
	n.Apply(f)
	return n, nil
}

// Apply は編集可能な項目を置き換えます。f は Normalize 済みであること。
func (n *Note) Apply(f Fields) {
	n.Title = f.Title
	n.Content = f.Content
	n.Category = f.Category
	n.Color = f.Color
}

// Package entity はゴールのドメインモデルを定義します。
package entity

import (
	"fmt"
	"strings"
	"time"

	"youth_balance/internal/shared/apperr"
)

// DateLayout は目標日の入出力形式です。
const DateLayout = "2006-01-02"

// StatusActive はすべてのゴールの状態です。他の状態には遷移しません。
const StatusActive = "active"

var (
	// ErrTitleRequired はタイトルが空または空白のみのときに返されます。
	ErrTitleRequired = fmt.Errorf("%w: title is required", apperr.ErrValidation)

	// ErrInvalidTargetDate は目標日が YYYY-MM-DD 形式でないときに返されます。
	ErrInvalidTargetDate = fmt.Errorf("%w: target_date must be a date in YYYY-MM-DD format", apperr.ErrValidation)
)

// Goal は1人のユーザが持つ長期的な目標です。
// Progress は範囲の制約が無い整数です。
type Goal struct {
	ID          uint
	UserID      uint
	Title       string
	Description string
	TargetDate  *time.Time
	Progress    int
	Status      string
	CreatedAt   time.Time
}

// Fields はユーザが編集できるゴールの属性です。
type Fields struct {
	Title       string
	Description string
	TargetDate  *time.Time
	Progress    int
}

// Normalize はタイトルを検査し、目標日を日付単位に切り詰めます。
func (f Fields) Normalize() (Fields, error) {
	if strings.TrimSpace(f.Title) == "" {
		return Fields{}, ErrTitleRequired
	}
	if f.TargetDate != nil {
		d := Day(*f.TargetDate)
		f.TargetDate = &d
	}
	return f, nil
}

// NewGoal は userID の active なゴールを生成します。
func NewGoal(userID uint, f Fields) (*Goal, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	g := &Goal{UserID: userID, Status: StatusActive}
	g.Apply(f)
	return g, nil
}

// Apply は編集可能な項目を置き換えます。f は Normalize 済みであること。
func (g *Goal) Apply(f Fields) {
	g.Title = f.Title
	g.Description = f.Description
	g.TargetDate = f.TargetDate
	g.Progress = f.Progress
}

// Day は t の日付の UTC 0時を返します。
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate は YYYY-MM-DD 形式の文字列を解析します。空文字は日付なしです。
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, ErrInvalidTargetDate
	}
	return &t, nil
}

// FormatDate は t を YYYY-MM-DD で返し、日付が無ければ nil を返します。
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

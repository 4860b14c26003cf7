// Package starter は新規アカウントに決まったタスク・ノート・ゴールを投入します。
package starter

import (
	"context"
	"fmt"
	"time"

	goalentity "youth_balance/internal/feature/goals/domain/entity"
	noteentity "youth_balance/internal/feature/notes/domain/entity"
	taskentity "youth_balance/internal/feature/tasks/domain/entity"
)

// TaskCreator はタスクを保存します。
type TaskCreator interface {
	Create(ctx context.Context, task *taskentity.Task) error
}

// NoteCreator はノートを保存します。
type NoteCreator interface {
	Create(ctx context.Context, note *noteentity.Note) error
}

// GoalCreator はゴールを保存します。
type GoalCreator interface {
	Create(ctx context.Context, goal *goalentity.Goal) error
}

// Seeder はユーザの初期データを書き込みます。自前のトランザクションは
// 開かず、呼び出し側がトランザクションを持つ ctx を渡します。
type Seeder struct {
	tasks TaskCreator
	notes NoteCreator
	goals GoalCreator
	now   func() time.Time
}

// NewSeeder は Seeder を生成します。
func NewSeeder(tasks TaskCreator, notes NoteCreator, goals GoalCreator) *Seeder {
	return &Seeder{tasks: tasks, notes: notes, goals: goals, now: time.Now}
}

// Seed は userID の初期タスク・ノート・ゴールを追加します。
// 最初の失敗で中断します。
func (s *Seeder) Seed(ctx context.Context, userID uint) error {
	for _, f := range Tasks {
		task, err := taskentity.NewTask(userID, f)
		if err != nil {
			return err
		}
		if err := s.tasks.Create(ctx, task); err != nil {
			return fmt.Errorf("seed task %q: %w", f.Title, err)
		}
	}

	for _, f := range Notes {
		note, err := noteentity.NewNote(userID, f)
		if err != nil {
			return err
		}
		if err := s.notes.Create(ctx, note); err != nil {
			return fmt.Errorf("seed note %q: %w", f.Title, err)
		}
	}

	today := s.now()
	for _, g := range Goals {
		goal, err := goalentity.NewGoal(userID, g.fields(today))
		if err != nil {
			return err
		}
		if err := s.goals.Create(ctx, goal); err != nil {
			return fmt.Errorf("seed goal %q: %w", g.Title, err)
		}
	}
	return nil
}

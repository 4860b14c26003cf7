package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_balance/internal/feature/tasks/domain/entity"
	"youth_balance/internal/shared/apperr"
)

// mockTaskRepository はテスト用の TaskRepository モック実装です。
type mockTaskRepository struct {
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.Task, error)
	CreateFunc     func(ctx context.Context, task *entity.Task) error
	UpdateFunc     func(ctx context.Context, task *entity.Task) error
	DeleteFunc     func(ctx context.Context, userID, id uint) error
	ToggleFunc     func(ctx context.Context, userID, id uint) (bool, error)
}

func (m *mockTaskRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	task.ID = 1
	return nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockTaskRepository) Toggle(ctx context.Context, userID, id uint) (bool, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, userID, id)
	}
	return true, nil
}

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("applies defaults and returns the id", func(t *testing.T) {
		var saved *entity.Task
		repo := &mockTaskRepository{CreateFunc: func(ctx context.Context, task *entity.Task) error {
			task.ID = 11
			saved = task
			return nil
		}}

		id, err := NewTaskUsecase(repo).Create(context.Background(), 5, entity.Fields{Title: "Buy milk"})

		require.NoError(t, err)
		assert.Equal(t, uint(11), id)
		assert.Equal(t, uint(5), saved.UserID)
		assert.Equal(t, "medium", saved.Priority)
		assert.Equal(t, "general", saved.Category)
		assert.False(t, saved.Completed)
	})

	t.Run("blank title never reaches the repository", func(t *testing.T) {
		repo := &mockTaskRepository{CreateFunc: func(ctx context.Context, task *entity.Task) error {
			t.Fatal("repository must not be called")
			return nil
		}}

		_, err := NewTaskUsecase(repo).Create(context.Background(), 5, entity.Fields{Title: "  "})

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockTaskRepository{CreateFunc: func(ctx context.Context, task *entity.Task) error {
			return errors.New("disk full")
		}}

		id, err := NewTaskUsecase(repo).Create(context.Background(), 5, entity.Fields{Title: "x"})

		assert.Error(t, err)
		assert.Zero(t, id)
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	tests := []struct {
		name    string
		fields  entity.Fields
		repoErr error
		want    *entity.Task
		wantErr error
	}{
		{
			name:   "full replacement with defaults",
			fields: entity.Fields{Title: "Renamed"},
			want:   &entity.Task{ID: 3, UserID: 5, Title: "Renamed", Priority: "medium", Category: "general"},
		},
		{
			name:    "blank title",
			fields:  entity.Fields{Title: ""},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "not found or not owned",
			fields:  entity.Fields{Title: "x"},
			repoErr: apperr.ErrNotFound,
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *entity.Task
			repo := &mockTaskRepository{UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				got = task
				return tt.repoErr
			}}

			err := NewTaskUsecase(repo).Update(context.Background(), 5, 3, tt.fields)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskUsecase_ScopesByOwner(t *testing.T) {
	var calls []string
	repo := &mockTaskRepository{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]entity.Task, error) {
			assert.Equal(t, uint(5), userID)
			calls = append(calls, "list")
			return []entity.Task{{ID: 2}, {ID: 1}}, nil
		},
		DeleteFunc: func(ctx context.Context, userID, id uint) error {
			assert.Equal(t, [2]uint{5, 9}, [2]uint{userID, id})
			calls = append(calls, "delete")
			return nil
		},
		ToggleFunc: func(ctx context.Context, userID, id uint) (bool, error) {
			assert.Equal(t, [2]uint{5, 9}, [2]uint{userID, id})
			calls = append(calls, "toggle")
			return true, nil
		},
	}
	uc := NewTaskUsecase(repo)
	ctx := context.Background()

	tasks, err := uc.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	completed, err := uc.Toggle(ctx, 5, 9)
	require.NoError(t, err)
	assert.True(t, completed)

	require.NoError(t, uc.Delete(ctx, 5, 9))
	assert.Equal(t, []string{"list", "toggle", "delete"}, calls)
}

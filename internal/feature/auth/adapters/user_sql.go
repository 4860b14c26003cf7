package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"youth_balance/internal/feature/auth/domain/entity"
	"youth_balance/internal/feature/auth/usecase"
	"youth_balance/internal/platform/db"
)

// userRepository は usecase.UserRepository の GORM 実装です。
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository は db を使うユーザのリポジトリを生成します。
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

var _ usecase.UserRepository = (*userRepository)(nil)

// Create はユーザを DB に追加し、ID を設定します。
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := db.Conn(ctx, r.db).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := db.Conn(ctx, r.db).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := db.Conn(ctx, r.db).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	res := db.Conn(ctx, r.db).Model(&entity.User{}).Where("id = ?", id).Update("last_login", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := db.Conn(ctx, r.db).Model(&entity.User{}).Count(&n).Error
	return n, err
}

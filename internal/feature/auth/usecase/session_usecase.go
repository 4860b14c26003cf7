package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"youth_balance/internal/feature/auth/domain/entity"
)

// SessionRepository はセッションの永続化層を抽象化します。
type SessionRepository interface {
	// Create は新しいセッションをストレージに保存します。
	Create(ctx context.Context, session *entity.Session) error

	// FindByID は ID をキーにセッションを検索します。
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete はセッションを削除します。存在しないセッションの削除はエラーにしません。
	Delete(ctx context.Context, id string) error

	// DeleteExpired は期限切れのセッションをすべて削除します。
	// 削除した件数を返します。
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionUsecase はサーバ側のログインセッションを管理します。
type SessionUsecase struct {
	repo        SessionRepository
	defaultTTL  time.Duration
	rememberTTL time.Duration
	now         func() time.Time
	newID       func() string
}

// NewSessionUsecase は SessionUsecase を生成します。ログイン時にログイン状態の保持を
// 選んだ場合は rememberTTL、それ以外は defaultTTL を使います。
func NewSessionUsecase(repo SessionRepository, defaultTTL, rememberTTL time.Duration) *SessionUsecase {
	return &SessionUsecase{
		repo:        repo,
		defaultTTL:  defaultTTL,
		rememberTTL: rememberTTL,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Start は user のセッションを作成します。
func (u *SessionUsecase) Start(ctx context.Context, user *entity.User, remember bool) (*entity.Session, error) {
	now := u.now()
	ttl := u.defaultTTL
	if remember {
		ttl = u.rememberTTL
	}
	s := &entity.Session{
		ID:        u.newID(),
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Remember:  remember,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return s, nil
}

// Authenticate は id の有効なセッションを返します。
// 存在しない・期限切れ・無効化済みのセッションはすべて未認証エラーになります。
func (u *SessionUsecase) Authenticate(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.IsRevoked() || u.now().After(s.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return s, nil
}

// End はセッションのサーバ側の状態をすべて消去します。
func (u *SessionUsecase) End(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := u.repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// PurgeExpired は期限切れのセッションを削除し、その件数を返します。
func (u *SessionUsecase) PurgeExpired(ctx context.Context) (int64, error) {
	return u.repo.DeleteExpired(ctx)
}

// Package session はログインセッションを Redis に保存します。
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"youth_balance/internal/feature/auth/domain/entity"
	"youth_balance/internal/feature/auth/usecase"
)

// SessionRedis は usecase.SessionRepository の Redis 実装です。
// セッションごとに1つの JSON 値を持ち、キーはセッションと同時に失効します。
type SessionRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis は新しい SessionRedis のインスタンスを生成します。
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey はセッションの Redis キーを返します。
func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Create は新しいセッションを Redis に保存します。
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	return r.client.Set(ctx, r.sessionKey(session.ID), data, ttl).Err()
}

// FindByID は ID をキーにセッションを検索します。
// デコードできない値は削除し、見つからなかったものとして扱います。
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	key := r.sessionKey(id)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		_ = r.client.Del(ctx, key).Err()
		return nil, usecase.ErrSessionNotFound
	}

	return &session, nil
}

// Delete はセッションのキーを削除します。
func (r *SessionRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.sessionKey(id)).Err()
}

// DeleteExpired は何もしません。Redis は TTL でセッションのキーを失効させます。
func (r *SessionRedis) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

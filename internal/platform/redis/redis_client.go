// Package redis はセッションストア用の Redis クライアントを生成します。
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrDisabled はアドレスが未設定のときに返されます。
var ErrDisabled = errors.New("redis disabled")

// Options は接続設定です。
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient は接続して PING を送ります。エラー時、呼び出し側は SQL のセッションストアにフォールバックします。
func NewRedisClient(ctx context.Context, opts Options, log *logrus.Logger) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, ErrDisabled
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).WithField("address", opts.Addr).Error("redis connection failed")
		_ = rdb.Close()
		return nil, err
	}

	log.WithField("address", opts.Addr).Info("redis connection successful")
	return rdb, nil
}

// Package identity は認証済みユーザをリクエストの context に載せて運びます。
package identity

import "context"

// Identity はセッションから確定した、リクエストを行っているユーザです。
type Identity struct {
	UserID   uint
	Username string
	Email    string
}

type ctxKey struct{}

// WithIdentity は id を保持した ctx のコピーを返します。
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext は ctx に格納された Identity を返します。
// 匿名リクエストの場合 ok は false です。
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserID == 0 {
		return Identity{}, false
	}
	return id, true
}

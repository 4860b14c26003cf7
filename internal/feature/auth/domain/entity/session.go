package entity

import (
	"time"

	"youth_balance/internal/shared/identity"
)

// Session はログイン時に作られるサーバ側の状態です。
// ブラウザは ID への署名付き参照のみを持ちます。
type Session struct {
	ID        string     `json:"id"`
	UserID    uint       `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Remember  bool       `json:"remember"` // persistent cookie requested at login
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// IsExpired はセッションが有効期限を過ぎていれば true を返します。
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked はセッションが無効化されていれば true を返します。
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid はセッションが期限切れでも無効化済みでもなければ true を返します。
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}

// Identity はセッションが持つユーザを返します。
func (s *Session) Identity() identity.Identity {
	return identity.Identity{UserID: s.UserID, Username: s.Username, Email: s.Email}
}

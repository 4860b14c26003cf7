// Package jwtmw は Cookie の値に署名し、検証します。
// セッション Cookie はセッション ID のみを持ち、それ以外はすべてサーバ側に置きます。
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken は改ざん・期限切れ・不正な Cookie の値に対して返されます。
var ErrInvalidToken = errors.New("invalid session token")

// クレーム名。トークンはセッション用かフラッシュ用のどちらか一方です。
const (
	claimSessionID     = "sid"
	claimFlashCategory = "fcat"
	claimFlashMessage  = "fmsg"
)

// Signer はセッション ID またはフラッシュメッセージを包む HS256 トークンを発行・解析します。
type Signer struct {
	secret []byte
}

// NewSigner は指定のシークレットで Signer を生成します。
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign は expiresAt に失効する sessionID のトークンを返します。
func (s *Signer) Sign(sessionID string, expiresAt time.Time) (string, error) {
	return s.sign(jwt.MapClaims{claimSessionID: sessionID}, expiresAt)
}

// Parse は tokenStr を検証し、含まれるセッション ID を返します。
func (s *Signer) Parse(tokenStr string) (string, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return "", err
	}
	sid, ok := claims[claimSessionID].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}

// SignFlash は一度だけ表示するページメッセージを含むトークンを返します。
func (s *Signer) SignFlash(category, message string, expiresAt time.Time) (string, error) {
	return s.sign(jwt.MapClaims{claimFlashCategory: category, claimFlashMessage: message}, expiresAt)
}

// ParseFlash は tokenStr を検証し、含まれるメッセージを返します。
func (s *Signer) ParseFlash(tokenStr string) (category, message string, err error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return "", "", err
	}
	if _, isSession := claims[claimSessionID]; isSession {
		return "", "", ErrInvalidToken
	}
	category, _ = claims[claimFlashCategory].(string)
	message, ok := claims[claimFlashMessage].(string)
	if !ok || message == "" {
		return "", "", ErrInvalidToken
	}
	return category, message, nil
}

func (s *Signer) sign(claims jwt.MapClaims, expiresAt time.Time) (string, error) {
	claims["exp"] = expiresAt.Unix()
	claims["iat"] = time.Now().Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Signer) parse(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// HMAC 以外は拒否
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

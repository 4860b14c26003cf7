// Package password はアカウントのパスワードをハッシュ化・検証します。
//
// 方式は2つあります。SHA256Hasher は従来方式で、ソルト無しの決定的な
// 16進ダイジェストを生成します。BcryptHasher はソルト付き bcrypt でデフォルトです。
// その Verify は従来方式のダイジェストも受け付けるため、旧方式で作成した
// アカウントもログインできます。
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher はパスワードをハッシュ化し、平文と保存済みダイジェストを照合します。
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(digest, plain string) bool
}

// New は設定された方式（"bcrypt" または "sha256"）の Hasher を返します。
func New(scheme string) (Hasher, error) {
	switch scheme {
	case "", "bcrypt":
		return NewBcryptHasher(bcrypt.DefaultCost), nil
	case "sha256":
		return SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", scheme)
	}
}

// SHA256Hasher は従来方式 hex(sha256(password)) です。
type SHA256Hasher struct{}

// Hash は plain の sha256 を16進で返します。同じ入力は常に同じダイジェストになります。
func (SHA256Hasher) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

// Verify は定数時間で比較します。
func (h SHA256Hasher) Verify(digest, plain string) bool {
	got, _ := h.Hash(plain)
	return subtle.ConstantTimeCompare([]byte(got), []byte(strings.ToLower(digest))) == 1
}

// BcryptHasher は指定コストの bcrypt でハッシュ化します。
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher は BcryptHasher を生成します。範囲外のコストはデフォルト値を使います。
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash は事前ハッシュしたパスワードのソルト付き bcrypt ダイジェストを返します。
func (h BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Verify は plain を bcrypt ダイジェスト、または従来の sha256 ダイジェストと照合します。
func (h BcryptHasher) Verify(digest, plain string) bool {
	if isBcrypt(digest) {
		return bcrypt.CompareHashAndPassword([]byte(digest), prehash(plain)) == nil
	}
	return SHA256Hasher{}.Verify(digest, plain)
}

// prehash は任意の長さのパスワードを、bcrypt の入力上限72バイトより短い44バイトに畳み込みます。
func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}

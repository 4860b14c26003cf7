// Package entity は auth feature のドメインエンティティを定義します。
package entity

import (
	"strings"
	"time"
)

// DefaultProfileColor は新規アカウントに割り当てる表示色です。
const DefaultProfileColor = "#ff99c8"

// User は登録済みのアカウントを表します。
type User struct {
	// ID はユーザの一意な識別子です。
	ID uint `gorm:"primaryKey"`

	// Username はログイン名です。一意で、サインアップ後は変わりません。
	Username string `gorm:"uniqueIndex;size:150;not null"`

	// Password はパスワードのダイジェストです。平文は保存しません。
	Password string `gorm:"size:255;not null"`

	// Email は任意です。設定されていれば形式の検証を通過しています。
	Email string `gorm:"size:255"`

	// LastLogin はログイン成功のたびに更新します。
	LastLogin *time.Time

	ProfileColor string `gorm:"size:16;not null;default:'#ff99c8'"`

	CreatedAt time.Time
}

// TableNameはGORMにテーブル名を返します。
func (User) TableName() string {
	return "users"
}

// NewUser はハッシュ化済みのパスワードからユーザを生成します。
func NewUser(username, passwordDigest, email string) *User {
	return &User{
		Username:     username,
		Password:     passwordDigest,
		Email:        strings.TrimSpace(email),
		ProfileColor: DefaultProfileColor,
	}
}

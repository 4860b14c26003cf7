package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// UserRef は users への外部キーの参照先です。各 feature のモデルは belongs-to として埋め込み、
// AutoMigrate が REFERENCES users(id) を出力するようにします。
type UserRef struct {
	ID uint `gorm:"primaryKey"`
}

// TableNameはGORMにテーブル名を返します。
func (UserRef) TableName() string {
	return "users"
}

// Conn は ctx に紐づくトランザクションを返し、無ければ db を返します。
// リポジトリはすべての SQL でこれを使い、
// 外側の WithinTransaction に参加します。
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// Transactor は関数をDBトランザクション内で実行します。
type Transactor struct {
	db *gorm.DB
}

// NewTransactor は db 用の Transactor を生成します。
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction はトランザクションを持つ context で fn を実行します。
// fn が nil を返せばコミットし、それ以外はロールバックします。
// 入れ子の呼び出しは外側のトランザクションを再利用します。
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

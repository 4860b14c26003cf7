package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"youth_balance/internal/feature/auth/domain/entity"
	"youth_balance/internal/platform/password"
	"youth_balance/internal/platform/validation"
)

// bootstrap が有効なとき初回起動で作成するデモアカウント。
const (
	demoUsername = "test"
	demoPassword = "123"
	demoEmail    = "test@example.com"
)

// welcomeMailTimeout はサインアップの応答後に送るウェルカムメールの上限時間です。
const welcomeMailTimeout = 15 * time.Second

// dummyDigest はユーザが存在しないときに照合に使い、
// 存在しないユーザ名でもパスワード誤りと同じ処理時間にします。
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザの永続化層を抽象化します。
type UserRepository interface {
	// Create は新しいユーザを保存します。ユーザ名が重複していれば ErrUsernameTaken を返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は該当するユーザが存在しない場合 ErrUserNotFound を返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は該当するユーザが存在しない場合 ErrUserNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateLastLogin はユーザの last_login を更新します。
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error

	// Count は登録済みユーザ数を返します。
	Count(ctx context.Context) (int64, error)
}

// ContentSeeder は新規アカウントに初期データを投入します。
type ContentSeeder interface {
	Seed(ctx context.Context, userID uint) error
}

// Transactor は fn をアトミックに実行します。fn に渡された ctx で呼ばれたリポジトリはそのトランザクションに参加します。
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionStarter はログインセッションを開始します。
type SessionStarter interface {
	Start(ctx context.Context, user *entity.User, remember bool) (*entity.Session, error)
}

// WelcomeMailer は新規アカウントにウェルカムメールを送ります。失敗してもサインアップは失敗しません。
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, username, email string) error
}

// signupInput は DB に触れる前に検証します。
type signupInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Email    string `validate:"omitempty,account_email"`
}

// authUsecase はアカウント登録とログインを実装します。
type authUsecase struct {
	users    UserRepository
	seeder   ContentSeeder
	tx       Transactor
	sessions SessionStarter
	hasher   password.Hasher
	mailer   WelcomeMailer
	log      *logrus.Logger
	now      func() time.Time

	// background は応答を待たせてはいけない処理を実行します。
	background func(fn func())
}

// NewAuthUsecase は authUsecase を生成します。mailer は nil でもかまいません。
func NewAuthUsecase(users UserRepository, seeder ContentSeeder, tx Transactor, sessions SessionStarter,
	hasher password.Hasher, mailer WelcomeMailer, log *logrus.Logger) *authUsecase {
	return &authUsecase{
		users:    users,
		seeder:   seeder,
		tx:       tx,
		sessions: sessions,
		hasher:   hasher,
		mailer:   mailer,
		log:      log,
		now:      time.Now,

		background: func(fn func()) { go fn() },
	}
}

// Register はアカウントを作成し、同じトランザクションで初期データを投入します。
// 新しいユーザの ID を返します。
func (u *authUsecase) Register(ctx context.Context, username, plain, email string) (uint, error) {
	email = strings.TrimSpace(email)
	in := signupInput{Username: strings.TrimSpace(username), Password: plain, Email: email}
	if in.Username == "" || in.Password == "" {
		return 0, ErrMissingFields
	}
	if err := validation.Struct(in); err != nil {
		return 0, ErrInvalidEmail
	}

	digest, err := u.hasher.Hash(plain)
	if err != nil {
		return 0, err
	}
	user := entity.NewUser(in.Username, digest, email)

	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.users.Create(ctx, user); err != nil {
			return err
		}
		if err := u.seeder.Seed(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to seed starter content: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if u.mailer != nil && user.Email != "" {
		u.sendWelcome(context.WithoutCancel(ctx), user)
	}
	return user.ID, nil
}

// sendWelcome は新規アカウントにバックグラウンドでメールを送ります。失敗はログに残すだけです。
func (u *authUsecase) sendWelcome(ctx context.Context, user *entity.User) {
	username, email, id := user.Username, user.Email, user.ID
	u.background(func() {
		ctx, cancel := context.WithTimeout(ctx, welcomeMailTimeout)
		defer cancel()
		if err := u.mailer.SendWelcome(ctx, username, email); err != nil {
			u.log.WithError(err).WithField("user_id", id).Warn("welcome mail failed")
		}
	})
}

// Login は認証情報を確認し、ログイン日時を記録してセッションを開始します。
// 存在しないユーザでも必ずパスワードの照合を行います。
func (u *authUsecase) Login(ctx context.Context, username, plain string, remember bool) (*entity.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || plain == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	digest := dummyDigest
	if user != nil {
		digest = user.Password
	}
	ok := u.hasher.Verify(digest, plain)
	if user == nil || !ok {
		return nil, ErrInvalidCredentials
	}

	if err := u.users.UpdateLastLogin(ctx, user.ID, u.now()); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	return u.sessions.Start(ctx, user, remember)
}

// BootstrapDemoUser はユーザが1人もいないときデモアカウントを登録します。
// アカウントを作成したかどうかを返します。
func (u *authUsecase) BootstrapDemoUser(ctx context.Context) (bool, error) {
	n, err := u.users.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := u.Register(ctx, demoUsername, demoPassword, demoEmail); err != nil {
		return false, err
	}
	return true, nil
}

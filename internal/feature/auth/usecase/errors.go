// Package usecase は auth feature のビジネスロジックを実装します。
package usecase

import (
	"errors"
	"fmt"

	"youth_balance/internal/shared/apperr"
)

var (
	// ErrUserNotFound はユーザ名または ID でユーザが見つからないときに返されます。
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken は既に存在するユーザ名でサインアップしたときに返されます。
	ErrUsernameTaken = fmt.Errorf("%w: username already exists", apperr.ErrConflict)

	// ErrMissingFields はサインアップ時にユーザ名かパスワードが空のときに返されます。
	ErrMissingFields = fmt.Errorf("%w: please fill in all required fields", apperr.ErrValidation)

	// ErrInvalidEmail は空でないメールアドレスが受け付ける形式に一致しないときに返されます。
	ErrInvalidEmail = fmt.Errorf("%w: please enter a valid email address", apperr.ErrValidation)

	// ErrInvalidCredentials はログイン失敗時に返されます。存在しないユーザと
	// パスワード誤りは区別できません。
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthenticated)

	// ErrSessionNotFound は ID でセッションが見つからないときに返されます。
	ErrSessionNotFound = fmt.Errorf("%w: session not found", apperr.ErrUnauthenticated)

	// ErrSessionExpired は期限切れまたは無効化されたセッションを使おうとしたときに返されます。
	ErrSessionExpired = fmt.Errorf("%w: session has expired", apperr.ErrUnauthenticated)
)

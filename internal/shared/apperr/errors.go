// Package apperr は全 feature で共有するエラー分類を定義します。
// usecase は下記のセンチネルを fmt.Errorf("%w: ...") で詳細付きにラップし、
// HTTP 層は Status でステータスコードに変換します。
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation は必須項目の欠落、または不正な値を表します。
	ErrValidation = errors.New("validation failed")

	// ErrConflict は一意制約違反（ユーザ名の重複など）を表します。
	ErrConflict = errors.New("conflict")

	// ErrUnauthenticated は認証情報の誤り、またはセッションが無いことを表します。
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound は対象の行が存在しないか、他のユーザの所有であることを表します。
	ErrNotFound = errors.New("not found")
)

// Status は err に対応する HTTP ステータスコードを返します。
// 分類外のエラーはすべて内部エラーとして扱います。
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage は err についてクライアントに見せてよいメッセージを返します。
// 内部エラーの本文は決して公開しません。
func PublicMessage(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}

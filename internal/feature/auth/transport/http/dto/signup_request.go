// Package dto は auth feature の HTTP 層で使う DTO を定義します。
package dto

// SignupForm は POST /signup の urlencoded ボディです。
// 必須項目は usecase で検査します。
type SignupForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Email    string `form:"email"`
}

package dto

// LoginForm は POST /login の urlencoded ボディです。
type LoginForm struct {
	Username   string `form:"username"`
	Password   string `form:"password"`
	RememberMe string `form:"remember_me"`
}

// Remember はログイン状態保持のチェックが入っているかを返します。値は問いません。
func (f LoginForm) Remember() bool {
	return f.RememberMe != ""
}

// MeResponse は GET /api/me のボディです。
type MeResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

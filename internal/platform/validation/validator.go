// Package validation は go-playground/validator にプロジェクト独自のタグを加えてラップします。
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagAccountEmail はサインアップで受け付けるメールアドレス形式を検証します。
// ローカル部は英数字と ._%+-、ドメインはドット区切り、TLD は2文字以上の英字です。
const TagAccountEmail = "account_email"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator は共有の validator インスタンスを返します。
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		register(validate)
	})
	return validate
}

// RegisterGin は独自タグを gin のバインディングエンジンに登録し、DTO のタグで使えるようにします。
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return register(v)
}

func register(v *validator.Validate) error {
	return v.RegisterValidation(TagAccountEmail, func(fl validator.FieldLevel) bool {
		return IsAccountEmail(fl.Field().String())
	})
}

// IsAccountEmail は s がサインアップ用のメール形式に一致するかを返します。
func IsAccountEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Struct は s を検証し、フィールドエラーを読みやすい1つのメッセージにまとめます。
func Struct(s any) error {
	if err := Validator().Struct(s); err != nil {
		return format(err)
	}
	return nil
}

func format(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case TagAccountEmail:
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

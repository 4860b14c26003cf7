// Package mail は SendGrid 経由でトランザクションメールを送信します。
package mail

import (
	"context"
	"fmt"
	"html"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// Sender は組み立て済みのメッセージを配送します。
type Sender interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// Mailer はアカウント登録時のウェルカムメールを送信します。
type Mailer struct {
	sender   Sender
	fromName string
	fromAddr string
	log      *logrus.Logger
}

// apiSender は呼び出し元から渡された http.Client で SendGrid v3 のメール API に POST します。
type apiSender struct {
	client *rest.Client
	apiKey string
	host   string // empty means api.sendgrid.com
}

func (s *apiSender) SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	req := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	req.Method = rest.Post
	req.Body = sgmail.GetRequestBody(email)
	return s.client.SendWithContext(ctx, req)
}

// NewSendGridMailer は SendGrid v3 API を使う Mailer を生成します。
func NewSendGridMailer(apiKey, fromName, fromAddr string, client *http.Client, log *logrus.Logger) *Mailer {
	sender := &apiSender{client: &rest.Client{HTTPClient: client}, apiKey: apiKey}
	return NewMailer(sender, fromName, fromAddr, log)
}

// NewMailer は sender を使う Mailer を生成します。
func NewMailer(sender Sender, fromName, fromAddr string, log *logrus.Logger) *Mailer {
	return &Mailer{sender: sender, fromName: fromName, fromAddr: fromAddr, log: log}
}

// SendWelcome は新規登録ユーザにウェルカムメールを送ります。
// SendGrid が 2xx 以外を返した場合はエラーを返します。
func (m *Mailer) SendWelcome(ctx context.Context, username, email string) error {
	from := sgmail.NewEmail(m.fromName, m.fromAddr)
	to := sgmail.NewEmail(username, email)
	subject := "Welcome to Youth Balance!"
	plain := fmt.Sprintf("Hi %s,\n\nyour account is ready. We added a few tasks, notes and goals to get you started.", username)
	body := fmt.Sprintf("<p>Hi <strong>%s</strong>,</p><p>your account is ready. We added a few tasks, notes and goals to get you started.</p>",
		html.EscapeString(username))

	resp, err := m.sender.SendWithContext(ctx, sgmail.NewSingleEmail(from, subject, to, plain, body))
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	m.log.WithFields(logrus.Fields{"to": email, "status": resp.StatusCode}).Info("welcome mail sent")
	return nil
}

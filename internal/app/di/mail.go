package di

import (
	"time"

	"github.com/sirupsen/logrus"

	"youth_balance/internal/feature/auth/usecase"
	"youth_balance/internal/platform/config"
	platformhttp "youth_balance/internal/platform/http"
	"youth_balance/internal/platform/mail"
)

const mailTimeout = 10 * time.Second

// NewMailer は SendGrid のウェルカムメール送信を HTTP クライアント付きで生成します。
// API キーが未設定なら nil を返します。
func NewMailer(cfg config.MailConfig, log *logrus.Logger) usecase.WelcomeMailer {
	if cfg.SendGridAPIKey == "" {
		log.Info("welcome mail disabled")
		return nil
	}
	client := platformhttp.NewHTTPClient(mailTimeout)
	return mail.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromName, cfg.FromAddress, client, log)
}

package service

//go:generate mockgen -destination=../../mocks/mock_mailer.go -package=mocks github.com/lingnite/user-service/internal/auth/domain Mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/lingnite/user-service/pkg/constant"
)

// SMTPMailer sends verification emails over plain SMTP. It implements
// domain.Mailer; the verification flow dispatches it on a goroutine so the
// HTTP response never waits on the mail server.
type SMTPMailer struct {
	host string
	port string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{host: host, port: port, auth: auth, from: from}
}

func (m *SMTPMailer) SendVerificationCode(_ context.Context, to, code, purpose string) error {
	subject := subjectFor(purpose)
	body := fmt.Sprintf(verificationTemplate, actionFor(purpose), code)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body)

	return smtp.SendMail(m.host+":"+m.port, m.auth, m.from, []string{to}, []byte(msg))
}

func subjectFor(purpose string) string {
	switch purpose {
	case constant.PurposeResetPassword:
		return "Reset your password"
	case constant.PurposeChangeEmail:
		return "Confirm your new email address"
	case constant.PurposeLogin:
		return "Your login verification code"
	default:
		return "Your verification code"
	}
}

func actionFor(purpose string) string {
	switch purpose {
	case constant.PurposeResetPassword:
		return "reset your password"
	case constant.PurposeChangeEmail:
		return "change your email address"
	case constant.PurposeLogin:
		return "sign in to your account"
	default:
		return "verify your identity"
	}
}

const verificationTemplate = `<html><body>
<p>Hello,</p>
<p>Use the code below to %s. It expires in 5 minutes.</p>
<h2 style="letter-spacing:4px">%s</h2>
<p>If you did not request this, you can safely ignore this email.</p>
</body></html>`

// Package mail delivers the reset-password message over SMTP. Delivery is
// strictly best-effort: a missing configuration is a silent no-op because
// the password has already been rotated by the time a send is attempted.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/kotatsu-vn/novel-backend/internal/infrastructure/config"
)

const resetSubject = "Восстановление пароля - Визуальная новелла"

const resetBodyTemplate = `Здравствуйте!

Вы запросили сброс пароля для аккаунта "%s".

Ваш новый пароль: %s

Рекомендуем изменить пароль после входа в систему.

---
Если вы не запрашивали сброс пароля, проигнорируйте это письмо.
`

// Mailer sends account mail through the configured SMTP relay.
type Mailer struct {
	cfg config.MailConfig
}

func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, username, newPassword string) error {
	if !m.cfg.Configured() {
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.User); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(resetSubject)
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(resetBodyTemplate, username, newPassword))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.User),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

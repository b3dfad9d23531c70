package mail

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 10 * time.Second

type smtpMailer struct {
	client *gomail.Client
	from   string
}

func newSMTPMailer(cfg *config.MailConfig) (*smtpMailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, errors.New("mail host and from address are required for smtp provider")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	opts := []gomail.Option{
		gomail.WithTimeout(timeout),
	}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.SSL {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{client: client, from: cfg.From}, nil
}

func (m *smtpMailer) SendVerificationCode(ctx context.Context, to, code string, ttl time.Duration) error {
	msg, err := m.verificationMessage(to, code, ttl)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send verification email")
	}

	return nil
}

func (m *smtpMailer) verificationMessage(to, code string, ttl time.Duration) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid from address")
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(verificationSubject)
	msg.SetBodyString(gomail.TypeTextPlain, verificationBody(code, ttl))

	return msg, nil
}

package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/sp3fck/hamgallery-backend/internal/config"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(cfg config.EmailConfig, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(cfg.APIKey),
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<p>Hello {{.FirstName}} ({{.Callsign}}),</p>
<p>Welcome to the SP3FCK Ham Gallery. Confirm your email address by opening
the link below:</p>
<p><a href="{{.VerifyURL}}">Verify my email</a></p>
<p>If you did not create this account, ignore this message.</p>
<p>73!</p>
`))

func (s *EmailService) SendVerificationEmail(to, firstName, callsign, token string) error {
	var body bytes.Buffer
	err := verificationTmpl.Execute(&body, map[string]string{
		"FirstName": firstName,
		"Callsign":  callsign,
		"VerifyURL": fmt.Sprintf("https://gallery.sp3fck.org/verify-email?token=%s", token),
	})
	if err != nil {
		s.logger.Error("failed to render verification email", zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Verify your SP3FCK Ham Gallery account",
		Html:    body.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		s.logger.Error("failed to send verification email",
			zap.String("to", to),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("verification email sent", zap.String("to", to), zap.String("callsign", callsign))
	return nil
}

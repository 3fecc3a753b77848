package libs

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

const brandName = "Niche Perfume"

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(host string, port int, user, pass, from string) (*EmailService, error) {
	if host == "" || user == "" || pass == "" {
		return nil, errors.New("SMTP configuration missing")
	}
	if port == 0 {
		port = 587
	}
	if from == "" {
		from = user
	}

	dialer := gomail.NewDialer(host, port, user, pass)

	return &EmailService{dialer: dialer, from: from}, nil
}

func (s *EmailService) SendWelcomeEmail(toEmail string) error {
	m := welcomeMessage(s.from, toEmail)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func welcomeMessage(from, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to the inner circle - %s", brandName))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Georgia, serif; background-color: #0b0b0c; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: #141416; color: #e8e2d6; padding: 30px; border-radius: 6px; }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; letter-spacing: 4px; color: #c5a047; }
        .footer { text-align: center; margin-top: 30px; color: #8a8478; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">%s</div>
        </div>
        <h2>Seven sins, one signature.</h2>
        <p>Thank you for joining our list. You will be the first to hear about new editions, restocks and private previews.</p>

        <div class="footer">
            <p>This email was sent to %s because you subscribed on our website.</p>
        </div>
    </div>
</body>
</html>
	`, brandName, toEmail)

	m.SetBody("text/html", body)
	return m
}

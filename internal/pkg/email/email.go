// Package email sends transactional mail over SMTP. Its one consumer is the
// inquiry notification sent to the admin mailbox.
package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendInquiryNotification(inquiry *models.Inquiry) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	// AdminTo is the mailbox that receives inquiry notifications.
	AdminTo string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendInquiryNotification mails a newly submitted inquiry to the admin
// mailbox. Without SMTP credentials the inquiry is logged instead so local
// development keeps working.
func (s *EmailServiceImpl) SendInquiryNotification(inquiry *models.Inquiry) error {
	if s.config.Username == "" || s.config.Password == "" || s.config.AdminTo == "" {
		s.logger.Warn().
			Str("type", string(inquiry.Type)).
			Str("email", inquiry.Email).
			Msg("SMTP not configured - inquiry notification not sent")
		return nil
	}

	subject := fmt.Sprintf("[ibookee] New %s inquiry from %s", inquiry.Type, inquiry.Name)

	company := ""
	if inquiry.Company != nil && *inquiry.Company != "" {
		company = fmt.Sprintf("<p><strong>Company:</strong> %s</p>", html.EscapeString(*inquiry.Company))
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">New inquiry received</h2>
				<p><strong>Type:</strong> %s</p>
				<p><strong>Name:</strong> %s</p>
				<p><strong>Email:</strong> %s</p>
				<p><strong>Phone:</strong> %s</p>
				%s
				<p><strong>Message:</strong></p>
				<p style="white-space: pre-wrap; background: #f6f6f6; padding: 12px; border-radius: 4px;">%s</p>
			</div>
		</body>
		</html>
	`,
		html.EscapeString(string(inquiry.Type)),
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Phone),
		company,
		html.EscapeString(inquiry.Message),
	)

	return s.sendHTMLEmail(s.config.AdminTo, subject, body)
}

func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	tlsConfig := &tls.Config{ServerName: s.config.Host}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}

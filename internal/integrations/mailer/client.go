// Package mailer отправляет транзакционные письма сайта: уведомление
// владельцу и подтверждение клиенту при обращении через форму, а также
// подтверждение записи на консультацию.
//
// Отправка писем всегда best-effort: вызывающий слой логирует ошибку и
// продолжает работу, запись в БД первична.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP клиент транзакционных писем
type Client struct {
	addr     string // host:port
	auth     smtp.Auth
	from     string
	notifyTo string
	logger   Logger
}

// NewClient создает SMTP клиент
func NewClient(host string, port int, username, password, from, notifyTo string, logger Logger) *Client {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &Client{
		addr:     fmt.Sprintf("%s:%d", host, port),
		auth:     auth,
		from:     from,
		notifyTo: notifyTo,
		logger:   logger,
	}
}

// SendContactNotification отправляет владельцу сайта уведомление о новом
// обращении
func (c *Client) SendContactNotification(data *ContactEmailData) error {
	subject := fmt.Sprintf("New Contact: %s", data.FullName)
	if data.Subject != nil && *data.Subject != "" {
		subject = fmt.Sprintf("New Contact: %s - %s", data.FullName, *data.Subject)
	}

	var body strings.Builder
	body.WriteString("New contact form submission\n\n")
	fmt.Fprintf(&body, "Name:    %s\n", data.FullName)
	fmt.Fprintf(&body, "Email:   %s\n", data.Email)
	if data.Phone != nil {
		fmt.Fprintf(&body, "Phone:   %s\n", *data.Phone)
	}
	if data.Company != nil {
		fmt.Fprintf(&body, "Company: %s\n", *data.Company)
	}
	if data.Subject != nil {
		fmt.Fprintf(&body, "Subject: %s\n", *data.Subject)
	}
	fmt.Fprintf(&body, "Submitted: %s\n", data.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&body, "\nMessage:\n%s\n", data.Message)
	fmt.Fprintf(&body, "\nContact ID: %d\n", data.ID)

	return c.send(c.notifyTo, subject, body.String())
}

// SendContactConfirmation отправляет клиенту подтверждение получения
// обращения
func (c *Client) SendContactConfirmation(data *ContactEmailData) error {
	subject := "We received your message"

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", data.FullName)
	body.WriteString("Thank you for reaching out. We received your message and will get back to you within 24 hours.\n\n")
	body.WriteString("Your message:\n")
	fmt.Fprintf(&body, "%s\n\n", data.Message)
	body.WriteString("Best regards,\nNanGenLabs\n")

	return c.send(data.Email, subject, body.String())
}

// SendBookingConfirmation отправляет клиенту подтверждение записи
func (c *Client) SendBookingConfirmation(data *BookingEmailData) error {
	subject := "Your appointment is confirmed"

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", data.ClientName)
	fmt.Fprintf(&body, "Your appointment on %s at %s is confirmed.\n", data.Date, data.TimeSlot)
	if data.ServiceType != nil {
		fmt.Fprintf(&body, "Service: %s\n", *data.ServiceType)
	}
	if data.Duration != nil {
		fmt.Fprintf(&body, "Duration: %s\n", *data.Duration)
	}
	fmt.Fprintf(&body, "Booking reference: %s\n\n", data.Reference)
	body.WriteString("See you soon,\nNanGenLabs\n")

	return c.send(data.ClientEmail, subject, body.String())
}

// send собирает RFC 5322 сообщение и отправляет его через SMTP
func (c *Client) send(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", c.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	if err := smtp.SendMail(c.addr, c.auth, c.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("%w: send to %s: %v", ErrSendFailed, to, err)
	}

	c.logger.Info("mailer: sent %q to %s", subject, to)
	return nil
}

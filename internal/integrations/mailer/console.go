package mailer

// ConsoleClient заглушка для окружений без SMTP ([mailer] enabled = false):
// пишет письма в лог вместо отправки
type ConsoleClient struct {
	logger Logger
}

// NewConsole создает консольный клиент
func NewConsole(logger Logger) *ConsoleClient {
	return &ConsoleClient{logger: logger}
}

// SendContactNotification логирует уведомление владельцу
func (c *ConsoleClient) SendContactNotification(data *ContactEmailData) error {
	c.logger.Info("mailer(console): contact notification, contact_id=%d from=%s", data.ID, data.Email)
	return nil
}

// SendContactConfirmation логирует подтверждение клиенту
func (c *ConsoleClient) SendContactConfirmation(data *ContactEmailData) error {
	c.logger.Info("mailer(console): contact confirmation to %s", data.Email)
	return nil
}

// SendBookingConfirmation логирует подтверждение записи
func (c *ConsoleClient) SendBookingConfirmation(data *BookingEmailData) error {
	c.logger.Info("mailer(console): booking confirmation to %s, reference=%s", data.ClientEmail, data.Reference)
	return nil
}

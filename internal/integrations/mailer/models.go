package mailer

import "time"

// ContactEmailData данные обращения для писем контактной формы
type ContactEmailData struct {
	ID        int64
	FullName  string
	Email     string
	Phone     *string
	Company   *string
	Subject   *string
	Message   string
	CreatedAt time.Time
}

// BookingEmailData данные бронирования для письма-подтверждения
type BookingEmailData struct {
	Reference   string
	ClientName  string
	ClientEmail string
	Date        string // локальная дата, YYYY-MM-DD
	TimeSlot    string // отображаемый слот, например "2:15 PM"
	ServiceType *string
	Duration    *string
}

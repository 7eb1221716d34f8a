package domain

import "time"

// ContactStatus represents the processing state of a contact message
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// ValidContactStatus returns true for a known status value
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	default:
		return false
	}
}

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	ID       int64
	FullName string
	Email    string
	Phone    *string
	Company  *string
	Subject  *string
	Message  string
	Status   ContactStatus

	// Request metadata kept for abuse triage
	IPAddress *string
	UserAgent *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactsFilter фильтр для постраничной выборки обращений
type ContactsFilter struct {
	Status *ContactStatus
	Limit  int
	Offset int
}

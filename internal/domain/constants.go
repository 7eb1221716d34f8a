package domain

// Slot grid parameters
const (
	// SlotStepMinutes step of the booking grid
	SlotStepMinutes = 15

	// SlotDurationMinutes default appointment length shown to the client
	SlotDurationMinutes = 15

	// LeadTimeMinutes a slot closes this many minutes before its start
	LeadTimeMinutes = 60
)

// Contact validation constants
const (
	MinNameLength    = 2
	MaxNameLength    = 50
	MinMessageLength = 10
	MaxMessageLength = 2000
	MaxPhoneLength   = 20
	MaxCompanyLength = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

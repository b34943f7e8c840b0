package domain

import "time"

// ServiceTypes is the closed set of values accepted for Inquiry.ServiceType.
var ServiceTypes = []string{
	"sound_support",
	"wedding",
	"corporate",
	"concert",
	"installation",
	"rental",
}

// Inquiry is a customer-submitted request for a quote or booking.
// EventDate is opaque text, never parsed. Guests is nil when the
// customer left the field empty.
type Inquiry struct {
	ID               uint      `json:"id"`
	EventDate        string    `json:"event_date,omitempty"`
	City             string    `json:"city,omitempty"`
	Guests           *int      `json:"guests,omitempty"`
	ServiceType      string    `json:"service_type,omitempty"`
	DeliveryRequired bool      `json:"delivery_required"`
	ContactName      string    `json:"contact_name"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	ContactPhone     string    `json:"contact_phone,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

package request

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/nlsproduction/nls-api/internal/domain"
)

const (
	minGuests = 1
	maxGuests = 50000
)

var (
	errContactNameBlank   = errors.New("cannot be blank")
	errContactNameTooLong = errors.New("the length must be no more than 120")
	errGuestsNotANumber   = errors.New("must be a whole number")
	errGuestsOutOfRange   = errors.New("must be between 1 and 50000")
)

// SubmitInquiryRequest carries the raw contact-form fields. Guests and
// DeliveryRequired arrive as form strings; they are converted in
// ToDomain once validation has passed.
type SubmitInquiryRequest struct {
	ContactName      string `form:"contact_name" json:"contact_name"`
	ContactEmail     string `form:"contact_email" json:"contact_email"`
	ContactPhone     string `form:"contact_phone" json:"contact_phone"`
	City             string `form:"city" json:"city"`
	EventDate        string `form:"event_date" json:"event_date"`
	Guests           string `form:"guests" json:"guests"`
	ServiceType      string `form:"service_type" json:"service_type"`
	DeliveryRequired string `form:"delivery_required" json:"delivery_required"`
	Notes            string `form:"notes" json:"notes"`
}

// Validate evaluates the field rules in declaration order. On failure it
// returns a validation.Errors map keyed by form field name, which is
// exactly what the form needs to re-render with inline messages.
func (req *SubmitInquiryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContactName, validation.By(checkContactName)),
		validation.Field(&req.ContactEmail, is.Email, validation.Length(0, 255)),
		validation.Field(&req.ContactPhone, validation.Length(0, 64)),
		validation.Field(&req.City, validation.Length(0, 120)),
		validation.Field(&req.EventDate, validation.Length(0, 32)),
		validation.Field(&req.Guests, validation.By(checkGuests)),
		validation.Field(&req.ServiceType, validation.In(serviceTypeValues()...)),
		validation.Field(&req.Notes, validation.Length(0, 5000)),
	)
}

func (req *SubmitInquiryRequest) ToDomain() domain.Inquiry {
	inquiry := domain.Inquiry{
		EventDate:        strings.TrimSpace(req.EventDate),
		City:             strings.TrimSpace(req.City),
		ServiceType:      req.ServiceType,
		DeliveryRequired: parseCheckbox(req.DeliveryRequired),
		ContactName:      strings.TrimSpace(req.ContactName),
		ContactEmail:     strings.TrimSpace(req.ContactEmail),
		ContactPhone:     strings.TrimSpace(req.ContactPhone),
		Notes:            req.Notes,
	}

	if raw := strings.TrimSpace(req.Guests); raw != "" {
		if guests, err := strconv.Atoi(raw); err == nil {
			inquiry.Guests = &guests
		}
	}

	return inquiry
}

// checkContactName enforces required + trimmed length 1-120. A plain
// Required rule would accept all-whitespace names.
func checkContactName(value interface{}) error {
	name := strings.TrimSpace(value.(string))
	if name == "" {
		return errContactNameBlank
	}
	if utf8.RuneCountInString(name) > 120 {
		return errContactNameTooLong
	}

	return nil
}

// checkGuests accepts an empty field; a present value must be a whole
// number within [1, 50000].
func checkGuests(value interface{}) error {
	raw := strings.TrimSpace(value.(string))
	if raw == "" {
		return nil
	}

	guests, err := strconv.Atoi(raw)
	if err != nil {
		return errGuestsNotANumber
	}
	if guests < minGuests || guests > maxGuests {
		return errGuestsOutOfRange
	}

	return nil
}

func serviceTypeValues() []interface{} {
	values := make([]interface{}, 0, len(domain.ServiceTypes))
	for _, t := range domain.ServiceTypes {
		values = append(values, t)
	}

	return values
}

// parseCheckbox interprets the usual HTML checkbox encodings.
func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	}

	return false
}

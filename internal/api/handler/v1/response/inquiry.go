package response

// InquiryErrors carries the field→message map back to the form so the
// caller can re-render it with inline errors.
type InquiryErrors struct {
	Errors map[string]string `json:"errors"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SiteInfo struct {
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

package core

// ContactMessage is the contact-form payload relayed through the backend's
// /email endpoint. The client never talks to a mail provider directly.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (m *ContactMessage) Validate() error {
	m.Name = CleanString(m.Name)
	m.Email = CleanString(m.Email, true /* lower */)
	m.Subject = CleanString(m.Subject)
	m.Message = CleanString(m.Message)
	return Validate.Struct(m)
}

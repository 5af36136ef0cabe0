package entities

// ContactRequest is a general enquiry sent from the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (c ContactRequest) MissingFields() []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}

package api

type SuccessResponse struct {
	Success string `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	reservationSuccessMessage  = "Reservation request sent successfully! Confirmation email sent."
	reservationWhatsAppMessage = "Reservation request sent successfully! Confirmation email & WhatsApp message sent."
	contactSuccessMessage      = "Email sent successfully!"
	livenessMessage            = "Backend is running!"
)

package utils

import "strings"

// NormalizePhone returns the number in international form. Numbers that
// already start with '+' are returned unchanged, anything else gets the
// default country code prefixed. No other validation is done.
func NormalizePhone(phone, countryCode string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + strings.TrimPrefix(countryCode, "+") + phone
}

// WhatsAppAddress formats a number as a Twilio WhatsApp address.
func WhatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

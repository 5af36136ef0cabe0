package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+919876543210", NormalizePhone("9876543210", "91"))
	assert.Equal(t, "+447700900000", NormalizePhone("+447700900000", "91"))
	assert.Equal(t, "+915550100", NormalizePhone("5550100", "+91"))
	assert.Equal(t, "+4420", NormalizePhone("20", "44"))
}

func TestWhatsAppAddress(t *testing.T) {
	assert.Equal(t, "whatsapp:+919876543210", WhatsAppAddress("+919876543210"))
	assert.Equal(t, "whatsapp:+14155238886", WhatsAppAddress("whatsapp:+14155238886"))
}

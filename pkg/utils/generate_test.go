package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTicketIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{8}$`)

	for i := 0; i < 100; i++ {
		ticketID, err := GenerateTicketID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, ticketID)
	}
}

func TestGenerateQRCodeDataURL(t *testing.T) {
	qr, err := GenerateQRCode(`{"bookingId":"b1","ticketId":"A1B2C3D4"}`)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
	assert.Greater(t, len(qr), len("data:image/png;base64,"))
}

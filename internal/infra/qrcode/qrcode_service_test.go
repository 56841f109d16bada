package qrcode

import (
	"testing"

	"libris/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardQRService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCardQRService(&config.Config{
				Card: &config.CardConfig{
					Size:                 tt.size,
					ErrorCorrectionLevel: tt.errorCorrectionLevel,
				},
			})
			assert.NotNil(t, service)
		})
	}
}

func TestCardQRService_GenerateCardQR(t *testing.T) {
	service := NewCardQRService(&config.Config{})

	qrBytes, err := service.GenerateCardQR("LIB000042")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestCardQRService_GenerateCardQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCardQRService(&config.Config{
				Card: &config.CardConfig{Size: tt.size, ErrorCorrectionLevel: "M"},
			})

			qrBytes, err := service.GenerateCardQR("LIB000007")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

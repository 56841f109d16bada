package qrcode

import (
	"encoding/json"
	"fmt"

	"libris/config"
	"libris/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CardQRData represents the payload encoded into a library card QR code.
type CardQRData struct {
	CardNumber string `json:"card_number"`
	Type       string `json:"type"`
}

// NewCardQRService creates a new QR code service for library cards.
func NewCardQRService(cfg *config.Config) service.CardQRService {
	size := defaultSize
	errorCorrectionLevel := ""
	if cfg.Card != nil {
		if cfg.Card.Size > 0 {
			size = cfg.Card.Size
		}
		errorCorrectionLevel = cfg.Card.ErrorCorrectionLevel
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCardQR generates a PNG QR code carrying the library card number.
func (s *qrcodeService) GenerateCardQR(cardNumber string) ([]byte, error) {
	data := CardQRData{
		CardNumber: cardNumber,
		Type:       "library_card",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

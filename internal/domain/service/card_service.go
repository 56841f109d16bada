package service

// CardQRService defines the interface for rendering library cards as QR codes.
type CardQRService interface {
	// GenerateCardQR renders a library card number as a QR code PNG.
	GenerateCardQR(cardNumber string) ([]byte, error)
}

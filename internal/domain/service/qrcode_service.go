package service

// QRCodeService renders QR codes for order payment tracking.
type QRCodeService interface {
	// GeneratePaymentQR encodes the payment redirect URL as a PNG.
	GeneratePaymentQR(redirectURL string) ([]byte, error)
}

package ports

// QRService builds the check-in URL of a kajian and renders it as a QR code.
type QRService interface {
	Payload(kajianID string) string
	Render(kajianID string) ([]byte, error)
}

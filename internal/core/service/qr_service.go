package service

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// QRService renders the public check-in link of a kajian as a PNG QR code.
// It does not check that the kajian exists; that happens at check-in.
type QRService struct {
	baseURL string
	size    int
}

func NewQRService(frontendURL string, size int) *QRService {
	if size <= 0 {
		size = defaultQRSize
	}
	return &QRService{baseURL: strings.TrimRight(frontendURL, "/"), size: size}
}

// Payload returns the URL encoded in the QR code, the frontend base URL
// followed by /presensi/ and the kajian id as given.
func (s *QRService) Payload(kajianID string) string {
	return s.baseURL + "/presensi/" + kajianID
}

func (s *QRService) Render(kajianID string) ([]byte, error) {
	png, err := qrcode.Encode(s.Payload(kajianID), qrcode.Medium, s.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

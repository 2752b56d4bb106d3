package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateRoomQR writes the QR image a guest scans to open the room's
// ordering link and returns the path relative to the uploads dir, the same
// shape stored for other images ("qrcodes/<hotel>/<room>.png").
func GenerateRoomQR(publicBaseURL, hotelID, roomNumber string) (string, error) {
	publicBaseURL = strings.TrimRight(publicBaseURL, "/")
	link := fmt.Sprintf("%s/%s/%s", publicBaseURL, hotelID, roomNumber)

	dir := filepath.Join("uploads", "qrcodes", hotelID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir qrcodes dir: %w", err)
	}

	filename := fmt.Sprintf("%s.png", roomNumber)
	fullpath := filepath.Join(dir, filename)

	if err := qrcode.WriteFile(link, qrcode.Medium, 512, fullpath); err != nil {
		return "", fmt.Errorf("write qr image: %w", err)
	}

	return filepath.ToSlash(filepath.Join("qrcodes", hotelID, filename)), nil
}

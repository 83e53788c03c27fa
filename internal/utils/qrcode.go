package utils

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// PublicMenuURL builds the shareable URL of a menu's public view.
func PublicMenuURL(baseURL, menuID string) string {
	return fmt.Sprintf("%s/menu/%s", strings.TrimRight(baseURL, "/"), menuID)
}

// GenerateMenuQR encodes the public menu URL as a PNG QR code.
func GenerateMenuQR(baseURL, menuID string) ([]byte, error) {
	png, err := qrcode.Encode(PublicMenuURL(baseURL, menuID), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

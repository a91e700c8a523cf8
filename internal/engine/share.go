package engine

import (
	"fmt"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

const shareCodeSize = 256

// WriteShareCode saves a QR code pointing at the published album.
func WriteShareCode(url, dir string) (string, error) {
	path := filepath.Join(dir, "qr.png")
	if err := qrcode.WriteFile(url, qrcode.Medium, shareCodeSize, path); err != nil {
		return "", fmt.Errorf("share code: %w", err)
	}
	return path, nil
}

package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for profile share code generation.
type QRCodeService interface {
	// GenerateProfileQR generates a PNG QR code pointing at a user's public profile.
	GenerateProfileQR(userID uuid.UUID) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the user ID it points at.
	ParseProfileQR(qrData string) (uuid.UUID, error)
}

package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses tontine invitation QR codes.
type QRCodeService interface {
	// GenerateInvitationQR renders a PNG inviting a member to join the tontine.
	GenerateInvitationQR(tontineID uuid.UUID, code string) ([]byte, error)

	// ParseInvitationQR decodes the payload scanned from an invitation.
	ParseInvitationQR(qrData string) (tontineID uuid.UUID, code string, err error)
}

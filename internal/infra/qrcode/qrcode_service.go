package qrcode

import (
	"encoding/json"
	"strings"

	"tontine/internal/domain/service"
	"tontine/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	invitationType = "tontine_invitation"
	defaultSize    = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// InvitationData is the payload encoded in a tontine invitation QR code.
type InvitationData struct {
	TontineID string `json:"tontine_id"`
	Code      string `json:"code"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance.
// Unknown correction levels fall back to medium and a non-positive size to 256 pixels.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateInvitationQR renders the invitation of a tontine as a PNG.
func (s *qrcodeService) GenerateInvitationQR(tontineID uuid.UUID, code string) ([]byte, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("invitation code is required")
	}

	payload, err := json.Marshal(InvitationData{
		TontineID: tontineID.String(),
		Code:      code,
		Type:      invitationType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal invitation data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseInvitationQR decodes a scanned invitation payload.
func (s *qrcodeService) ParseInvitationQR(qrData string) (uuid.UUID, string, error) {
	var data InvitationData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to unmarshal invitation data")
	}

	if data.Type != invitationType {
		return uuid.Nil, "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	tontineID, err := uuid.Parse(data.TontineID)
	if err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to parse tontine ID")
	}

	if data.Code == "" {
		return uuid.Nil, "", errors.New("invitation code is missing")
	}

	return tontineID, data.Code, nil
}

package qrcode

import (
	"net/url"
	"strings"

	"curator/config"
	"curator/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const defaultShareBaseURL = "https://curator.ai"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultShareBaseURL
	}

	return &qrcodeService{
		baseURL:              baseURL,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ShareURL returns {baseURL}/{kind}/{id}
func (s *qrcodeService) ShareURL(kind service.ShareKind, id string) string {
	return s.baseURL + "/" + string(kind) + "/" + url.PathEscape(id)
}

// GenerateShareQR renders the share link as a PNG QR code
func (s *qrcodeService) GenerateShareQR(kind service.ShareKind, id string) ([]byte, error) {
	if !validKind(kind) {
		return nil, errors.Errorf("unknown share kind %q", kind)
	}
	if id == "" {
		return nil, errors.New("share ID is required")
	}

	qrCode, err := qrcode.New(s.ShareURL(kind, id), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShareURL extracts kind and ID from a link produced by ShareURL.
// Links from another host are rejected.
func (s *qrcodeService) ParseShareURL(link string) (service.ShareKind, string, error) {
	if !strings.HasPrefix(link, s.baseURL+"/") {
		return "", "", errors.Errorf("not a share link: %s", link)
	}

	rest := strings.TrimPrefix(link, s.baseURL+"/")
	kind, escapedID, ok := strings.Cut(rest, "/")
	if !ok || escapedID == "" || strings.Contains(escapedID, "/") {
		return "", "", errors.Errorf("malformed share link: %s", link)
	}
	if !validKind(service.ShareKind(kind)) {
		return "", "", errors.Errorf("invalid share kind: %s", kind)
	}

	id, err := url.PathUnescape(escapedID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to parse share ID")
	}

	return service.ShareKind(kind), id, nil
}

func validKind(kind service.ShareKind) bool {
	return kind == service.ShareKindLookbook || kind == service.ShareKindOutfit
}

// New builds the service from config, falling back to defaults when the
// qrcode section is absent.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService("", 256, "M")
	}

	return NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// Module provides the QR code FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)

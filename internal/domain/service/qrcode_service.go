package service

// ShareKind is the type of content a share link points at.
type ShareKind string

const (
	ShareKindLookbook ShareKind = "lookbooks"
	ShareKindOutfit   ShareKind = "outfits"
)

// QRCodeService defines the interface for share QR code generation and parsing
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at the shared content
	GenerateShareQR(kind ShareKind, id string) ([]byte, error)

	// ShareURL returns the link encoded in the QR code
	ShareURL(kind ShareKind, id string) string

	// ParseShareURL extracts the kind and ID from a share link
	ParseShareURL(link string) (ShareKind, string, error)
}

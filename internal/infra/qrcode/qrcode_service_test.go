package qrcode

import (
	"testing"

	"curator/config"
	"curator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService("https://curator.test", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	svc := NewQRCodeService("https://curator.test", 256, "M")

	qrBytes, err := svc.GenerateShareQR(service.ShareKindLookbook, "lb-42")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateShareQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService("https://curator.test", size, "M")

		qrBytes, err := svc.GenerateShareQR(service.ShareKindOutfit, "o-1")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateShareQR_Invalid(t *testing.T) {
	svc := NewQRCodeService("https://curator.test", 256, "M")

	_, err := svc.GenerateShareQR("posts", "p1")
	assert.Error(t, err)

	_, err = svc.GenerateShareQR(service.ShareKindLookbook, "")
	assert.Error(t, err)
}

func TestQRCodeService_ShareURLRoundTrip(t *testing.T) {
	svc := NewQRCodeService("https://curator.test/", 256, "M")

	link := svc.ShareURL(service.ShareKindLookbook, "summer edit")
	assert.Equal(t, "https://curator.test/lookbooks/summer%20edit", link)

	kind, id, err := svc.ParseShareURL(link)
	require.NoError(t, err)
	assert.Equal(t, service.ShareKindLookbook, kind)
	assert.Equal(t, "summer edit", id)
}

func TestQRCodeService_ParseShareURL_Invalid(t *testing.T) {
	svc := NewQRCodeService("https://curator.test", 256, "M")

	tests := []struct {
		name string
		link string
	}{
		{"other host", "https://evil.test/lookbooks/1"},
		{"unknown kind", "https://curator.test/posts/1"},
		{"missing id", "https://curator.test/lookbooks/"},
		{"nested path", "https://curator.test/lookbooks/1/edit"},
		{"garbage", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.ParseShareURL(tt.link)
			assert.Error(t, err)
		})
	}
}

func TestNew_DefaultsWithoutConfig(t *testing.T) {
	svc := New(&config.Config{})

	assert.Equal(t, "https://curator.ai/outfits/o1", svc.ShareURL(service.ShareKindOutfit, "o1"))
}

package qrcode

import (
	"testing"

	"forthecos/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, b []byte) {
	t.Helper()
	require.Greater(t, len(b), 4)
	// PNG magic number
	assert.Equal(t, byte(0x89), b[0])
	assert.Equal(t, byte(0x50), b[1])
	assert.Equal(t, byte(0x4E), b[2])
	assert.Equal(t, byte(0x47), b[3])
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GeneratePaymentQR("https://pay.example.com/comic?custom=u%7Co")
	require.NoError(t, err)
	assertPNG(t, qrBytes)
}

func TestQRCodeService_GeneratePaymentQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512, 0} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GeneratePaymentQR("https://pay.example.com/card")
		require.NoError(t, err)
		assertPNG(t, qrBytes)
	}
}

func TestQRCodeService_GeneratePaymentQR_Empty(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePaymentQR("  ")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	assert.NotNil(t, NewFromConfig(&config.Config{}))
	assert.NotNil(t, NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "high"}}))
}

package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	domainerrors "forthecos/internal/domain/errors"
)

// SignatureHeader carries the hex HMAC-SHA256 of the callback body.
const SignatureHeader = "X-Signature-256"

const signaturePrefix = "sha256="

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against body in constant time. A "sha256="
// prefix is tolerated. An empty secret rejects every callback.
func Verify(secret string, body []byte, signature string) error {
	if secret == "" {
		return domainerrors.ErrInvalidSignature.WithDetails("webhook secret is not configured")
	}

	signature = strings.TrimPrefix(strings.TrimSpace(signature), signaturePrefix)
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return domainerrors.ErrInvalidSignature
	}

	want, _ := hex.DecodeString(Sign(secret, body))
	if !hmac.Equal(got, want) {
		return domainerrors.ErrInvalidSignature
	}

	return nil
}

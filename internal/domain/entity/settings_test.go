package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminSettings_Products(t *testing.T) {
	s := DefaultAdminSettings()
	s.PaymentLinkCard = "https://pay.example.com/card"
	s.PaymentLinkComic = "https://pay.example.com/comic"
	s.GenerationAPIKey = "secret"

	assert.Equal(t, "https://pay.example.com/card", s.PaymentLink(ItemCardSet))
	assert.InDelta(t, 14.99, s.Price(ItemComicPrint), 1e-9)
	assert.Equal(t, "Trading Card Set", s.ItemName(ItemCardSet))
	assert.Equal(t, "********", s.Redacted().GenerationAPIKey)
}

package entity

import "time"

// AdminSettings are the studio-wide values editable from the admin panel.
type AdminSettings struct {
	DefaultTitle         string    `json:"default_title"`
	DefaultDescription   string    `json:"default_description"`
	DefaultStatusText    string    `json:"default_status_text"`
	PaymentLinkComic     string    `json:"payment_link_comic"`
	PaymentLinkCard      string    `json:"payment_link_card"`
	PriceComicPrint      float64   `json:"price_comic_print"`
	PriceCardSet         float64   `json:"price_card_set"`
	AutomationWebhookURL string    `json:"automation_webhook_url,omitempty"`
	GenerationEndpoint   string    `json:"generation_endpoint,omitempty"`
	GenerationAPIKey     string    `json:"generation_api_key,omitempty"`
	GenerationModel      string    `json:"generation_model,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Card text used when neither the draft nor the admin settings supply one.
const (
	DefaultCardDescription = "The manifestation of this masterpiece represents a perfect fusion of character and dimension."
	DefaultCardStatusText  = "PREMIUM COLLECTOR"
)

// DefaultAdminSettings returns the values used before an admin saves anything.
func DefaultAdminSettings() AdminSettings {
	return AdminSettings{
		DefaultTitle:       "THE LEGENDARY",
		DefaultDescription: DefaultCardDescription,
		DefaultStatusText:  DefaultCardStatusText,
		PriceComicPrint:    14.99,
		PriceCardSet:       8.99,
	}
}

// PaymentLink returns the static payment link configured for the product.
func (s AdminSettings) PaymentLink(item ItemType) string {
	if item == ItemCardSet {
		return s.PaymentLinkCard
	}

	return s.PaymentLinkComic
}

// Price returns the configured price for the product.
func (s AdminSettings) Price(item ItemType) float64 {
	if item == ItemCardSet {
		return s.PriceCardSet
	}

	return s.PriceComicPrint
}

// ItemName returns the display name for the product.
func (s AdminSettings) ItemName(item ItemType) string {
	if item == ItemCardSet {
		return "Trading Card Set"
	}

	return "Comic Cover Print"
}

// Redacted hides secrets before the settings leave the server.
func (s AdminSettings) Redacted() AdminSettings {
	if s.GenerationAPIKey != "" {
		s.GenerationAPIKey = "********"
	}

	return s
}

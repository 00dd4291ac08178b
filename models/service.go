package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Language is a supported display locale.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// ParseLanguage maps a user-supplied locale ("en", "en-GB", "ES") to a
// supported Language, or returns fallback.
func ParseLanguage(s string, fallback Language) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "es"):
		return LanguageES
	case strings.HasPrefix(s, "en"):
		return LanguageEN
	}
	return fallback
}

// Valid reports whether l is a supported locale.
func (l Language) Valid() bool {
	return l == LanguageES || l == LanguageEN
}

// LocalizedText holds one copy per supported locale.
type LocalizedText struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// In returns the copy for lang; Spanish is the fallback.
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageEN && t.EN != "" {
		return t.EN
	}
	return t.ES
}

// Service is an immutable catalog entry. A zero price means quote-only.
type Service struct {
	ID          string          `json:"id"`
	Name        LocalizedText   `json:"name"`
	Description LocalizedText   `json:"description"`
	Duration    LocalizedText   `json:"duration"`
	CTALabel    LocalizedText   `json:"ctaLabel"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

// IsQuoteOnly reports whether the price is settled in the shop.
func (s Service) IsQuoteOnly() bool {
	return s.Price.IsZero()
}

// ServiceView is a Service rendered in one locale.
type ServiceView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	CTALabel    string  `json:"ctaLabel"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"priceLabel"`
	QuoteOnly   bool    `json:"quoteOnly"`
	Image       string  `json:"image"`
}

var quoteLabel = LocalizedText{ES: "Presupuesto", EN: "Quote"}

// PriceLabel renders a price as shown on cards and cart lines.
func PriceLabel(price decimal.Decimal, lang Language) string {
	if price.IsZero() {
		return quoteLabel.In(lang)
	}
	return price.String() + " €"
}

// Localize renders the service for lang.
func (s Service) Localize(lang Language) ServiceView {
	return ServiceView{
		ID:          s.ID,
		Name:        s.Name.In(lang),
		Description: s.Description.In(lang),
		Duration:    s.Duration.In(lang),
		CTALabel:    s.CTALabel.In(lang),
		Price:       s.Price.InexactFloat64(),
		PriceLabel:  PriceLabel(s.Price, lang),
		QuoteOnly:   s.IsQuoteOnly(),
		Image:       s.Image,
	}
}

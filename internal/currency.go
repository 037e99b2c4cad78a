package internal

import (
	"bytes"
	"fmt"
	"strings"
)

type CurrencyCode string

// NewCurrencyCode normalizes s and checks that it looks like a currency code:
// three or more ASCII letters.
func NewCurrencyCode(s string) (CurrencyCode, error) {
	ccy := normalizeCode(s)
	if !ccy.IsValid() {
		return "", fmt.Errorf("invalid currency code %q", s)
	}
	return ccy, nil
}

func normalizeCode(s string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
}

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
	AUD CurrencyCode = "AUD"
	CAD CurrencyCode = "CAD"
	CHF CurrencyCode = "CHF"
	CNY CurrencyCode = "CNY"
	INR CurrencyCode = "INR"
	VND CurrencyCode = "VND"
	KRW CurrencyCode = "KRW"
	SGD CurrencyCode = "SGD"
	THB CurrencyCode = "THB"
	MYR CurrencyCode = "MYR"
	PHP CurrencyCode = "PHP"
	BTC CurrencyCode = "BTC"
)

func (c CurrencyCode) IsValid() bool {
	if len(c) < 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (c CurrencyCode) String() string { return string(c) }

func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), "\"")
	ccy, err := NewCurrencyCode(s)
	if err != nil {
		return err
	}
	*c = ccy
	return nil
}

type PopularCurrency struct {
	Code  CurrencyCode
	Label string
}

// popularCurrencies is static reference data; order is the display order.
var popularCurrencies = []PopularCurrency{
	{USD, "🇺🇸 US Dollar"},
	{EUR, "🇪🇺 Euro"},
	{GBP, "🇬🇧 British Pound"},
	{JPY, "🇯🇵 Japanese Yen"},
	{AUD, "🇦🇺 Australian Dollar"},
	{CAD, "🇨🇦 Canadian Dollar"},
	{CHF, "🇨🇭 Swiss Franc"},
	{CNY, "🇨🇳 Chinese Yuan"},
	{INR, "🇮🇳 Indian Rupee"},
	{VND, "🇻🇳 Vietnamese Dong"},
	{KRW, "🇰🇷 South Korean Won"},
	{SGD, "🇸🇬 Singapore Dollar"},
	{THB, "🇹🇭 Thai Baht"},
	{MYR, "🇲🇾 Malaysian Ringgit"},
	{PHP, "🇵🇭 Philippine Peso"},
	{BTC, "₿ Bitcoin"},
}

// tableCurrencies are the columns of a conversion table.
var tableCurrencies = []CurrencyCode{USD, EUR, GBP, JPY, VND, CNY}

// PopularCurrencies returns a copy of the popular currency reference list.
func PopularCurrencies() []PopularCurrency {
	out := make([]PopularCurrency, len(popularCurrencies))
	copy(out, popularCurrencies)
	return out
}

// Flag returns the leading symbol of a popular currency label, or "" for
// codes outside the list.
func Flag(code CurrencyCode) string {
	for _, p := range popularCurrencies {
		if p.Code == code {
			if f := strings.Fields(p.Label); len(f) > 0 {
				return f[0]
			}
		}
	}
	return ""
}

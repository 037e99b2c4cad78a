package internal

import "strings"

const maxSearchResults = 10

// TableSource hands out the current rate table; nil means nothing is loaded.
type TableSource interface {
	Table() *RateTable
}

// ConversionService answers conversion queries against whatever table its
// source currently holds. Each call reads the table once.
type ConversionService struct {
	src TableSource
}

func NewConversionService(src TableSource) *ConversionService {
	return &ConversionService{src: src}
}

type PopularRate struct {
	Code  CurrencyCode
	Label string
	Rate  float64
}

type ConvertedAmount struct {
	Code   CurrencyCode
	Amount float64
}

// Convert pivots through the base currency: amount / rate(from) * rate(to).
// ok is false when either code is missing from the table.
func (s *ConversionService) Convert(amount float64, from, to string) (float64, bool) {
	return convert(s.src.Table(), amount, from, to)
}

func convert(t *RateTable, amount float64, from, to string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	fromRate, ok := t.RateOf(from)
	if !ok {
		return 0, false
	}
	toRate, ok := t.RateOf(to)
	if !ok {
		return 0, false
	}
	if normalizeCode(from) == normalizeCode(to) {
		return amount, true
	}

	amountInBase := amount / fromRate
	return amountInBase * toRate, true
}

// ExchangeRate is the price of one unit of from in units of to.
func (s *ConversionService) ExchangeRate(from, to string) (float64, bool) {
	t := s.src.Table()
	if t == nil {
		return 0, false
	}
	fromRate, ok := t.RateOf(from)
	if !ok {
		return 0, false
	}
	toRate, ok := t.RateOf(to)
	if !ok {
		return 0, false
	}
	return toRate / fromRate, true
}

func (s *ConversionService) PopularCurrencies() []PopularRate {
	t := s.src.Table()
	if t == nil {
		return nil
	}

	out := make([]PopularRate, 0, len(popularCurrencies))
	for _, p := range popularCurrencies {
		rate, ok := t.RateOf(p.Code.String())
		if !ok {
			continue
		}
		out = append(out, PopularRate{Code: p.Code, Label: p.Label, Rate: rate})
	}
	return out
}

// Search returns up to 10 codes containing keyword, in table order.
// An empty keyword matches everything.
func (s *ConversionService) Search(keyword string) []CurrencyCode {
	t := s.src.Table()
	if t == nil {
		return nil
	}

	keyword = strings.ToUpper(keyword)
	var out []CurrencyCode
	for _, code := range t.rates.codes {
		if !strings.Contains(string(code), keyword) {
			continue
		}
		out = append(out, code)
		if len(out) == maxSearchResults {
			break
		}
	}
	return out
}

// ConversionTable converts amount of base into each of the major currencies
// present in the table, skipping base itself. It is empty when base is unknown.
func (s *ConversionService) ConversionTable(base string, amount float64) []ConvertedAmount {
	t := s.src.Table()
	base = normalizeCode(base).String()

	var out []ConvertedAmount
	for _, code := range tableCurrencies {
		if code.String() == base {
			continue
		}
		converted, ok := convert(t, amount, base, code.String())
		if !ok {
			continue
		}
		out = append(out, ConvertedAmount{Code: code, Amount: converted})
	}
	return out
}

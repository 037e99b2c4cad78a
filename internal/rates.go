package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Rates is a currency code -> rate mapping that remembers insertion order.
// Codes are stored upper-cased. Values are not validated here; see NewRateTable.
type Rates struct {
	codes  []CurrencyCode
	values map[CurrencyCode]float64
}

func (r *Rates) Set(code string, rate float64) {
	ccy := normalizeCode(code)
	if r.values == nil {
		r.values = make(map[CurrencyCode]float64)
	}
	if _, ok := r.values[ccy]; !ok {
		r.codes = append(r.codes, ccy)
	}
	r.values[ccy] = rate
}

func (r Rates) Get(code string) (float64, bool) {
	v, ok := r.values[normalizeCode(code)]
	return v, ok
}

func (r Rates) Len() int { return len(r.codes) }

func (r Rates) Codes() []CurrencyCode {
	out := make([]CurrencyCode, len(r.codes))
	copy(out, r.codes)
	return out
}

// UnmarshalJSON decodes a JSON object keeping the key order of the document.
// Values may be JSON numbers or numeric strings.
func (r *Rates) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read rates: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rates: expected object, got %v", tok)
	}

	out := Rates{values: make(map[CurrencyCode]float64)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read rates key: %w", err)
		}
		key, _ := tok.(string)

		var d decimal.Decimal
		if err := dec.Decode(&d); err != nil {
			return fmt.Errorf("invalid rate for %q: %w", key, err)
		}
		out.Set(key, d.InexactFloat64())
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read rates end: %w", err)
	}

	*r = out
	return nil
}

func (r Rates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range r.codes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(code))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(decimal.NewFromFloat(r.values[code]).String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RateTable is an immutable, validated snapshot of exchange rates relative to
// a base currency: 1 unit of base = rate units of a code.
type RateTable struct {
	base        CurrencyCode
	rates       Rates
	lastUpdated Timestamp
}

// NewRateTable keeps only strictly positive finite rates and returns the codes
// it dropped. It fails when nothing valid is left.
func NewRateTable(base CurrencyCode, rates Rates, lastUpdated Timestamp) (*RateTable, []CurrencyCode, error) {
	var (
		valid   Rates
		dropped []CurrencyCode
	)
	for _, code := range rates.codes {
		v := rates.values[code]
		if code == "" || !validRate(v) {
			dropped = append(dropped, code)
			continue
		}
		valid.Set(string(code), v)
	}
	if valid.Len() == 0 {
		return nil, dropped, ErrEmptyRateTable
	}

	return &RateTable{
		base:        base,
		rates:       valid,
		lastUpdated: lastUpdated,
	}, dropped, nil
}

func validRate(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (t *RateTable) Base() CurrencyCode { return t.base }

func (t *RateTable) LastUpdated() Timestamp { return t.lastUpdated }

func (t *RateTable) Len() int { return t.rates.Len() }

// Codes returns the table's currency codes in table order.
func (t *RateTable) Codes() []CurrencyCode { return t.rates.Codes() }

// Rates returns a copy of the underlying rates.
func (t *RateTable) Rates() Rates {
	var out Rates
	for _, code := range t.rates.codes {
		out.Set(string(code), t.rates.values[code])
	}
	return out
}

func (t *RateTable) HasRate(code string) bool {
	_, ok := t.rates.Get(code)
	return ok
}

func (t *RateTable) RateOf(code string) (float64, bool) {
	return t.rates.Get(code)
}

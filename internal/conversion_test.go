package internal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-converter/internal"
)

type staticSource struct{ table *internal.RateTable }

func (s staticSource) Table() *internal.RateTable { return s.table }

type pair struct {
	code string
	rate float64
}

func newTable(t *testing.T, pairs ...pair) *internal.RateTable {
	t.Helper()
	var rates internal.Rates
	for _, p := range pairs {
		rates.Set(p.code, p.rate)
	}
	table, _, err := internal.NewRateTable(internal.USD, rates, internal.Timestamp{})
	require.NoError(t, err)
	return table
}

func newService(t *testing.T, pairs ...pair) *internal.ConversionService {
	return internal.NewConversionService(staticSource{table: newTable(t, pairs...)})
}

var sampleRates = []pair{
	{"USD", 1.0},
	{"EUR", 0.9},
	{"GBP", 0.79},
	{"JPY", 149.5},
	{"VND", 24000.0},
	{"CNY", 7.25},
	{"BTC", 0.0000157},
}

func TestConversionService_Convert_USDToVND(t *testing.T) {
	svc := newService(t, pair{"USD", 1.0}, pair{"EUR", 0.9}, pair{"VND", 24000.0})

	got, ok := svc.Convert(100, "USD", "VND")

	require.True(t, ok)
	assert.Equal(t, 2400000.0, got)
}

func TestConversionService_Convert_MissingCode(t *testing.T) {
	svc := newService(t, pair{"USD", 1.0}, pair{"EUR", 0.9})

	for _, amount := range []float64{50, 0, -10} {
		_, ok := svc.Convert(amount, "EUR", "GBP")
		assert.False(t, ok)
		_, ok = svc.Convert(amount, "GBP", "EUR")
		assert.False(t, ok)
	}
}

func TestConversionService_Convert_CaseInsensitive(t *testing.T) {
	svc := newService(t, pair{"USD", 1.0}, pair{"EUR", 0.9})

	got, ok := svc.Convert(10, "usd", "eur")

	require.True(t, ok)
	assert.InDelta(t, 9.0, got, 1e-12)
}

func TestConversionService_Convert_Identity(t *testing.T) {
	svc := newService(t, sampleRates...)

	for _, p := range sampleRates {
		got, ok := svc.Convert(123.45, p.code, p.code)
		require.True(t, ok)
		assert.InEpsilon(t, 123.45, got, 1e-9, p.code)
	}
}

func TestConversionService_Convert_RoundTrip(t *testing.T) {
	svc := newService(t, sampleRates...)

	for _, a := range sampleRates {
		for _, b := range sampleRates {
			for _, x := range []float64{0.01, 1, 987.65, 1e9} {
				there, ok := svc.Convert(x, a.code, b.code)
				require.True(t, ok)
				back, ok := svc.Convert(there, b.code, a.code)
				require.True(t, ok)
				assert.InEpsilon(t, x, back, 1e-9, "%s->%s->%s", a.code, b.code, a.code)
			}
		}
	}
}

func TestConversionService_ExchangeRate(t *testing.T) {
	svc := newService(t, sampleRates...)

	rate, ok := svc.ExchangeRate("EUR", "JPY")
	require.True(t, ok)
	assert.InEpsilon(t, 149.5/0.9, rate, 1e-12)

	for _, a := range sampleRates {
		for _, b := range sampleRates {
			ab, ok := svc.ExchangeRate(a.code, b.code)
			require.True(t, ok)
			ba, ok := svc.ExchangeRate(b.code, a.code)
			require.True(t, ok)
			assert.InEpsilon(t, 1.0, ab*ba, 1e-9)
		}
	}

	_, ok = svc.ExchangeRate("EUR", "XXX")
	assert.False(t, ok)
}

func TestConversionService_PopularCurrencies(t *testing.T) {
	svc := newService(t, pair{"VND", 24000}, pair{"ZAR", 18.2}, pair{"EUR", 0.9}, pair{"USD", 1})

	got := svc.PopularCurrencies()

	require.Len(t, got, 3)
	assert.Equal(t, internal.USD, got[0].Code)
	assert.Equal(t, "🇺🇸 US Dollar", got[0].Label)
	assert.Equal(t, 1.0, got[0].Rate)
	assert.Equal(t, internal.EUR, got[1].Code)
	assert.Equal(t, internal.VND, got[2].Code)
	assert.Equal(t, 24000.0, got[2].Rate)
}

func TestConversionService_Search(t *testing.T) {
	codes := []string{"USD", "AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN", "BAM", "VND", "VUV"}
	var pairs []pair
	for i, c := range codes {
		pairs = append(pairs, pair{c, float64(i + 1)})
	}
	svc := newService(t, pairs...)

	all := svc.Search("")
	assert.Equal(t, []internal.CurrencyCode{"USD", "AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG"}, all)

	a := svc.Search("a")
	assert.Len(t, a, 10)
	for _, code := range a {
		assert.True(t, strings.Contains(string(code), "A"))
	}

	assert.Equal(t, []internal.CurrencyCode{"VND", "VUV"}, svc.Search("v"))
	assert.Equal(t, []internal.CurrencyCode{"USD", "AUD"}, svc.Search("uD"))
	assert.Empty(t, svc.Search("zz"))
}

func TestConversionService_ConversionTable(t *testing.T) {
	svc := newService(t, pair{"USD", 1.0}, pair{"EUR", 0.9}, pair{"VND", 24000.0}, pair{"THB", 36})

	got := svc.ConversionTable("usd", 100)

	require.Len(t, got, 2)
	assert.Equal(t, internal.EUR, got[0].Code)
	assert.InDelta(t, 90.0, got[0].Amount, 1e-9)
	assert.Equal(t, internal.VND, got[1].Code)
	assert.InDelta(t, 2400000.0, got[1].Amount, 1e-6)

	assert.Empty(t, svc.ConversionTable("GBP", 100))
}

func TestConversionService_NoTable(t *testing.T) {
	svc := internal.NewConversionService(staticSource{})

	_, ok := svc.Convert(1, "USD", "USD")
	assert.False(t, ok)
	_, ok = svc.ExchangeRate("USD", "EUR")
	assert.False(t, ok)
	assert.Empty(t, svc.PopularCurrencies())
	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.ConversionTable("USD", 1))
}

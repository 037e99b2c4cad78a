package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-converter/internal"
	"currency-converter/internal/cli"
)

type fakeRates struct {
	table *internal.RateTable
	src   internal.Source
	err   error
	calls int
}

func (f *fakeRates) Acquire(context.Context, internal.CurrencyCode) (*internal.RateTable, internal.Source, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	return f.table, f.src, nil
}

func (f *fakeRates) HasRate(code string) bool {
	return f.table != nil && f.table.HasRate(code)
}

func (f *fakeRates) LastUpdated() internal.Timestamp {
	if f.table == nil {
		return internal.Timestamp{}
	}
	return f.table.LastUpdated()
}

func (f *fakeRates) Table() *internal.RateTable { return f.table }

func newFake(t *testing.T) *fakeRates {
	t.Helper()
	var rates internal.Rates
	rates.Set("USD", 1.0)
	rates.Set("EUR", 0.9)
	rates.Set("VND", 24000.0)
	table, _, err := internal.NewRateTable(internal.USD, rates, internal.Timestamp{})
	require.NoError(t, err)
	return &fakeRates{table: table, src: internal.SourceRemote}
}

func run(t *testing.T, rates *fakeRates, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := cli.New(rates, internal.NewConversionService(rates), internal.USD,
		strings.NewReader(input), &out, cli.WithColor(false))
	err := app.Run(context.Background())
	return out.String(), err
}

func TestApp_StartupFailure(t *testing.T) {
	rates := &fakeRates{err: errors.Join(internal.ErrNoRates,
		&internal.FetchError{Base: internal.USD, Cause: errors.New("timeout")})}

	out, err := run(t, rates, "1\n")

	require.ErrorIs(t, err, internal.ErrNoRates)
	assert.Contains(t, out, "Failed to fetch rates: timeout")
	assert.Contains(t, out, "Failed to load rates. Please check your internet connection.")
	assert.NotContains(t, out, "MENU OPTIONS")
}

func TestApp_Convert(t *testing.T) {
	out, err := run(t, newFake(t), "1\n100\nusd\nvnd\ny\nq\n5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Rates updated successfully!")
	assert.Contains(t, out, "100.00 USD = 2,400,000.00 VND")
	assert.Contains(t, out, "Exchange Rate: 1 USD = 24,000.000000 VND")
	assert.Contains(t, out, "CONVERSION TABLE")
	assert.Contains(t, out, "Base: 100 USD")
	assert.Contains(t, out, "🇪🇺 EUR : 90.00")
	assert.Contains(t, out, "🇻🇳 VND : 2,400,000.00")
	assert.Contains(t, out, "Thank you for using Currency Converter Pro!")
}

func TestApp_Convert_UnknownCurrency(t *testing.T) {
	out, err := run(t, newFake(t), "1\n50\nEUR\nGBP\nexit\n5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Currency 'GBP' not found!")
	assert.NotContains(t, out, "RESULT")
}

func TestApp_Convert_InvalidCurrencyCode(t *testing.T) {
	out, err := run(t, newFake(t), "1\n10\nU$\nEUR\n10\nusd\neu\nq\n5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid currency code 'U$'!")
	assert.Contains(t, out, "Invalid currency code 'eu'!")
	assert.NotContains(t, out, "not found!")
	assert.NotContains(t, out, "RESULT")
}

func TestApp_Convert_TableBaseKeepsFractionalAmount(t *testing.T) {
	out, err := run(t, newFake(t), "1\n12.5\nEUR\nUSD\ny\nq\n5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Base: 12.5 EUR")
}

func TestApp_Convert_InvalidAmount(t *testing.T) {
	out, err := run(t, newFake(t), "1\nabc\nquit\n5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid amount!")
}

func TestApp_PopularCurrencies(t *testing.T) {
	out, err := run(t, newFake(t), "2\n5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "POPULAR CURRENCIES")
	assert.Contains(t, out, "🇺🇸 US Dollar")
	assert.Contains(t, out, "24,000.0000")
	assert.NotContains(t, out, "British Pound")
	assert.Less(t, strings.Index(out, "US Dollar"), strings.Index(out, "Vietnamese Dong"))
}

func TestApp_Search(t *testing.T) {
	out, err := run(t, newFake(t), "3\nu\n3\nzz\n5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Found currencies:")
	assert.Contains(t, out, "- USD")
	assert.Contains(t, out, "- EUR")
	assert.NotContains(t, out, "- VND")
	assert.Contains(t, out, "No currencies found!")
}

func TestApp_Refresh(t *testing.T) {
	rates := newFake(t)

	_, err := run(t, rates, "4\n5\n")

	require.NoError(t, err)
	assert.Equal(t, 2, rates.calls)
}

func TestApp_SnapshotSource(t *testing.T) {
	rates := newFake(t)
	rates.src = internal.SourceSnapshot

	out, err := run(t, rates, "5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Loaded from cache")
}

func TestApp_InvalidChoiceAndEOF(t *testing.T) {
	out, err := run(t, newFake(t), "9\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice!")
}

func TestApp_ClearScreenCalled(t *testing.T) {
	cleared := false
	var out bytes.Buffer
	rates := newFake(t)
	app := cli.New(rates, internal.NewConversionService(rates), internal.USD,
		strings.NewReader(""), &out, cli.WithColor(false), cli.WithClearScreen(func() { cleared = true }))

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, cleared)
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"currency-converter/internal"

	"github.com/shopspring/decimal"
)

// InputError is a malformed value typed by the user.
type InputError struct {
	Field string
	Value string
	Cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Cause)
}

func (e *InputError) Unwrap() error { return e.Cause }

func parseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, &InputError{Field: "amount", Value: s, Cause: err}
	}
	return d.InexactFloat64(), nil
}

func parseCode(s string) (internal.CurrencyCode, error) {
	code, err := internal.NewCurrencyCode(s)
	if err != nil {
		return "", &InputError{Field: "currency", Value: s, Cause: err}
	}
	return code, nil
}

func isQuit(s string) bool {
	switch strings.ToLower(s) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// interactive runs conversions until the user quits or input ends.
func (a *App) interactive(ctx context.Context) {
	for ctx.Err() == nil {
		a.colors.bold.Fprintln(a.out, "Enter conversion details:")
		raw, ok := a.readLine(a.colors.prompt.Sprint("Amount: "))
		if !ok || isQuit(raw) {
			return
		}

		amount, err := parseAmount(raw)
		if err != nil {
			a.colors.fail.Fprintf(a.out, "✗ Invalid amount!\n\n")
			continue
		}

		from, ok := a.readLine(a.colors.prompt.Sprint("From (e.g., USD): "))
		if !ok {
			return
		}
		to, ok := a.readLine(a.colors.prompt.Sprint("To (e.g., VND): "))
		if !ok {
			return
		}
		from, to, ok = a.currencyPair(from, to)
		if !ok {
			continue
		}

		result, ok := a.conv.Convert(amount, from, to)
		if !ok {
			a.colors.fail.Fprintf(a.out, "✗ Conversion failed!\n\n")
			continue
		}

		a.colors.ok.Fprintln(a.out, "\n💰 RESULT:")
		fmt.Fprintf(a.out, "%s = %s\n",
			a.colors.info.Sprintf("%s %s", a.num.Sprintf("%.2f", amount), from),
			a.colors.ok.Sprintf("%s %s", a.num.Sprintf("%.2f", result), to))
		if rate, ok := a.conv.ExchangeRate(from, to); ok {
			a.colors.warn.Fprintf(a.out, "Exchange Rate: 1 %s = %s %s\n\n", from, a.num.Sprintf("%.6f", rate), to)
		}

		answer, ok := a.readLine(a.colors.prompt.Sprint("Show conversion table? (y/n): "))
		if !ok {
			return
		}
		if strings.ToLower(answer) == "y" {
			a.showConversionTable(from, amount)
		}
	}
}

// currencyPair validates both codes and checks that rates are loaded for them.
func (a *App) currencyPair(rawFrom, rawTo string) (string, string, bool) {
	codes := make([]string, 0, 2)
	for _, raw := range []string{rawFrom, rawTo} {
		code, err := parseCode(raw)
		if err != nil {
			a.colors.fail.Fprintf(a.out, "✗ Invalid currency code '%s'!\n\n", raw)
			return "", "", false
		}
		if !a.rates.HasRate(code.String()) {
			a.colors.fail.Fprintf(a.out, "✗ Currency '%s' not found!\n\n", code)
			return "", "", false
		}
		codes = append(codes, code.String())
	}
	return codes[0], codes[1], true
}

func (a *App) showConversionTable(base string, amount float64) {
	a.colors.header.Fprintln(a.out, "\n📊 CONVERSION TABLE")
	a.colors.info.Fprintf(a.out, "Base: %s %s\n", strconv.FormatFloat(amount, 'f', -1, 64), strings.ToUpper(base))
	a.colors.info.Fprintln(a.out, strings.Repeat("=", 58))

	for _, row := range a.conv.ConversionTable(base, amount) {
		fmt.Fprintf(a.out, "%s %-4s: %s\n", internal.Flag(row.Code), row.Code, a.colors.ok.Sprint(a.num.Sprintf("%.2f", row.Amount)))
	}
	fmt.Fprintln(a.out)
}

func (a *App) showPopular() {
	a.colors.header.Fprintln(a.out, "\n🌟 POPULAR CURRENCIES")
	a.colors.info.Fprintln(a.out, strings.Repeat("=", 58))

	for _, p := range a.conv.PopularCurrencies() {
		fmt.Fprintf(a.out, "%s - %-30s Rate: %s\n",
			a.colors.warn.Sprintf("%-4s", p.Code), p.Label, a.colors.ok.Sprint(a.num.Sprintf("%.4f", p.Rate)))
	}
	fmt.Fprintln(a.out)
}

func (a *App) searchCurrency() {
	keyword, ok := a.readLine(a.colors.prompt.Sprint("\nSearch currency (e.g., VN): "))
	if !ok {
		return
	}

	results := a.conv.Search(keyword)
	if len(results) == 0 {
		a.colors.fail.Fprintf(a.out, "No currencies found!\n\n")
		return
	}

	a.colors.ok.Fprintln(a.out, "\nFound currencies:")
	for _, code := range results {
		a.colors.warn.Fprintf(a.out, "- %s\n", code)
	}
	fmt.Fprintln(a.out)
}

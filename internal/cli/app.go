package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"currency-converter/internal"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type RateSource interface {
	Acquire(ctx context.Context, base internal.CurrencyCode) (*internal.RateTable, internal.Source, error)
	HasRate(code string) bool
	LastUpdated() internal.Timestamp
}

type Converter interface {
	Convert(amount float64, from, to string) (float64, bool)
	ExchangeRate(from, to string) (float64, bool)
	PopularCurrencies() []internal.PopularRate
	Search(keyword string) []internal.CurrencyCode
	ConversionTable(base string, amount float64) []internal.ConvertedAmount
}

type palette struct {
	header, info, warn, ok, fail, prompt, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.FgCyan, color.Bold),
		info:   color.New(color.FgCyan),
		warn:   color.New(color.FgYellow),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		prompt: color.New(color.FgBlue),
		bold:   color.New(color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.header, p.info, p.warn, p.ok, p.fail, p.prompt, p.bold} {
			c.DisableColor()
		}
	}
	return p
}

// App is the interactive menu on top of the rate store.
type App struct {
	rates RateSource
	conv  Converter
	base  internal.CurrencyCode

	in      *bufio.Scanner
	out     io.Writer
	num     *message.Printer
	colors  palette
	clearFn func()
}

type Option func(*App)

func WithColor(enabled bool) Option {
	return func(a *App) { a.colors = newPalette(enabled) }
}

// WithClearScreen sets the function used to clear the terminal on start.
func WithClearScreen(fn func()) Option {
	return func(a *App) { a.clearFn = fn }
}

func New(rates RateSource, conv Converter, base internal.CurrencyCode, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{
		rates:  rates,
		conv:   conv,
		base:   base,
		in:     bufio.NewScanner(in),
		out:    out,
		num:    message.NewPrinter(language.English),
		colors: newPalette(!color.NoColor),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run loads rates and serves the menu until the user exits or input ends.
// It returns an error only when no rates could be loaded at startup.
func (a *App) Run(ctx context.Context) error {
	if a.clearFn != nil {
		a.clearFn()
	}
	a.printHeader()

	if err := a.acquire(ctx); err != nil {
		a.colors.fail.Fprintln(a.out, "Failed to load rates. Please check your internet connection.")
		return err
	}

	for ctx.Err() == nil {
		choice, ok := a.readLine(a.menu())
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			fmt.Fprintln(a.out)
			a.interactive(ctx)
		case "2":
			a.showPopular()
		case "3":
			a.searchCurrency()
		case "4":
			fmt.Fprintln(a.out)
			_ = a.acquire(ctx)
		case "5":
			a.colors.ok.Fprintf(a.out, "\nThank you for using Currency Converter Pro! 💱\n\n")
			return nil
		default:
			a.colors.fail.Fprintf(a.out, "Invalid choice!\n\n")
		}
	}
	return nil
}

func (a *App) printHeader() {
	a.colors.header.Fprintln(a.out, `
╔══════════════════════════════════════════════════════════╗
║            💱 CURRENCY CONVERTER PRO 💱                  ║
║          Real-time Exchange Rates & Conversion           ║
╚══════════════════════════════════════════════════════════╝`)
	if ts := a.rates.LastUpdated(); !ts.IsZero() {
		a.colors.warn.Fprintf(a.out, "Last Update: %s\n\n", ts)
	}
}

func (a *App) acquire(ctx context.Context) error {
	a.colors.warn.Fprintln(a.out, "📡 Fetching latest rates...")

	table, src, err := a.rates.Acquire(ctx, a.base)
	if err != nil {
		var fe *internal.FetchError
		if errors.As(err, &fe) {
			a.colors.fail.Fprintf(a.out, "✗ Failed to fetch rates: %v\n", fe.Cause)
		}
		var ce *internal.CacheError
		if errors.As(err, &ce) {
			a.colors.fail.Fprintf(a.out, "✗ Cache load failed: %v\n\n", ce.Cause)
		}
		return err
	}

	switch src {
	case internal.SourceSnapshot:
		a.colors.warn.Fprintln(a.out, "Rates provider unreachable, using cached rates.")
		a.colors.ok.Fprintf(a.out, "✓ Loaded from cache (%d currencies, updated %s)\n\n", table.Len(), table.LastUpdated())
	default:
		a.colors.ok.Fprintf(a.out, "✓ Rates updated successfully! (%d currencies)\n\n", table.Len())
	}
	return nil
}

func (a *App) menu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.colors.header.Sprint("MENU OPTIONS:") + "\n")
	for i, item := range []string{"Convert Currency", "Show Popular Currencies", "Search Currency", "Refresh Rates", "Exit"} {
		b.WriteString(a.colors.warn.Sprintf("%d.", i+1) + " " + item + "\n")
	}
	b.WriteString("\n" + a.colors.prompt.Sprint("Choice: "))
	return b.String()
}

// readLine prints prompt and returns the next trimmed input line.
// ok is false once input is exhausted.
func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

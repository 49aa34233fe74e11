// Package display renders comparison results for humans: localized
// number formatting, signed deltas and the plain-text report the CLI
// prints.
package display

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/framehouse/estimate-cli/internal/i18n"
	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/pkg/rates"
)

// placeholder stands in for values the source document did not provide.
const placeholder = "—"

// Renderer formats comparison output for one language/locale pair.
type Renderer struct {
	printer *message.Printer
	bundle  *i18n.Bundle
	lang    string
	rates   *rates.Rates
}

// New builds a Renderer. locale drives number formatting (BCP 47);
// lang picks the message table.
func New(lang, locale string, bundle *i18n.Bundle) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Renderer{
		printer: message.NewPrinter(tag),
		bundle:  bundle,
		lang:    lang,
	}
}

// WithRates attaches an exchange-rate snapshot used to show approximate
// conversions next to mismatched-currency rows. Stored values are never
// converted.
func (r *Renderer) WithRates(rs *rates.Rates) *Renderer {
	r.rates = rs
	return r
}

// Money formats an amount with its currency, or a placeholder for zero.
func (r *Renderer) Money(amount float64, currency string) string {
	if amount == 0 {
		return placeholder
	}
	s := r.printer.Sprintf("%.0f", amount)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// Number formats a plain number, placeholder for zero.
func (r *Renderer) Number(x float64) string {
	if x == 0 {
		return placeholder
	}
	if x == float64(int64(x)) {
		return r.printer.Sprintf("%d", int64(x))
	}
	return r.printer.Sprintf("%.1f", x)
}

// Signed formats a delta with an explicit sign.
func (r *Renderer) Signed(x float64) string {
	if x > 0 {
		return "+" + r.Number(x)
	}
	return r.Number(x)
}

// ApproxMoney converts an amount for display and marks it approximate.
// Returns the unconverted form when no rate snapshot is attached or the
// pair is not quoted.
func (r *Renderer) ApproxMoney(amount float64, from, to string) string {
	if r.rates == nil || r.rates.Base != from {
		return r.Money(amount, from)
	}
	converted, err := r.rates.Convert(amount, to)
	if err != nil {
		return r.Money(amount, from)
	}
	return "≈" + r.Money(converted, to)
}

// Render produces the plain-text comparison report.
func (r *Renderer) Render(result model.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %.1f\n", r.bundle.T(r.lang, "side.competitor", nil), result.CompetitorScore.Total)
	fmt.Fprintf(&b, "%s: %.1f\n", r.bundle.T(r.lang, "side.our", nil), result.OurScore.Total)
	b.WriteString(r.bundle.T(r.lang, "winner."+string(result.Winner), nil))
	b.WriteString("\n\n")

	if result.Deltas.PriceComparable && result.Deltas.Price != 0 {
		fmt.Fprintf(&b, "Δ %s\n", r.Money(result.Deltas.Price, result.Deltas.Currency))
	}
	if result.CurrencyMismatch {
		b.WriteString(r.bundle.T(r.lang, "row.not_comparable", nil))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, row := range result.Rows {
		b.WriteString(r.renderRow(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r.Recommendation(rec))
	}
	return b.String()
}

// Recommendation renders one recommendation through the message table,
// localizing its numeric arguments.
func (r *Renderer) Recommendation(rec model.Recommendation) string {
	args := make(map[string]any, len(rec.Args))
	for k, v := range rec.Args {
		switch k {
		case "amount":
			if f, ok := v.(float64); ok {
				args[k] = r.printer.Sprintf("%.0f", f)
				continue
			}
		case "days":
			if f, ok := v.(float64); ok {
				args[k] = r.bundle.Plural(r.lang, "day", int(f))
				continue
			}
		case "steps":
			if n, ok := v.(int); ok {
				args[k] = r.bundle.Plural(r.lang, "class", n)
				continue
			}
		}
		args[k] = v
	}
	return r.bundle.T(r.lang, "recommendation."+rec.Key, args)
}

func (r *Renderer) renderRow(row model.CriterionResult) string {
	verdict := string(row.Winner)
	if row.Winner == model.WinnerTie {
		verdict = r.bundle.T(r.lang, "row.tie", nil)
	}
	if row.NotComparable {
		verdict = r.bundle.T(r.lang, "row.not_comparable", nil)
	}
	return fmt.Sprintf("%-22s %12s %12s  %s",
		row.Criterion, r.value(row.CompetitorValue), r.value(row.OurValue), verdict)
}

func (r *Renderer) value(v any) string {
	switch val := v.(type) {
	case float64:
		return r.Number(val)
	case bool:
		if val {
			return "✓"
		}
		return "✗"
	case string:
		if val == "" {
			return placeholder
		}
		return val
	case nil:
		return placeholder
	default:
		return fmt.Sprintf("%v", val)
	}
}

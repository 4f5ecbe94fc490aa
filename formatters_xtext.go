package formatters

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var hundred = decimal.NewFromInt(100)

// localeEngine formats values for a single locale. It prefers the locale's
// FormattingRules and falls back to golang.org/x/text when none apply.
type localeEngine struct {
	locale   string
	tag      language.Tag
	printer  *message.Printer
	rules    *FormattingRules
	currency currency.Unit
	symbol   string
}

func newLocaleEngine(tag language.Tag, rulesProvider *FormattingRulesProvider) *localeEngine {
	engine := &localeEngine{
		locale:  tag.String(),
		tag:     tag,
		printer: message.NewPrinter(tag),
	}

	if rules, ok := rulesProvider.Get(tag); ok {
		engine.rules = rules
	}

	engine.resolveCurrency()
	return engine
}

// resolveCurrency picks the currency for the locale. An explicit region wins
// over inherited rules so es-AR does not print euros or pesos colombianos.
func (e *localeEngine) resolveCurrency() {
	var code, symbol string
	if e.rules != nil {
		code = e.rules.CurrencyRules.Code
		symbol = e.rules.CurrencyRules.Symbol
	}

	if region, conf := e.tag.Region(); conf == language.Exact {
		if regional, ok := currency.FromRegion(region); ok && regional.String() != code {
			code, symbol = regional.String(), ""
		}
	}

	if code == "" {
		if unit, conf := currency.FromTag(e.tag); conf != language.No {
			code = unit.String()
		}
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.XXX
	}
	e.currency = unit

	if symbol == "" {
		symbol = strings.TrimSpace(e.printer.Sprintf("%v", currency.Symbol(unit)))
	}
	if symbol == "" {
		symbol = unit.String()
	}
	e.symbol = symbol
}

func (e *localeEngine) format(value decimal.Decimal, style Style) (string, error) {
	switch style {
	case StyleDecimal:
		return e.formatDecimal(value), nil
	case StyleSpellout:
		return e.formatSpellout(value)
	case StyleCurrency:
		return e.formatCurrency(value), nil
	case StylePercent:
		return e.formatPercent(value), nil
	case StyleOrdinal:
		return e.formatOrdinal(value)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedStyle, style)
	}
}

func (e *localeEngine) formatDecimal(value decimal.Decimal) string {
	if e.rules == nil {
		return e.printer.Sprintf("%v", number.Decimal(value.InexactFloat64(), number.MaxFractionDigits(3)))
	}

	negative, body := e.formatNumberWithRules(value, e.rules.NumberRules.maxFractions(), false)
	if negative {
		return "-" + body
	}
	return body
}

func (e *localeEngine) formatCurrency(amount decimal.Decimal) string {
	if e.rules == nil {
		scale, _ := currency.Standard.Rounding(e.currency)
		opts := []number.Option{number.MinFractionDigits(scale), number.MaxFractionDigits(scale)}
		return e.symbol + " " + e.printer.Sprintf("%v", number.Decimal(amount.InexactFloat64(), opts...))
	}

	negative, body := e.formatNumberWithRules(amount, e.rules.CurrencyRules.Decimals, true)
	result := strings.ReplaceAll(e.rules.CurrencyRules.Pattern, "{symbol}", e.symbol)
	result = strings.TrimSpace(strings.ReplaceAll(result, "{amount}", body))
	if negative {
		return "-" + result
	}
	return result
}

// formatPercent renders a fraction (0.45) as a percentage (45 %)
func (e *localeEngine) formatPercent(fraction decimal.Decimal) string {
	if e.rules == nil {
		return e.printer.Sprintf("%v", number.Percent(fraction.InexactFloat64(), number.MaxFractionDigits(0)))
	}

	negative, body := e.formatNumberWithRules(fraction.Mul(hundred), e.rules.PercentRules.Decimals, false)
	result := strings.ReplaceAll(e.rules.PercentRules.Pattern, "{amount}", body)
	if negative {
		return "-" + result
	}
	return result
}

func (e *localeEngine) formatOrdinal(value decimal.Decimal) (string, error) {
	if !value.Equal(value.Truncate(0)) {
		return "", fmt.Errorf("%w: ordinal requires a whole number, got %s", ErrInvalidInput, value.String())
	}
	if e.rules == nil || e.rules.OrdinalSystem == "" {
		return "", fmt.Errorf("%w: no ordinal rules for %q", ErrUnsupportedLocale, e.locale)
	}

	suffix, err := ordinalSuffix(e.rules.OrdinalSystem, value.Mod(hundred).IntPart())
	if err != nil {
		return "", err
	}

	negative, body := e.formatNumberWithRules(value, 0, false)
	if negative {
		return "-" + body + suffix, nil
	}
	return body + suffix, nil
}

func (e *localeEngine) formatSpellout(value decimal.Decimal) (string, error) {
	if e.rules == nil || e.rules.SpelloutSystem == "" {
		return "", fmt.Errorf("%w: no spellout rules for %q", ErrUnsupportedLocale, e.locale)
	}
	return spellCardinal(e.rules.SpelloutSystem, value)
}

// formatNumberWithRules rounds value half-even to places fraction digits and
// applies the locale separators. fixed keeps trailing zeros.
func (e *localeEngine) formatNumberWithRules(value decimal.Decimal, places int, fixed bool) (bool, string) {
	rounded := value.RoundBank(int32(places))
	negative := rounded.Sign() < 0

	var formatted string
	if fixed {
		formatted = rounded.Abs().StringFixed(int32(places))
	} else {
		formatted = rounded.Abs().String()
	}

	integerPart, fractionPart, hasFraction := strings.Cut(formatted, ".")

	rules := e.rules.NumberRules
	thousandSep := rules.ThousandSep
	if thousandSep != "" && len(integerPart) >= 3+rules.MinGrouping {
		var result strings.Builder
		for i, digit := range integerPart {
			if i > 0 && (len(integerPart)-i)%3 == 0 {
				result.WriteString(thousandSep)
			}
			result.WriteRune(digit)
		}
		integerPart = result.String()
	}

	if hasFraction {
		return negative, integerPart + rules.DecimalSep + fractionPart
	}
	return negative, integerPart
}

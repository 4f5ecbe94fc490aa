package formatters

import (
	"regexp"
	"sync"
)

// trailingCents matches the two digit fraction a currency pattern leaves at
// the end of the string ("$ 1.000,00", "$1,000.00").
var trailingCents = regexp.MustCompile(`[.,]\d{2}$`)

// Formatter formats numbers for any locale golang.org/x/text can parse.
// It is safe for concurrent use.
type Formatter struct {
	defaultLocale string
	rules         *FormattingRulesProvider
	registry      *formatterRegistry
}

// NewFormatter builds a Formatter from options
func NewFormatter(opts ...Option) (*Formatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildFormatter()
}

var defaultFormatter = sync.OnceValue(func() *Formatter {
	formatter, err := NewFormatter()
	if err != nil {
		panic(err)
	}
	return formatter
})

// Default returns the shared Formatter behind the package level functions
func Default() *Formatter {
	return defaultFormatter()
}

// DefaultLocale reports the locale used for empty locale arguments
func (f *Formatter) DefaultLocale() string {
	return f.defaultLocale
}

// Format renders value in locale using style. An empty locale selects the
// formatter default.
func (f *Formatter) Format(value any, locale string, style Style) (string, error) {
	number, err := toDecimal(value)
	if err != nil {
		return "", err
	}

	engine, err := f.engine(locale)
	if err != nil {
		return "", err
	}
	return engine.format(number, style)
}

// Spell renders value as cardinal words ("mil doscientos")
func (f *Formatter) Spell(value any, locale string) (string, error) {
	return f.Format(value, locale, StyleSpellout)
}

// Currency renders value in the locale currency. Unless showDecimals is set a
// trailing two digit fraction is dropped from the result.
func (f *Formatter) Currency(value any, locale string, showDecimals bool) (string, error) {
	formatted, err := f.Format(value, locale, StyleCurrency)
	if err != nil {
		return "", err
	}
	if showDecimals {
		return formatted, nil
	}
	return trailingCents.ReplaceAllString(formatted, ""), nil
}

// Percent renders value as a percentage where 45 means 45%
func (f *Formatter) Percent(value any, locale string) (string, error) {
	number, err := toDecimal(value)
	if err != nil {
		return "", err
	}

	engine, err := f.engine(locale)
	if err != nil {
		return "", err
	}
	return engine.format(number.Div(hundred), StylePercent)
}

// OrdinalNumeral renders value as an ordinal numeral ("1.º", "1st")
func (f *Formatter) OrdinalNumeral(value any, locale string) (string, error) {
	return f.Format(value, locale, StyleOrdinal)
}

// Locales lists the locales with built-in or configured formatting rules
func (f *Formatter) Locales() []string {
	return f.rules.Locales()
}

func (f *Formatter) engine(locale string) (*localeEngine, error) {
	if locale == "" {
		locale = f.defaultLocale
	}
	return f.registry.engine(locale)
}

// FormatNumber formats value with the default Formatter
func FormatNumber(value any, locale string, style Style) (string, error) {
	return Default().Format(value, locale, style)
}

// SpellNumber spells value as cardinal words with the default Formatter
func SpellNumber(value any, locale string) (string, error) {
	return Default().Spell(value, locale)
}

// FormatCurrency formats value as currency with the default Formatter
func FormatCurrency(value any, locale string, showDecimals bool) (string, error) {
	return Default().Currency(value, locale, showDecimals)
}

// FormatPercent formats value as a percentage with the default Formatter
func FormatPercent(value any, locale string) (string, error) {
	return Default().Percent(value, locale)
}

// FormatOrdinalNumeral formats value as an ordinal numeral with the default Formatter
func FormatOrdinalNumeral(value any, locale string) (string, error) {
	return Default().OrdinalNumeral(value, locale)
}

package formatters

import (
	"sort"

	"golang.org/x/text/language"
)

// formattingRulesData contains the built-in formatting rules. Keys are
// canonical BCP 47 tags; regional entries only exist where they differ from
// their CLDR parent.
var formattingRulesData = map[string]FormattingRules{
	"en": {
		Locale: "en",
		NumberRules: NumberFormatRules{
			DecimalSep:  ".",
			ThousandSep: ",",
			MinGrouping: 1,
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern:  "{symbol}{amount}",
			Code:     "USD",
			Symbol:   "$",
			Decimals: 2,
		},
		PercentRules: PercentFormatRules{
			Pattern: "{amount}%",
		},
		OrdinalSystem:  "english",
		SpelloutSystem: "english",
	},
	"es": {
		Locale: "es",
		NumberRules: NumberFormatRules{
			DecimalSep:  ",",
			ThousandSep: ".",
			MinGrouping: 2,
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern:  "{amount} {symbol}",
			Code:     "EUR",
			Symbol:   "€",
			Decimals: 2,
		},
		PercentRules: PercentFormatRules{
			Pattern: "{amount} %",
		},
		OrdinalSystem:  "spanish",
		SpelloutSystem: "spanish",
	},
	"es-419": {
		Locale: "es-419",
		NumberRules: NumberFormatRules{
			DecimalSep:  ".",
			ThousandSep: ",",
			MinGrouping: 1,
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern:  "{symbol}{amount}",
			Decimals: 2,
		},
		PercentRules: PercentFormatRules{
			Pattern: "{amount} %",
		},
		OrdinalSystem:  "spanish",
		SpelloutSystem: "spanish",
	},
	"es-CO": {
		Locale: "es-CO",
		NumberRules: NumberFormatRules{
			DecimalSep:  ",",
			ThousandSep: ".",
			MinGrouping: 1,
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern:  "{symbol} {amount}",
			Code:     "COP",
			Symbol:   "$",
			Decimals: 2,
		},
		PercentRules: PercentFormatRules{
			Pattern: "{amount} %",
		},
		OrdinalSystem:  "spanish",
		SpelloutSystem: "spanish",
	},
	"es-MX": {
		Locale: "es-MX",
		NumberRules: NumberFormatRules{
			DecimalSep:  ".",
			ThousandSep: ",",
			MinGrouping: 1,
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern:  "{symbol}{amount}",
			Code:     "MXN",
			Symbol:   "$",
			Decimals: 2,
		},
		PercentRules: PercentFormatRules{
			Pattern: "{amount} %",
		},
		OrdinalSystem:  "spanish",
		SpelloutSystem: "spanish",
	},
}

// withDefaults fills blank fields so partially specified rule files still
// produce usable output.
func (r FormattingRules) withDefaults() FormattingRules {
	if r.NumberRules.DecimalSep == "" {
		r.NumberRules.DecimalSep = "."
	}
	if r.NumberRules.MinGrouping < 1 {
		r.NumberRules.MinGrouping = 1
	}
	if r.CurrencyRules.Pattern == "" {
		r.CurrencyRules.Pattern = "{symbol} {amount}"
	}
	if r.CurrencyRules.Decimals < 0 {
		r.CurrencyRules.Decimals = 0
	}
	if r.PercentRules.Pattern == "" {
		r.PercentRules.Pattern = "{amount}%"
	}
	if r.PercentRules.Decimals < 0 {
		r.PercentRules.Decimals = 0
	}
	return r
}

// FormattingRulesProvider provides formatting rules for locales
type FormattingRulesProvider struct {
	rules    map[string]FormattingRules
	resolver FallbackResolver
}

// NewFormattingRulesProvider layers overrides on top of the built-in rules
func NewFormattingRulesProvider(overrides map[string]FormattingRules, resolver FallbackResolver) *FormattingRulesProvider {
	rules := make(map[string]FormattingRules, len(formattingRulesData)+len(overrides))

	for k, v := range formattingRulesData {
		rules[k] = v
	}

	for k, v := range overrides {
		key := localeKey(k)
		if key == "" {
			continue
		}
		if v.Locale == "" {
			v.Locale = key
		}
		rules[key] = v
	}

	return &FormattingRulesProvider{
		rules:    rules,
		resolver: resolver,
	}
}

// Get loads formatting rules for a locale.
// It tries exact match, then the resolver chain, then the CLDR parent chain.
// The boolean is false when no rules apply and callers must fall back to
// golang.org/x/text.
func (p *FormattingRulesProvider) Get(tag language.Tag) (*FormattingRules, bool) {
	if p == nil || len(p.rules) == 0 {
		return nil, false
	}

	key := tag.String()
	if rules, ok := p.rules[key]; ok {
		resolved := rules.withDefaults()
		return &resolved, true
	}

	if p.resolver != nil {
		for _, candidate := range p.resolver.Resolve(key) {
			if rules, ok := p.rules[candidate]; ok {
				resolved := rules.withDefaults()
				return &resolved, true
			}
		}
	}

	for _, candidate := range localeParentChain(tag) {
		if rules, ok := p.rules[candidate]; ok {
			resolved := rules.withDefaults()
			return &resolved, true
		}
	}

	return nil, false
}

// Locales returns the locales with rules, built-in and overridden
func (p *FormattingRulesProvider) Locales() []string {
	if p == nil {
		return nil
	}
	locales := make([]string, 0, len(p.rules))
	for locale := range p.rules {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

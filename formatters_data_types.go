package formatters

// FormattingRules contains all locale-specific formatting patterns
type FormattingRules struct {
	Locale        string              `json:"locale" yaml:"locale"`
	NumberRules   NumberFormatRules   `json:"number_rules" yaml:"number_rules"`
	CurrencyRules CurrencyFormatRules `json:"currency_rules" yaml:"currency_rules"`
	PercentRules  PercentFormatRules  `json:"percent_rules" yaml:"percent_rules"`
	// OrdinalSystem selects the numeral ordinal rule set: "spanish", "english"
	OrdinalSystem string `json:"ordinal_system" yaml:"ordinal_system"`
	// SpelloutSystem selects the cardinal spellout rule set: "spanish", "english"
	SpelloutSystem string `json:"spellout_system" yaml:"spellout_system"`
}

// NumberFormatRules defines decimal separators and grouping
type NumberFormatRules struct {
	DecimalSep  string `json:"decimal_separator" yaml:"decimal_separator"`
	ThousandSep string `json:"thousand_separator" yaml:"thousand_separator"`
	// MinGrouping is the CLDR minimumGroupingDigits value: the integer part
	// is grouped only when it has at least 3+MinGrouping digits.
	MinGrouping int `json:"min_grouping" yaml:"min_grouping"`
	// MaxFractions caps decimal fraction digits; nil means 3 and 0 gives
	// integer output.
	MaxFractions *int `json:"max_fractions,omitempty" yaml:"max_fractions,omitempty"`
}

const defaultMaxFractions = 3

func (r NumberFormatRules) maxFractions() int {
	if r.MaxFractions == nil || *r.MaxFractions < 0 {
		return defaultMaxFractions
	}
	return *r.MaxFractions
}

// CurrencyFormatRules defines currency formatting
type CurrencyFormatRules struct {
	// Pattern: {symbol}, {amount}
	Pattern  string `json:"pattern" yaml:"pattern"`
	Code     string `json:"code" yaml:"code"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals int    `json:"decimals" yaml:"decimals"`
}

// PercentFormatRules defines percent formatting
type PercentFormatRules struct {
	// Pattern: {amount}
	Pattern  string `json:"pattern" yaml:"pattern"`
	Decimals int    `json:"decimals" yaml:"decimals"`
}

// RulesLoader loads formatting rules keyed by locale
type RulesLoader interface {
	Load() (map[string]FormattingRules, error)
}

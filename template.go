package formatters

// TemplateHelpers exposes the formatter as go-template helpers. A nil
// formatter uses Default().
func TemplateHelpers(f *Formatter) map[string]any {
	if f == nil {
		f = Default()
	}
	return f.FuncMap()
}

// FuncMap returns helpers suitable for text/template and html/template.
// Helpers that can fail return (string, error) so template execution stops
// with the formatter error.
func (f *Formatter) FuncMap() map[string]any {
	return map[string]any{
		"format_number": func(value any, locale, style string) (string, error) {
			parsed, err := ParseStyle(style)
			if err != nil {
				return "", err
			}
			return f.Format(value, locale, parsed)
		},
		"spell_number": f.Spell,
		"format_currency": func(value any, locale string, showDecimals ...bool) (string, error) {
			return f.Currency(value, locale, len(showDecimals) > 0 && showDecimals[0])
		},
		"format_percent": f.Percent,
		"format_ordinal": f.OrdinalNumeral,
		"spanish_ordinal": func(value any, suffix ...string) (string, error) {
			if len(suffix) > 0 {
				return SpellSpanishOrdinal(value, suffix[0])
			}
			return SpellSpanishOrdinal(value, SuffixMasculine)
		},
		"spanish_date":         FormatSpanishDate,
		"spanish_date_spelled": FormatSpanishDateSpelled,
	}
}

package formatters

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale replaces underscores with hyphens and trims whitespace so
// POSIX style codes ("es_CO") parse as BCP 47 tags.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// parseLocale returns the canonical tag for locale.
func parseLocale(locale string) (language.Tag, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return language.Und, fmt.Errorf("%w: empty locale", ErrUnsupportedLocale)
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err)
	}
	return tag, nil
}

// localeKey returns the canonical map key for locale, or the normalized input
// when it does not parse.
func localeKey(locale string) string {
	normalized := normalizeLocale(locale)
	if tag, err := language.Parse(normalized); err == nil {
		return tag.String()
	}
	return normalized
}

// localeParentChain lists the parents of tag from closest to root,
// e.g. es-CO -> [es-419 es].
func localeParentChain(tag language.Tag) []string {
	var chain []string
	seen := make(map[string]struct{}, 4)

	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		value := parent.String()
		if value == "" || value == "und" {
			break
		}
		if _, exists := seen[value]; exists {
			break
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
	}

	base, _ := tag.Base()
	if baseValue := base.String(); baseValue != "" && baseValue != "und" {
		if _, exists := seen[baseValue]; !exists && baseValue != tag.String() {
			chain = append(chain, baseValue)
		}
	}

	return chain
}

func containsLocale(locales []string, target string) bool {
	for _, locale := range locales {
		if locale == target {
			return true
		}
	}
	return false
}

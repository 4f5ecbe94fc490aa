package formatters

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLocale is used whenever a caller passes an empty locale.
const DefaultLocale = "es_CO"

const (
	SuffixMasculine = "o"
	SuffixFeminine  = "a"
)

// Style selects the output shape of Format
type Style int

const (
	StyleDecimal Style = iota
	StyleSpellout
	StyleCurrency
	StylePercent
	StyleOrdinal
)

var styleNames = map[Style]string{
	StyleDecimal:  "decimal",
	StyleSpellout: "spellout",
	StyleCurrency: "currency",
	StylePercent:  "percent",
	StyleOrdinal:  "ordinal",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle maps a style name back to its Style value
func ParseStyle(name string) (Style, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for style, styleName := range styleNames {
		if styleName == normalized {
			return style, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStyle, name)
}

// Date is the read-only calendar view the date phrase formatters need.
// time.Time satisfies it.
type Date interface {
	Day() int
	Month() time.Month
	Year() int
}

package formatters

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxSpellout bounds the integer part of spelled values (exclusive).
const maxSpellout uint64 = 1_000_000_000_000_000_000

var spanishUnderThirty = [...]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var spanishTens = [...]string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var spanishHundreds = [...]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

var englishUnderTwenty = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var englishTens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var englishScales = [...]string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
}

type spelloutRules struct {
	negative  string
	separator string
	integer   func(n uint64) string
	digit     func(d int) string
}

var spelloutSystems = map[string]spelloutRules{
	"spanish": {
		negative:  "menos",
		separator: "coma",
		integer:   func(n uint64) string { return spanishCardinal(n, false) },
		digit:     func(d int) string { return spanishUnderThirty[d] },
	},
	"english": {
		negative:  "minus",
		separator: "point",
		integer:   englishCardinal,
		digit:     func(d int) string { return englishUnderTwenty[d] },
	},
}

// spellCardinal spells value with the named rule set. Fraction digits are
// read one by one after the separator word.
func spellCardinal(system string, value decimal.Decimal) (string, error) {
	rules, ok := spelloutSystems[system]
	if !ok {
		return "", fmt.Errorf("%w: no spellout rules %q", ErrUnsupportedLocale, system)
	}

	abs := value.Abs()
	whole := abs.Truncate(0)
	if whole.Cmp(decimal.NewFromInt(int64(maxSpellout))) >= 0 {
		return "", fmt.Errorf("%w: %s is too large to spell out", ErrInvalidInput, value.String())
	}

	var b strings.Builder
	if value.Sign() < 0 {
		b.WriteString(rules.negative)
		b.WriteByte(' ')
	}
	b.WriteString(rules.integer(uint64(whole.IntPart())))

	if fraction := fractionDigits(abs); fraction != "" {
		b.WriteByte(' ')
		b.WriteString(rules.separator)
		for _, r := range fraction {
			b.WriteByte(' ')
			b.WriteString(rules.digit(int(r - '0')))
		}
	}

	return b.String(), nil
}

// fractionDigits returns the significant fraction digits of a non-negative
// value ("" for integers).
func fractionDigits(abs decimal.Decimal) string {
	text := abs.String()
	idx := strings.IndexByte(text, '.')
	if idx < 0 {
		return ""
	}
	return strings.TrimRight(text[idx+1:], "0")
}

// spanishCardinal spells n in Spanish. With apocope the final "uno" is
// shortened the way it is before a noun ("un", "veintiún", "treinta y un").
func spanishCardinal(n uint64, apocope bool) string {
	if n == 0 {
		return spanishUnderThirty[0]
	}

	const million = 1_000_000
	billions := n / (million * million)
	millions := (n / million) % million
	units := n % million

	parts := make([]string, 0, 3)
	if billions > 0 {
		parts = append(parts, spanishScale(billions, "billón", "billones"))
	}
	if millions > 0 {
		parts = append(parts, spanishScale(millions, "millón", "millones"))
	}
	if units > 0 {
		parts = append(parts, spanishUnderMillion(units, apocope))
	}
	return strings.Join(parts, " ")
}

func spanishScale(count uint64, singular, plural string) string {
	if count == 1 {
		return "un " + singular
	}
	return spanishUnderMillion(count, true) + " " + plural
}

// spanishUnderMillion spells 1..999999
func spanishUnderMillion(n uint64, apocope bool) string {
	thousands := n / 1000
	rest := n % 1000

	parts := make([]string, 0, 2)
	switch {
	case thousands == 1:
		parts = append(parts, "mil")
	case thousands > 1:
		parts = append(parts, spanishUnderThousand(thousands, true)+" mil")
	}
	if rest > 0 {
		parts = append(parts, spanishUnderThousand(rest, apocope))
	}
	return strings.Join(parts, " ")
}

// spanishUnderThousand spells 1..999
func spanishUnderThousand(n uint64, apocope bool) string {
	if n == 100 {
		return "cien"
	}

	hundreds := n / 100
	rest := n % 100

	parts := make([]string, 0, 2)
	if hundreds > 0 {
		parts = append(parts, spanishHundreds[hundreds])
	}
	if rest > 0 {
		parts = append(parts, spanishUnderHundred(rest, apocope))
	}
	return strings.Join(parts, " ")
}

// spanishUnderHundred spells 1..99
func spanishUnderHundred(n uint64, apocope bool) string {
	if n < 30 {
		if apocope {
			switch n {
			case 1:
				return "un"
			case 21:
				return "veintiún"
			}
		}
		return spanishUnderThirty[n]
	}

	word := spanishTens[n/10]
	switch unit := n % 10; {
	case unit == 1 && apocope:
		word += " y un"
	case unit > 0:
		word += " y " + spanishUnderThirty[unit]
	}
	return word
}

// englishCardinal spells n using the short scale
func englishCardinal(n uint64) string {
	if n == 0 {
		return englishUnderTwenty[0]
	}

	var groups []string
	for scale := 0; n > 0; scale++ {
		group := n % 1000
		n /= 1000
		if group == 0 {
			continue
		}
		words := englishUnderThousand(group)
		if englishScales[scale] != "" {
			words += " " + englishScales[scale]
		}
		groups = append(groups, words)
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, " ")
}

func englishUnderThousand(n uint64) string {
	hundreds := n / 100
	rest := n % 100

	parts := make([]string, 0, 2)
	if hundreds > 0 {
		parts = append(parts, englishUnderTwenty[hundreds]+" hundred")
	}
	if rest > 0 {
		if rest < 20 {
			parts = append(parts, englishUnderTwenty[rest])
		} else {
			word := englishTens[rest/10]
			if unit := rest % 10; unit > 0 {
				word += "-" + englishUnderTwenty[unit]
			}
			parts = append(parts, word)
		}
	}
	return strings.Join(parts, " ")
}

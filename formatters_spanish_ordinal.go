package formatters

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ordinalMin = decimal.NewFromInt(1)
	ordinalMax = decimal.NewFromInt(99)
)

// spanishOrdinalUnits holds the ordinal stems for 1-9
var spanishOrdinalUnits = map[int]string{
	1: "Primer",
	2: "Segund",
	3: "Tercer",
	4: "Cuart",
	5: "Quint",
	6: "Sext",
	7: "Séptim",
	8: "Octav",
	9: "Noven",
}

// spanishOrdinalTens holds the ordinal stems for 10-90
var spanishOrdinalTens = map[int]string{
	10: "Décim",
	20: "Vigésim",
	30: "Trigésim",
	40: "Cuadragésim",
	50: "Quincuagésim",
	60: "Sexagésim",
	70: "Septuagésim",
	80: "Octogésim",
	90: "Nonagésim",
}

// spanishOrdinalFirsts overrides the tens decomposition for 1-12.
// 12 keeps the legacy stem "Duoécimo" (standard form: "Duodécim"), so it
// renders as "Duoécimoo" with the masculine suffix.
var spanishOrdinalFirsts = func() map[int]string {
	firsts := make(map[int]string, len(spanishOrdinalUnits)+3)
	for n, stem := range spanishOrdinalUnits {
		firsts[n] = stem
	}
	firsts[10] = "Décim"
	firsts[11] = "Undécim"
	firsts[12] = "Duoécimo"
	return firsts
}()

// SpellSpanishOrdinal spells 1-99 as a Spanish ordinal word, e.g.
// 21 -> "Vigésimo Primero". suffix is appended to every stem: "o" for the
// masculine form, "a" for the feminine one; "" means "o".
func SpellSpanishOrdinal(value any, suffix string) (string, error) {
	number, err := toDecimal(value)
	if err != nil {
		return "", err
	}

	if number.LessThan(ordinalMin) || number.GreaterThan(ordinalMax) {
		return "", fmt.Errorf("%w: the number must be between 1 and 99, got %s", ErrInvalidInput, describeInput(value))
	}
	if !number.Equal(number.Truncate(0)) {
		return "", fmt.Errorf("%w: the number must be a whole number, got %s", ErrInvalidInput, describeInput(value))
	}

	if suffix == "" {
		suffix = SuffixMasculine
	}

	return spanishOrdinal(int(number.IntPart()), suffix), nil
}

func spanishOrdinal(n int, suffix string) string {
	if stem, ok := spanishOrdinalFirsts[n]; ok {
		return stem + suffix
	}

	for tens := 10; tens < 100; tens += 10 {
		if tens == n {
			return spanishOrdinalTens[tens] + suffix
		}
		if tens <= n && n < tens+10 {
			return spanishOrdinalTens[tens] + suffix + " " + spanishOrdinalUnits[n-tens] + suffix
		}
	}

	return ""
}

// SpellSpanishOrdinal is the Formatter counterpart of the package function;
// Spanish ordinal words do not depend on the locale.
func (f *Formatter) SpellSpanishOrdinal(value any, suffix string) (string, error) {
	return SpellSpanishOrdinal(value, suffix)
}

package formatters

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimalAcceptsNumericValues(t *testing.T) {
	t.Parallel()

	d := decimal.RequireFromString("3.75")

	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 5, "5"},
		{"negative int8", int8(-8), "-8"},
		{"int64", int64(1234567890123), "1234567890123"},
		{"uint max", uint64(math.MaxUint64), "18446744073709551615"},
		{"float64", 2.5, "2.5"},
		{"float32", float32(0.5), "0.5"},
		{"decimal", d, "3.75"},
		{"decimal pointer", &d, "3.75"},
		{"json number", json.Number("12.50"), "12.5"},
		{"numeric string", " 7 ", "7"},
		{"exponent string", "1e3", "1000"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := toDecimal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestToDecimalRejectsNonNumericValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
	}{
		{"word", "abc"},
		{"empty string", ""},
		{"nil", nil},
		{"bool", true},
		{"nan", math.NaN()},
		{"infinity", math.Inf(1)},
		{"struct", struct{}{}},
		{"nil decimal pointer", (*decimal.Decimal)(nil)},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := toDecimal(tt.input)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, "must be numeric")
		})
	}
}

// TestHugeNumeralsAreRejected verifies numerals whose expansion would be
// enormous fail fast with a short error.
func TestHugeNumeralsAreRejected(t *testing.T) {
	t.Parallel()

	inputs := []any{
		"1e50000000",
		"1e-50000000",
		"-9.99e2147483647",
		"0e-50000000",
		json.Number("1e41"),
		"0." + strings.Repeat("1", 41),
		strings.Repeat("9", 41),
		decimal.New(1, 1_000_000_000),
		1e300,
	}

	calls := map[string]func(any) (string, error){
		"FormatNumber": func(v any) (string, error) { return FormatNumber(v, "es_CO", StyleDecimal) },
		"SpellNumber":  func(v any) (string, error) { return SpellNumber(v, "es_CO") },
		"FormatCurrency": func(v any) (string, error) {
			return FormatCurrency(v, "es_CO", true)
		},
		"FormatPercent":        func(v any) (string, error) { return FormatPercent(v, "es_CO") },
		"FormatOrdinalNumeral": func(v any) (string, error) { return FormatOrdinalNumeral(v, "es_CO") },
		"SpellSpanishOrdinal":  func(v any) (string, error) { return SpellSpanishOrdinal(v, SuffixMasculine) },
	}

	for _, input := range inputs {
		for name, call := range calls {
			got, err := call(input)
			require.ErrorIs(t, err, ErrInvalidInput, "%s(%.20v)", name, input)
			assert.Empty(t, got)
			assert.Less(t, len(err.Error()), 200, "%s error should not echo the expanded number", name)
		}
	}
}

func TestNumeralBoundsAcceptLimits(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		strings.Repeat("9", maxNumeralDigits),
		"0." + strings.Repeat("1", maxNumeralDigits),
		"1e39",
		"1e-40",
		"0e-40",
	} {
		_, err := toDecimal(input)
		require.NoError(t, err, input)
	}
}

func TestDescribeInputTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 10_000)
	got := describeInput(long)
	assert.Equal(t, "string("+strings.Repeat("x", maxInputEcho)+"...)", got)
	assert.Equal(t, "int(5)", describeInput(5))
	assert.Equal(t, "decimal.Decimal(15e-1)", describeInput(decimal.RequireFromString("1.5")))
}

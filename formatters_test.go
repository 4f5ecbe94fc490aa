package formatters

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumberDecimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		locale string
		input  any
		want   string
	}{
		{"es_CO", 1234.5678, "1.234,568"},
		{"es_CO", 1000, "1.000"},
		{"es_CO", 1000000, "1.000.000"},
		{"es_CO", -1234.5, "-1.234,5"},
		{"es_CO", 2.5, "2,5"},
		{"es", 1000, "1000"},
		{"es", 10000, "10.000"},
		{"es", 1234.5, "1234,5"},
		{"en", 1234567.891, "1,234,567.891"},
		{"en", 1000, "1,000"},
		{"en", 1.0015, "1.002"},
		{"en", 1.0025, "1.002"},
		{"es-MX", 1234.5, "1,234.5"},
		{"es-AR", 1234.5, "1,234.5"},
		{"es-CO", "1234.5", "1.234,5"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%s/%v", tt.locale, tt.input), func(t *testing.T) {
			t.Parallel()
			got, err := FormatNumber(tt.input, tt.locale, StyleDecimal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		locale       string
		input        any
		showDecimals bool
		want         string
	}{
		{"es_CO", 1000, true, "$ 1.000,00"},
		{"es_CO", 1000, false, "$ 1.000"},
		{"es_CO", 1234.567, true, "$ 1.234,57"},
		{"es_CO", 1234.567, false, "$ 1.234"},
		{"es_CO", -2500, true, "-$ 2.500,00"},
		{"en", 1000, true, "$1,000.00"},
		{"en", 1000, false, "$1,000"},
		{"es", 1000, true, "1000,00 €"},
		// the symbol follows the amount, so there is no trailing fraction to strip
		{"es", 1000, false, "1000,00 €"},
		{"es", 12345.5, true, "12.345,50 €"},
		{"es-MX", 99.999, true, "$100.00"},
		{"es-MX", 99.999, false, "$100"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%s/%v/%t", tt.locale, tt.input, tt.showDecimals), func(t *testing.T) {
			t.Parallel()
			got, err := FormatCurrency(tt.input, tt.locale, tt.showDecimals)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrencyUsesRegionalCurrency(t *testing.T) {
	t.Parallel()

	got, err := FormatCurrency(1000, "en-GB", true)
	require.NoError(t, err)
	assert.Contains(t, got, "1,000.00")
	assert.False(t, strings.HasPrefix(got, "$"), "en-GB should not inherit the US dollar sign: %q", got)
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		locale string
		input  any
		want   string
	}{
		{"es_CO", 45, "45 %"},
		{"es_CO", 12.5, "12 %"},
		{"es_CO", 13.5, "14 %"},
		{"es_CO", "7.5", "8 %"},
		{"es_CO", -5, "-5 %"},
		{"es_CO", -0.4, "0 %"},
		{"en", 45, "45%"},
		{"es", 100, "100 %"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%s/%v", tt.locale, tt.input), func(t *testing.T) {
			t.Parallel()
			got, err := FormatPercent(tt.input, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPercentDividesByHundred(t *testing.T) {
	t.Parallel()

	viaPercent, err := FormatPercent(45, "es_CO")
	require.NoError(t, err)

	viaStyle, err := FormatNumber(0.45, "es_CO", StylePercent)
	require.NoError(t, err)

	assert.Equal(t, viaStyle, viaPercent)
}

func TestFormatOrdinalNumeral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		locale string
		input  any
		want   string
	}{
		{"es_CO", 1, "1.º"},
		{"es_CO", 1000, "1.000.º"},
		{"es", 1000, "1000.º"},
		{"en", 1, "1st"},
		{"en", 2, "2nd"},
		{"en", 3, "3rd"},
		{"en", 4, "4th"},
		{"en", 11, "11th"},
		{"en", 12, "12th"},
		{"en", 13, "13th"},
		{"en", 21, "21st"},
		{"en", 112, "112th"},
		{"en", 1001, "1,001st"},
		{"en", -1, "-1st"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%s/%v", tt.locale, tt.input), func(t *testing.T) {
			t.Parallel()
			got, err := FormatOrdinalNumeral(tt.input, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOrdinalNumeralErrors(t *testing.T) {
	t.Parallel()

	_, err := FormatOrdinalNumeral(2.5, "es_CO")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = FormatOrdinalNumeral(2, "fr")
	require.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestFormatNumberErrors(t *testing.T) {
	t.Parallel()

	_, err := FormatNumber("abc", "es_CO", StyleDecimal)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = FormatNumber(1, "not a locale!!", StyleDecimal)
	require.ErrorIs(t, err, ErrUnsupportedLocale)

	_, err = FormatNumber(1, "es_CO", Style(99))
	require.ErrorIs(t, err, ErrUnsupportedStyle)

	_, err = FormatCurrency(true, "es_CO", false)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = FormatPercent(nil, "es_CO")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFormatNumberEmptyLocaleUsesDefault(t *testing.T) {
	t.Parallel()

	got, err := FormatNumber(1000, "", StyleDecimal)
	require.NoError(t, err)
	assert.Equal(t, "1.000", got)
	assert.Equal(t, DefaultLocale, Default().DefaultLocale())
}

func TestFormatNumberFallsBackToXText(t *testing.T) {
	t.Parallel()

	got, err := FormatNumber(1234.5, "fr", StyleDecimal)
	require.NoError(t, err)
	assert.Contains(t, got, "234")
	assert.Contains(t, got, ",5")

	percent, err := FormatPercent(45, "fr")
	require.NoError(t, err)
	assert.Contains(t, percent, "45")
	assert.Contains(t, percent, "%")
}

func TestFormatIsIdempotentAcrossGoroutines(t *testing.T) {
	t.Parallel()

	formatter, err := NewFormatter()
	require.NoError(t, err)

	locales := []string{"es_CO", "es", "en", "es-MX", "es-AR"}
	want := make(map[string]string, len(locales))
	for _, locale := range locales {
		got, err := formatter.Currency(1234567.891, locale, true)
		require.NoError(t, err)
		want[locale] = got
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50*len(locales))
	for i := 0; i < 50; i++ {
		for _, locale := range locales {
			wg.Add(1)
			go func(locale string) {
				defer wg.Done()
				got, err := formatter.Currency(1234567.891, locale, true)
				if err != nil {
					errs <- err
					return
				}
				if got != want[locale] {
					errs <- fmt.Errorf("%s: got %q, want %q", locale, got, want[locale])
				}
			}(locale)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for style, name := range styleNames {
		parsed, err := ParseStyle(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, style, parsed)
		assert.Equal(t, name, style.String())
	}

	_, err := ParseStyle("roman")
	require.ErrorIs(t, err, ErrUnsupportedStyle)
	assert.Equal(t, "Style(42)", Style(42).String())
}

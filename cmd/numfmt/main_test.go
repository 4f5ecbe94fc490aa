package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	formatters "github.com/goliatone/go-formatters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	fs := flag.NewFlagSet("numfmt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg, err := parseFlags(fs, args)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	err = run(cfg, &out)
	return out.String(), err
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"decimal default locale", []string{"1234.5"}, "1.234,5\n"},
		{"currency", []string{"-style", "currency", "1000"}, "$ 1.000\n"},
		{"currency with decimals", []string{"-style", "currency", "-decimals", "1000"}, "$ 1.000,00\n"},
		{"percent", []string{"-style", "percent", "45"}, "45 %\n"},
		{"spellout english", []string{"-locale", "en_US", "-style", "spellout", "21", "100"}, "twenty-one\none hundred\n"},
		{"ordinal", []string{"-locale", "en", "-style", "ordinal", "3"}, "3rd\n"},
		{"spanish ordinal", []string{"-style", "spanish-ordinal", "-suffix", "a", "21"}, "Vigésima Primera\n"},
		{"date", []string{"-style", "date", "2024-01-05"}, "a los 5 días del mes de Enero de 2024\n"},
		{"date spelled", []string{"-style", "date-spelled", "2024-01-05"}, "a los cinco (5) días del mes de Enero de dos mil veinticuatro (2024)\n"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunWithRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("es_CO:\n  currency_rules:\n    symbol: \"COP\"\n"), 0o644))

	got, err := runCLI(t, "-rules", path, "-style", "currency", "2500")
	require.NoError(t, err)
	assert.Equal(t, "COP 2.500\n", got)
}

func TestRunErrors(t *testing.T) {
	_, err := runCLI(t)
	require.Error(t, err)

	_, err = runCLI(t, "-style", "roman", "1")
	require.ErrorIs(t, err, formatters.ErrUnsupportedStyle)

	_, err = runCLI(t, "abc")
	require.ErrorIs(t, err, formatters.ErrInvalidInput)

	_, err = runCLI(t, "-style", "spanish-ordinal", "100")
	require.ErrorIs(t, err, formatters.ErrInvalidInput)

	_, err = runCLI(t, "-style", "date", "05/01/2024")
	require.Error(t, err)

	_, err = runCLI(t, "-locale", "not a locale!!", "1")
	require.ErrorIs(t, err, formatters.ErrUnsupportedLocale)
}

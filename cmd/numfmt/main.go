package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	formatters "github.com/goliatone/go-formatters"
)

type cliConfig struct {
	locale       string
	style        string
	suffix       string
	showDecimals bool
	rules        ruleFiles
	values       []string
}

type ruleFiles struct {
	items []string
}

func (f *ruleFiles) String() string {
	return strings.Join(f.items, ",")
}

func (f *ruleFiles) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "numfmt: %v\n", err)
	os.Exit(1)
}

func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	var cfg cliConfig

	fs.StringVar(&cfg.locale, "locale", formatters.DefaultLocale, "locale code, e.g. es_CO or en-US")
	fs.StringVar(&cfg.style, "style", "decimal", "decimal, spellout, currency, percent, ordinal, spanish-ordinal, date or date-spelled")
	fs.StringVar(&cfg.suffix, "suffix", formatters.SuffixMasculine, "suffix for spanish-ordinal: o (masculine) or a (feminine)")
	fs.BoolVar(&cfg.showDecimals, "decimals", false, "keep the fraction digits of currency output")
	fs.Var(&cfg.rules, "rules", "YAML or JSON formatting rules file. Repeat flag to add more.")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	cfg.values = fs.Args()
	if len(cfg.values) == 0 {
		return cliConfig{}, errors.New("at least one value is required")
	}

	return cfg, nil
}

func run(cfg cliConfig, out io.Writer) error {
	opts := []formatters.Option{formatters.WithDefaultLocale(cfg.locale)}
	if len(cfg.rules.items) > 0 {
		opts = append(opts, formatters.WithRulesFiles(cfg.rules.items...))
	}

	formatter, err := formatters.NewFormatter(opts...)
	if err != nil {
		return err
	}

	for _, value := range cfg.values {
		formatted, err := formatValue(formatter, cfg, value)
		if err != nil {
			return fmt.Errorf("%s: %w", value, err)
		}
		if _, err := fmt.Fprintln(out, formatted); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(formatter *formatters.Formatter, cfg cliConfig, value string) (string, error) {
	switch cfg.style {
	case "currency":
		return formatter.Currency(value, cfg.locale, cfg.showDecimals)
	case "percent":
		return formatter.Percent(value, cfg.locale)
	case "spanish-ordinal":
		return formatter.SpellSpanishOrdinal(value, cfg.suffix)
	case "date", "date-spelled":
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			return "", fmt.Errorf("dates must be YYYY-MM-DD: %w", err)
		}
		if cfg.style == "date" {
			return formatters.FormatSpanishDate(date), nil
		}
		return formatters.FormatSpanishDateSpelled(date)
	default:
		style, err := formatters.ParseStyle(cfg.style)
		if err != nil {
			return "", err
		}
		return formatter.Format(value, cfg.locale, style)
	}
}

package formatters

import "fmt"

// Config captures formatter setup
type Config struct {
	DefaultLocale string
	Resolver      FallbackResolver
	Loader        RulesLoader

	rules map[string]FormattingRules
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}

	if _, err := parseLocale(cfg.DefaultLocale); err != nil {
		return nil, fmt.Errorf("default locale: %w", err)
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when callers pass ""
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback makes locale borrow formatting rules from fallbacks, in order,
// when it has none of its own
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithFormattingRules replaces the rules for a single locale
func WithFormattingRules(locale string, rules FormattingRules) Option {
	return func(c *Config) error {
		if _, err := parseLocale(locale); err != nil {
			return err
		}
		if c.rules == nil {
			c.rules = make(map[string]FormattingRules)
		}
		c.rules[localeKey(locale)] = rules
		return nil
	}
}

// WithRulesLoader reads rules from loader when the formatter is built
func WithRulesLoader(loader RulesLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithRulesFiles loads YAML or JSON rule files layered over the built-in rules
func WithRulesFiles(paths ...string) Option {
	return WithRulesLoader(NewFileRulesLoader(paths...))
}

// BuildFormatter constructs a Formatter from the config. Rules from the loader
// are applied first, explicit WithFormattingRules entries last.
func (c *Config) BuildFormatter() (*Formatter, error) {
	if c == nil {
		return nil, fmt.Errorf("formatters: nil config")
	}

	overrides := make(map[string]FormattingRules)
	if c.Loader != nil {
		loaded, err := c.Loader.Load()
		if err != nil {
			return nil, err
		}
		for locale, rules := range loaded {
			overrides[localeKey(locale)] = rules
		}
	}
	for locale, rules := range c.rules {
		overrides[locale] = rules
	}

	provider := NewFormattingRulesProvider(overrides, c.Resolver)
	return &Formatter{
		defaultLocale: c.DefaultLocale,
		rules:         provider,
		registry:      newFormatterRegistry(provider),
	}, nil
}

package formatters

import (
	"sort"
	"sync"
)

// formatterRegistry lazily builds and caches one localeEngine per canonical
// locale. Engines are immutable once built, so readers never block each other.
type formatterRegistry struct {
	mu            sync.RWMutex
	engines       map[string]*localeEngine
	rulesProvider *FormattingRulesProvider
}

func newFormatterRegistry(rulesProvider *FormattingRulesProvider) *formatterRegistry {
	return &formatterRegistry{
		engines:       make(map[string]*localeEngine),
		rulesProvider: rulesProvider,
	}
}

// engine returns the cached engine for locale, building it on first use
func (r *formatterRegistry) engine(locale string) (*localeEngine, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return nil, err
	}
	key := tag.String()

	r.mu.RLock()
	if cached, ok := r.engines[key]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.engines[key]; ok {
		return cached, nil
	}

	engine := newLocaleEngine(tag, r.rulesProvider)
	r.engines[key] = engine
	return engine, nil
}

// cachedLocales lists the locales that already have an engine
func (r *formatterRegistry) cachedLocales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.engines))
	for locale := range r.engines {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

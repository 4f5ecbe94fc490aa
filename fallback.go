package formatters

import "sync"

// FallbackResolver resolves the locales consulted, in order, when a locale
// has no formatting rules of its own
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver holds explicit fallback chains keyed by canonical locale
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for locale
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	key := localeKey(locale)
	if key == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		value := localeKey(fallback)
		if value == "" || value == key || containsLocale(chain, value) {
			continue
		}
		chain = append(chain, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[key] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	chain := s.chains[localeKey(locale)]
	if len(chain) == 0 {
		return nil
	}
	return append([]string(nil), chain...)
}

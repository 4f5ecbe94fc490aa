package formatters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileRulesLoader reads formatting rule overrides from YAML or JSON files.
//
// A file maps locales to partial FormattingRules, either at the top level or
// under a "formatting_rules" key:
//
//	formatting_rules:
//	  es_CO:
//	    currency_rules:
//	      decimals: 0
//
// Fields absent from a file keep the value inherited from the built-in rules
// (or an earlier file) for the same locale.
type FileRulesLoader struct {
	paths []string
}

func NewFileRulesLoader(paths ...string) *FileRulesLoader {
	return &FileRulesLoader{paths: append([]string(nil), paths...)}
}

// Load returns the built-in rules with every file applied in order
func (l *FileRulesLoader) Load() (map[string]FormattingRules, error) {
	result := make(map[string]FormattingRules, len(formattingRulesData))
	for locale, rules := range formattingRulesData {
		result[locale] = cloneRules(rules)
	}

	if l == nil {
		return result, nil
	}

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load formatting rules: %w", err)
		}
		if err := decodeRulesFile(path, data, result); err != nil {
			return nil, fmt.Errorf("parse formatting rules %s: %w", path, err)
		}
	}

	return result, nil
}

func decodeRulesFile(path string, data []byte, into map[string]FormattingRules) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeRulesJSON(data, into)
	case ".yaml", ".yml":
		return decodeRulesYAML(data, into)
	default:
		return fmt.Errorf("unsupported rules file extension %q", filepath.Ext(path))
	}
}

func decodeRulesJSON(data []byte, into map[string]FormattingRules) error {
	var wrapper struct {
		FormattingRules map[string]json.RawMessage `json:"formatting_rules"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	raw := wrapper.FormattingRules
	if raw == nil {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	for locale, payload := range raw {
		key, base, err := ruleBase(locale, into)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(payload, &base); err != nil {
			return fmt.Errorf("locale %q: %w", locale, err)
		}
		into[key] = base
	}
	return nil
}

func decodeRulesYAML(data []byte, into map[string]FormattingRules) error {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("yaml parse error: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("empty formatting rules yaml")
	}

	if wrapped, ok := raw["formatting_rules"]; ok {
		raw = nil
		if err := wrapped.Decode(&raw); err != nil {
			return fmt.Errorf("yaml parse error: %w", err)
		}
	}

	for locale, node := range raw {
		key, base, err := ruleBase(locale, into)
		if err != nil {
			return err
		}
		if err := node.Decode(&base); err != nil {
			return fmt.Errorf("locale %q: %w", locale, err)
		}
		into[key] = base
	}
	return nil
}

// ruleBase returns the canonical key and the rules a file entry is decoded
// on top of.
func ruleBase(locale string, current map[string]FormattingRules) (string, FormattingRules, error) {
	if _, err := parseLocale(locale); err != nil {
		return "", FormattingRules{}, err
	}
	key := localeKey(locale)
	base := cloneRules(current[key])
	if base.Locale == "" {
		base.Locale = key
	}
	return key, base, nil
}

// cloneRules copies rules so decoding never writes through shared pointers
func cloneRules(rules FormattingRules) FormattingRules {
	if limit := rules.NumberRules.MaxFractions; limit != nil {
		copied := *limit
		rules.NumberRules.MaxFractions = &copied
	}
	return rules
}

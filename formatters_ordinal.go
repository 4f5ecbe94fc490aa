package formatters

import "fmt"

// ordinalSuffix returns the numeral ordinal marker for value under the named
// ordinal system.
func ordinalSuffix(system string, value int64) (string, error) {
	switch system {
	case "spanish":
		return ".º", nil
	case "english":
		return englishOrdinalSuffix(value), nil
	default:
		return "", fmt.Errorf("%w: no ordinal rules %q", ErrUnsupportedLocale, system)
	}
}

func englishOrdinalSuffix(value int64) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	mod100 := abs % 100
	if mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

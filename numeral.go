package formatters

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxNumeralDigits bounds both the integer digits and the fraction
	// digits of an accepted numeral.
	maxNumeralDigits = 40
	// maxInputEcho bounds how much of a rejected input an error repeats.
	maxInputEcho = 64
)

// toDecimal normalizes every numeric representation we accept into a
// decimal.Decimal. Numeric strings are accepted; everything else is
// ErrInvalidInput.
func toDecimal(value any) (decimal.Decimal, error) {
	d, err := decimalOf(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !withinNumeralBounds(d) {
		return decimal.Zero, fmt.Errorf("%w: the number is out of range, got %s", ErrInvalidInput, describeInput(value))
	}
	return d, nil
}

// withinNumeralBounds reports whether d fits maxNumeralDigits on both sides
// of the decimal point. It only looks at the exponent and the coefficient,
// never at the expanded digits.
func withinNumeralBounds(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxNumeralDigits {
		return false
	}
	return d.IsZero() || int64(d.NumDigits())+exp <= maxNumeralDigits
}

func decimalOf(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, notNumeric(value)
		}
		return *v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return fromUint64(uint64(v)), nil
	case uint8:
		return fromUint64(uint64(v)), nil
	case uint16:
		return fromUint64(uint64(v)), nil
	case uint32:
		return fromUint64(uint64(v)), nil
	case uint64:
		return fromUint64(v), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Zero, notNumeric(value)
		}
		return decimal.NewFromFloat32(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, notNumeric(value)
		}
		return decimal.NewFromFloat(v), nil
	case json.Number:
		return parseNumeric(string(v), value)
	case string:
		return parseNumeric(v, value)
	default:
		return decimal.Zero, notNumeric(value)
	}
}

func parseNumeric(raw string, original any) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, notNumeric(original)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, notNumeric(original)
	}
	return d, nil
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

func notNumeric(value any) error {
	return fmt.Errorf("%w: the number must be numeric, got %s", ErrInvalidInput, describeInput(value))
}

// describeInput renders value for error messages, truncated to maxInputEcho
// bytes.
func describeInput(value any) string {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case json.Number:
		text = string(v)
	case decimal.Decimal:
		text = fmt.Sprintf("%se%d", v.Coefficient().String(), v.Exponent())
	case *decimal.Decimal:
		if v != nil {
			text = fmt.Sprintf("%se%d", v.Coefficient().String(), v.Exponent())
		} else {
			text = "<nil>"
		}
	default:
		text = fmt.Sprintf("%v", value)
	}

	if len(text) > maxInputEcho {
		text = strings.ToValidUTF8(text[:maxInputEcho], "") + "..."
	}
	return fmt.Sprintf("%T(%s)", value, text)
}

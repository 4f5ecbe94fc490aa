package formatters

import "errors"

// ErrInvalidInput indicates a value that is not numeric or falls outside the
// domain of the requested formatter.
var ErrInvalidInput = errors.New("formatters: invalid input")

// ErrUnsupportedLocale indicates a locale that cannot be parsed or has no
// rule set for the requested style.
var ErrUnsupportedLocale = errors.New("formatters: unsupported locale")

// ErrUnsupportedStyle marks a Style value the formatter does not know.
var ErrUnsupportedStyle = errors.New("formatters: unsupported style")

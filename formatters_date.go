package formatters

import (
	"fmt"
	"strconv"
	"time"
)

var spanishDocumentMonths = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// FormatSpanishDate renders d the way Spanish legal documents date a
// signature: "a los 5 días del mes de Enero de 2024".
func FormatSpanishDate(d Date) string {
	return "a los " + strconv.Itoa(d.Day()) +
		" días del mes de " + spanishDocumentMonths[d.Month()-1] +
		" de " + strconv.Itoa(d.Year())
}

// FormatSpanishDateSpelled renders the notarial variant with spelled
// quantities: "a los cinco (5) días del mes de Enero de dos mil veinticuatro (2024)".
// The first day of the month reads "al primer (1) día".
func FormatSpanishDateSpelled(d Date) (string, error) {
	day, month, year := d.Day(), d.Month(), d.Year()
	if month < time.January || month > time.December {
		return "", fmt.Errorf("%w: month %d", ErrInvalidInput, int(month))
	}
	if day < 1 {
		return "", fmt.Errorf("%w: day %d", ErrInvalidInput, day)
	}
	if year < 0 {
		return "", fmt.Errorf("%w: year %d", ErrInvalidInput, year)
	}

	var prefix string
	if day == 1 {
		prefix = "al primer (1) día"
	} else {
		prefix = fmt.Sprintf("a los %s (%d) días", spanishCardinal(uint64(day), true), day)
	}

	return fmt.Sprintf("%s del mes de %s de %s (%d)",
		prefix,
		spanishDocumentMonths[month-1],
		spanishCardinal(uint64(year), false),
		year,
	), nil
}

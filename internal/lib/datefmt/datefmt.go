// Package datefmt renders show times for display.
//
// Format keywords follow the listing site's conventions: "full" spells out
// the weekday and month, "medium" is the compact default and "short" is the
// day-first numeric layout used in show listings and confirmations.
package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

const (
	Full   = "full"
	Medium = "medium"
	Short  = "short"
)

const (
	layoutFull   = "Monday January, 2, 2006 at 3:04PM"
	layoutMedium = "Mon 01, 02, 2006 3:04PM"
	layoutShort  = "02/01/2006, 15:04"
)

var ErrEmptyValue = errors.New("empty datetime value")

// Parse accepts RFC 3339 timestamps as well as the looser ISO 8601 forms
// browsers and HTML forms submit ("2019-05-21 21:30:00", "2019-05-21T21:30").
// Values without an offset are read as UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyValue
	}

	dt, err := strfmt.ParseDateTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w", value, err)
	}

	return time.Time(dt), nil
}

// Format parses value and renders it with the layout named by format.
// Unknown or empty format keywords fall back to medium.
func Format(value, format string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}

	return FormatTime(t, format), nil
}

// FormatTime renders t in UTC, the zone offset-less input is read in.
func FormatTime(t time.Time, format string) string {
	return t.UTC().Format(Layout(format))
}

func Layout(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case Full:
		return layoutFull
	case Short:
		return layoutShort
	default:
		return layoutMedium
	}
}

// Keyword normalizes a user-supplied format keyword, using def when the
// keyword is not recognised.
func Keyword(format, def string) string {
	switch k := strings.ToLower(strings.TrimSpace(format)); k {
	case Full, Medium, Short:
		return k
	default:
		return def
	}
}

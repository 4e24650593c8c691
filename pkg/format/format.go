// Package format turns cell values into display strings.
//
// Smart picks a pattern by the value's dynamic type: grouped integers, floats
// with bounded fraction digits, percentages, currency amounts, dates and
// date-times. Number rendering is locale-aware through golang.org/x/text.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrLocale is returned when a locale string cannot be parsed.
var ErrLocale = errors.New("invalid locale")

// Defaults used when Options fields are zero.
const (
	DefaultLocale         = "en"
	DefaultFloatDigits    = 4
	DefaultDateLayout     = time.DateOnly
	DefaultDateTimeLayout = time.DateTime
)

// Digits returns a FloatDigits value.
func Digits(n int) *int { return &n }

// Formatter renders a single non-nil value.
type Formatter interface {
	Format(v any) string
}

// Func adapts a plain function to Formatter.
type Func func(v any) string

func (f Func) Format(v any) string { return f(v) }

// Percent marks a fraction to be rendered as a percentage (0.25 -> 25%).
type Percent float64

// Money is an amount in a specific currency.
type Money struct {
	Amount float64
	Unit   currency.Unit
}

// Options configures Smart.
type Options struct {
	Locale         string
	// FloatDigits caps fraction digits for floats. Nil means DefaultFloatDigits.
	FloatDigits    *int
	DateLayout     string
	DateTimeLayout string
}

// Smart is the type-aware default Formatter.
type Smart struct {
	printer        *message.Printer
	floatDigits    int
	dateLayout     string
	dateTimeLayout string
}

// NewSmart builds a Smart formatter, filling zero options with defaults.
func NewSmart(opts Options) (*Smart, error) {
	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrLocale, locale, err)
	}
	s := &Smart{
		printer:        message.NewPrinter(tag),
		floatDigits:    DefaultFloatDigits,
		dateLayout:     opts.DateLayout,
		dateTimeLayout: opts.DateTimeLayout,
	}
	if opts.FloatDigits != nil && *opts.FloatDigits >= 0 {
		s.floatDigits = *opts.FloatDigits
	}
	if s.dateLayout == "" {
		s.dateLayout = DefaultDateLayout
	}
	if s.dateTimeLayout == "" {
		s.dateTimeLayout = DefaultDateTimeLayout
	}
	return s, nil
}

// Format renders v. Callers handle nil themselves; Smart renders it as "".
func (s *Smart) Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return s.printer.Sprint(number.Decimal(x))
	case int8:
		return s.printer.Sprint(number.Decimal(x))
	case int16:
		return s.printer.Sprint(number.Decimal(x))
	case int32:
		return s.printer.Sprint(number.Decimal(x))
	case int64:
		return s.printer.Sprint(number.Decimal(x))
	case uint:
		return s.printer.Sprint(number.Decimal(x))
	case uint8:
		return s.printer.Sprint(number.Decimal(x))
	case uint16:
		return s.printer.Sprint(number.Decimal(x))
	case uint32:
		return s.printer.Sprint(number.Decimal(x))
	case uint64:
		return s.printer.Sprint(number.Decimal(x))
	case float32:
		return s.float(float64(x))
	case float64:
		return s.float(x)
	case Percent:
		if special, ok := nonFinite(float64(x)); ok {
			return special
		}
		return s.printer.Sprint(number.Percent(float64(x), number.MaxFractionDigits(2)))
	case Money:
		return s.printer.Sprint(currency.Symbol(x.Unit.Amount(x.Amount)))
	case time.Time:
		if isMidnight(x) {
			return x.Format(s.dateLayout)
		}
		return x.Format(s.dateTimeLayout)
	case time.Duration:
		return x.String()
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		return fmt.Sprint(v)
	}
}

func (s *Smart) float(f float64) string {
	if special, ok := nonFinite(f); ok {
		return special
	}
	return s.printer.Sprint(number.Decimal(f, number.MaxFractionDigits(s.floatDigits)))
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "∞", true
	case math.IsInf(f, -1):
		return "-∞", true
	}
	return "", false
}

func isMidnight(t time.Time) bool {
	h, m, sec := t.Clock()
	return h == 0 && m == 0 && sec == 0 && t.Nanosecond() == 0
}

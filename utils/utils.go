package utils

import (
	"math"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

// RoundMoney rounds to cents. Item and total values are kept as plain
// currency units and rounded once, at persistence boundaries.
func RoundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}

// BillingMonth formats the "MM/YY" label used as the payment dedup key.
func BillingMonth(t time.Time) string {
	return t.Format("01/06")
}

// ParseBillingMonth returns the first day of the labeled month.
func ParseBillingMonth(label string) (time.Time, error) {
	return time.Parse("01/06", label)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth is the last billable instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Second)
}

// IsFullMonth reports whether [start, end] spans exactly one calendar
// month, from its first instant to its last.
func IsFullMonth(start, end time.Time) bool {
	if start.Year() != end.Year() || start.Month() != end.Month() {
		return false
	}
	return start.Equal(StartOfMonth(start)) && end.Equal(EndOfMonth(end))
}

// WholeDays counts the days covered by [start, end], rounding the
// trailing end-of-day second up.
func WholeDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// RenderDescription fills {placeholder} tokens in the free-text
// invoice/payment description templates configured per workspace.
func RenderDescription(template string, args map[string]string) string {
	if template == "" {
		return ""
	}
	pairs := make([]string, 0, len(args)*2)
	for key, value := range args {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

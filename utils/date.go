package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

// Jalali month names as printed on bank receipts.
var jalaliMonths = map[string]int{
	"فروردین":  1,
	"اردیبهشت": 2,
	"خرداد":    3,
	"تیر":      4,
	"مرداد":    5,
	"شهریور":   6,
	"مهر":      7,
	"آبان":     8,
	"آذر":      9,
	"دی":       10,
	"بهمن":     11,
	"اسفند":    12,
}

// Numeric 3-part dates: 1402/06/15, 06-15-1402, 8.6.21.
var numericDateRegex = regexp.MustCompile(`\d{1,4}[-/.]\d{1,4}[-/.]\d{1,4}`)

// Spelled receipt dates: "7 شهریور ماه سال 1400".
var spelledDateRegex = regexp.MustCompile(`(\d{1,2})\s+(\S+)\s+ماه\s+سال\s+(\d{4})`)

var dateSeparatorRegex = regexp.MustCompile(`[-/.]`)

// ParseNumericDate parses a slash/dash/dot separated date token.
// The year may come first or last; for day/month ambiguity the day is
// assumed to come before the month, swapping only when that yields an
// impossible month. Jalali years pass through untouched.
func ParseNumericDate(token string) (dto.Date, bool) {
	parts := dateSeparatorRegex.Split(token, -1)
	if len(parts) != 3 {
		return dto.Date{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return dto.Date{}, false
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case len(parts[0]) >= 3:
		// Year first: 1402/06/15
		year, month, day = nums[0], nums[1], nums[2]
		if month > 12 && day <= 12 {
			month, day = day, month
		}
	default:
		// Year last: 15/06/1402 or 15/6/02, day before month.
		day, month, year = nums[0], nums[1], nums[2]
		if month > 12 && day <= 12 {
			month, day = day, month
		}
		if year < 100 {
			year += 2000
		}
	}

	if year <= 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return dto.Date{}, false
	}
	return dto.Date{Year: year, Month: month, Day: day}, true
}

// FindNumericDate returns the first numeric date in the text along with
// the matched substring. A match that fails to parse counts as no date.
func FindNumericDate(text string) (dto.Date, string, bool) {
	raw := numericDateRegex.FindString(text)
	if raw == "" {
		return dto.Date{}, "", false
	}
	date, ok := ParseNumericDate(raw)
	if !ok {
		return dto.Date{}, "", false
	}
	return date, raw, true
}

// FindSpelledDate matches a spelled Jalali date phrase anywhere in the
// text. An unrecognized month name defaults to month 1. The triple is
// kept as-is, no calendar conversion.
func FindSpelledDate(text string) (dto.Date, bool) {
	m := spelledDateRegex.FindStringSubmatch(text)
	if m == nil {
		return dto.Date{}, false
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])

	// OCR sometimes glues a zero-width non-joiner onto the month name.
	monthName := strings.ReplaceAll(m[2], "‌", "")
	month, ok := jalaliMonths[monthName]
	if !ok {
		month = 1
	}

	return dto.Date{Year: year, Month: month, Day: day}, true
}

// ExtractDate finds a date in the text, trying the numeric form first
// and the spelled Jalali form second. When neither matches it returns
// today, so a missing date never blocks extraction.
func ExtractDate(text string, today time.Time) dto.Date {
	if date, _, ok := FindNumericDate(text); ok {
		return date
	}
	if date, ok := FindSpelledDate(text); ok {
		return date
	}
	return dto.DateOf(today)
}

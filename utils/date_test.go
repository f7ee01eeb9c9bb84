package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

func TestParseNumericDateYearFirst(t *testing.T) {
	date, ok := ParseNumericDate("1400/06/08")
	assert.True(t, ok)
	assert.Equal(t, dto.Date{Year: 1400, Month: 6, Day: 8}, date)
}

func TestParseNumericDateYearLastDayFirst(t *testing.T) {
	date, ok := ParseNumericDate("15/06/1402")
	assert.True(t, ok)
	assert.Equal(t, dto.Date{Year: 1402, Month: 6, Day: 15}, date)
}

func TestParseNumericDateSwapsImpossibleMonth(t *testing.T) {
	// 06/15 cannot be day 6 of month 15, so day and month swap.
	date, ok := ParseNumericDate("06/15/1402")
	assert.True(t, ok)
	assert.Equal(t, dto.Date{Year: 1402, Month: 6, Day: 15}, date)
}

func TestParseNumericDateSeparators(t *testing.T) {
	for _, token := range []string{"1400-06-08", "1400.06.08", "1400/06/08"} {
		date, ok := ParseNumericDate(token)
		assert.True(t, ok, token)
		assert.Equal(t, "1400-06-08", date.String())
	}
}

func TestParseNumericDateInvalid(t *testing.T) {
	for _, token := range []string{"1400/13/40", "1400/06", "0/1/2"} {
		_, ok := ParseNumericDate(token)
		assert.False(t, ok, token)
	}
}

func TestFindNumericDateReturnsMatchedSubstring(t *testing.T) {
	date, raw, ok := FindNumericDate("خرید در 1400/06/08 از فروشگاه")
	assert.True(t, ok)
	assert.Equal(t, "1400/06/08", raw)
	assert.Equal(t, "1400-06-08", date.String())
}

func TestFindSpelledDate(t *testing.T) {
	date, ok := FindSpelledDate("انتقال وجه در 7 شهریور ماه سال 1400 انجام شد")
	assert.True(t, ok)
	assert.Equal(t, "1400-06-07", date.String())
}

func TestFindSpelledDateUnknownMonthDefaults(t *testing.T) {
	date, ok := FindSpelledDate("12 نامشخص ماه سال 1401")
	assert.True(t, ok)
	assert.Equal(t, dto.Date{Year: 1401, Month: 1, Day: 12}, date)
}

func TestExtractDateFallsBackToToday(t *testing.T) {
	today := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	date := ExtractDate("خرید نان بدون تاریخ", today)
	assert.Equal(t, dto.Date{Year: 2024, Month: 3, Day: 10}, date)
}

func TestExtractDatePrefersNumericOverSpelled(t *testing.T) {
	text := "1402/01/05 و همچنین 7 شهریور ماه سال 1400"
	date := ExtractDate(text, time.Now())
	assert.Equal(t, "1402-01-05", date.String())
}

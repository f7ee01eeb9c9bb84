package utils

import (
	"strings"
	"time"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

// ParseTextTransaction builds a single record from a free-form
// transaction text ("خرید نان 45,000 ریال 1402/06/15"). A text with no
// recognizable amount yields no record; a missing date falls back to
// today. The full normalized text doubles as the description.
func ParseTextTransaction(text string, today time.Time) (dto.TransactionRecord, bool) {
	normalized := Normalize(text)

	amount, ok := ExtractBestAmount(normalized)
	if !ok {
		return dto.TransactionRecord{}, false
	}

	record := dto.TransactionRecord{
		Date:        ExtractDate(normalized, today),
		Description: strings.TrimSpace(normalized),
		Amount:      amount,
		Type:        ClassifyType(normalized),
		Category:    ClassifyCategory(normalized),
	}
	return record, true
}

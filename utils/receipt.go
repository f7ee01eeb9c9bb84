package utils

import (
	"regexp"
	"strings"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

// Amount tokens on a statement line, optionally with a decimal part.
var lineAmountRegex = regexp.MustCompile(`[\d٬,]+(?:\.\d+)?`)

// ParseReceiptText turns OCR output from a receipt or statement image
// into transaction records.
//
// Pass 1 treats the text as a statement: every line that carries both a
// numeric date and an amount becomes a record. If that finds anything,
// it wins. Pass 2 treats the whole text as a single Persian bank
// receipt: a spelled Jalali date plus a label-anchored amount yield one
// record. Neither pass finding anything is an empty result, not an
// error.
func ParseReceiptText(text string) []dto.TransactionRecord {
	normalized := Normalize(text)

	if records := parseStatementLines(normalized); len(records) > 0 {
		return records
	}
	return parseBankReceipt(normalized)
}

// parseStatementLines is Pass 1: one record per line holding a numeric
// date and at least one amount token. The trailing token is taken as
// the amount, leading tokens tend to be reference numbers.
func parseStatementLines(text string) []dto.TransactionRecord {
	var records []dto.TransactionRecord

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		date, dateRaw, ok := FindNumericDate(line)
		if !ok {
			continue
		}

		tokens := lineAmountRegex.FindAllString(line, -1)
		if len(tokens) == 0 {
			continue
		}
		amountRaw := tokens[len(tokens)-1]
		amount, ok := cleanToken(amountRaw)
		if !ok {
			continue
		}

		desc := strings.ReplaceAll(line, dateRaw, "")
		desc = strings.ReplaceAll(desc, amountRaw, "")
		desc = strings.Trim(desc, " -:/")
		if desc == "" {
			desc = "Transaction"
		}

		records = append(records, dto.TransactionRecord{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Type:        dto.TypeExpense,
		})
	}

	return records
}

// parseBankReceipt is Pass 2: the whole text is one Persian bank
// receipt. Both the spelled date and an amount must be present,
// otherwise nothing is extracted.
func parseBankReceipt(text string) []dto.TransactionRecord {
	date, ok := FindSpelledDate(text)
	if !ok {
		return nil
	}

	amount, ok := ExtractAmountFromLabels(text)
	if !ok {
		return nil
	}

	return []dto.TransactionRecord{{
		Date:        date,
		Description: "Bank receipt",
		Amount:      amount,
		Type:        dto.TypeExpense,
	}}
}

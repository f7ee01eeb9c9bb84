package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Digit runs of this length or longer are account numbers or IBANs,
// never amounts.
const accountNumberLength = 14

// Maximal runs of digits and thousands separators (ASCII comma and the
// Arabic thousands separator).
var amountTokenRegex = regexp.MustCompile(`[\d٬,]+`)

var separatorReplacer = strings.NewReplacer(",", "", "٬", "")

// Amount labels on bank receipts, most specific first. The generic
// "مبلغ" must stay last or it shadows the others.
var amountLabels = []string{
	"مبلغ انتقال",
	"مبلغ تراکنش",
	"مبلغ پايا",
	"مبلغ پایا",
	"مبلغ",
}

var labelAmountRegexes = compileLabelRegexes(amountLabels)

func compileLabelRegexes(labels []string) []*regexp.Regexp {
	regexes := make([]*regexp.Regexp, 0, len(labels))
	for _, label := range labels {
		regexes = append(regexes, regexp.MustCompile(label+`[^\d]*([\d\s٬,]+)`))
	}
	return regexes
}

// cleanToken strips separators and parses the token. Account-length
// runs, unparseable strings and non-positive values are rejected.
func cleanToken(token string) (float64, bool) {
	clean := separatorReplacer.Replace(token)
	if clean == "" {
		return 0, false
	}
	if len(clean) >= accountNumberLength {
		return 0, false
	}
	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || val <= 0 {
		return 0, false
	}
	return val, true
}

// ExtractBestAmount scans the whole text for numeric tokens and returns
// the largest plausible value. OCR noise tends to truncate digits, so
// the largest surviving candidate is the least likely to be a fragment.
// Returns false when no token survives.
func ExtractBestAmount(text string) (float64, bool) {
	tokens := amountTokenRegex.FindAllString(text, -1)

	var candidates []float64
	for _, token := range tokens {
		val, ok := cleanToken(token)
		if !ok {
			continue
		}
		candidates = append(candidates, val)
	}

	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	for _, val := range candidates[1:] {
		if val > best {
			best = val
		}
	}
	return best, true
}

// ExtractAmountFromLabels looks for the amount next to a known receipt
// label ("مبلغ انتقال" and friends). The first label that yields a
// valid value wins; when no label matches, it falls back to
// ExtractBestAmount over the whole text.
func ExtractAmountFromLabels(text string) (float64, bool) {
	for _, re := range labelAmountRegexes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		// The capture class includes whitespace. Only spaces inside the
		// run are OCR spacing noise; a digit run continuing past a line
		// break is a different field glued on, so interior newlines are
		// left in place to fail the parse.
		raw := strings.TrimSpace(strings.ReplaceAll(m[1], " ", ""))

		// OCR often drops the tail of a thousands group, leaving
		// "76,0" where the receipt said "76,000". Repair by
		// multiplying the prefix by 1000.
		if strings.Contains(raw, ",") && strings.HasSuffix(raw, ",0") {
			base := separatorReplacer.Replace(strings.TrimSuffix(raw, ",0"))
			if isDigits(base) {
				if val, err := strconv.ParseFloat(base, 64); err == nil {
					return val * 1000, true
				}
			}
		}

		val, ok := cleanToken(raw)
		if !ok {
			continue
		}
		return val, true
	}

	return ExtractBestAmount(text)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

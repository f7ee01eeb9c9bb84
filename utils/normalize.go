package utils

import "strings"

// Persian digit glyphs mapped one-to-one onto ASCII digits.
var digitReplacer = strings.NewReplacer(
	"۰", "0",
	"۱", "1",
	"۲", "2",
	"۳", "3",
	"۴", "4",
	"۵", "5",
	"۶", "6",
	"۷", "7",
	"۸", "8",
	"۹", "9",
)

// Two spellings of the currency word seen in the wild, unified to the
// standard Persian form. "ريال" uses the Arabic yeh, OCR and copy-paste
// both produce it.
var currencyReplacer = strings.NewReplacer(
	"ريال", "ریال",
	"Rial", "ریال",
)

// Normalize converts Persian digits to ASCII digits and unifies the
// spelling of the currency word. Every other character is left alone.
// Idempotent; empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return currencyReplacer.Replace(digitReplacer.Replace(text))
}

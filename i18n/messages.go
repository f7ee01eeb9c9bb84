package i18n

// User-facing messages in the two supported languages. Keys follow the
// situation they report, handlers pick by language.

const (
	LangFa = "fa"
	LangEn = "en"
)

var supportedLangs = map[string]bool{
	LangFa: true,
	LangEn: true,
}

// Pick returns the requested language when supported, the fallback
// otherwise.
func Pick(requested, fallback string) string {
	if supportedLangs[requested] {
		return requested
	}
	if supportedLangs[fallback] {
		return fallback
	}
	return LangFa
}

var messages = map[string]map[string]string{
	"no_transactions_from_image": {
		LangFa: "هیچ تراکنشی از روی تصویر پیدا نشد.",
		LangEn: "No transactions could be extracted from the image.",
	},
	"text_parse_failed": {
		LangFa: "متوجه نشدم. لطفاً متن تراکنش را واضح‌تر و با مبلغ و تاریخ بفرست.",
		LangEn: "Could not understand. Please send a clearer transaction text with date and amount.",
	},
	"error_file": {
		LangFa: "در پردازش فایل خطایی رخ داد.",
		LangEn: "An error occurred while processing the file.",
	},
	"error_photo": {
		LangFa: "در پردازش تصویر خطایی رخ داد.",
		LangEn: "An error occurred while processing the image.",
	},
}

// T looks up a message by key and language.
func T(key, lang string) string {
	return messages[key][Pick(lang, LangEn)]
}

// Package sms prepares message bodies for gateway transport: HTML cleanup,
// language-specific encoding, and the numeric alphabet indicator some
// gateway protocols require.
package sms

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"unicode/utf16"
)

// Language handles understood by the encoder.
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// Numeric alphabet indicators used by gateway protocols.
const (
	languageCodeDefault = 1
	languageCodeArabic  = 2
)

// sanitizeReplacer strips characters known to break gateway URL parsing.
var sanitizeReplacer = strings.NewReplacer(
	"*", "",
	"[", "",
	"]", "",
	`\`, "",
)

// Sanitize decodes HTML entities and removes characters the gateways cannot
// handle in a query string.
func Sanitize(text string) string {
	return sanitizeReplacer.Replace(html.UnescapeString(text))
}

// Encode converts sanitized text into the transport encoding for the given
// language. Arabic is rendered as fixed-width 16-bit units in uppercase hex;
// everything else is percent-encoded for inclusion in a URL query string.
func Encode(text, language string) string {
	if language == LanguageArabic {
		return encodeUCS2Hex(text)
	}
	return url.QueryEscape(text)
}

// LanguageCode returns the numeric alphabet indicator for a language.
func LanguageCode(language string) int {
	if language == LanguageArabic {
		return languageCodeArabic
	}
	return languageCodeDefault
}

// encodeUCS2Hex renders each UTF-16 code unit as four uppercase hex digits.
func encodeUCS2Hex(text string) string {
	units := utf16.Encode([]rune(text))

	var b strings.Builder
	b.Grow(len(units) * 4)
	for _, u := range units {
		fmt.Fprintf(&b, "%04X", u)
	}
	return b.String()
}

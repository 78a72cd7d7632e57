// Package phone normalizes destination numbers and validates them against
// country restrictions.
package phone

import (
	"fmt"
	"strings"
	"unicode"
)

// Wildcard in an allowed-country list accepts any country.
const Wildcard = "*"

// Country pairs a dial code with the expected number of local digits.
type Country struct {
	DialCode    string
	LocalLength int
}

// countries maps ISO codes to dial-code/local-length pairs. These drive the
// correction heuristics in NormalizeAndValidate.
var countries = map[string]Country{
	"KW": {DialCode: "965", LocalLength: 8},
	"SA": {DialCode: "966", LocalLength: 9},
	"AE": {DialCode: "971", LocalLength: 9},
	"BH": {DialCode: "973", LocalLength: 8},
	"QA": {DialCode: "974", LocalLength: 8},
	"OM": {DialCode: "968", LocalLength: 8},
	"EG": {DialCode: "20", LocalLength: 10},
	"JO": {DialCode: "962", LocalLength: 9},
	"IQ": {DialCode: "964", LocalLength: 10},
	"US": {DialCode: "1", LocalLength: 10},
	"GB": {DialCode: "44", LocalLength: 10},
	"IN": {DialCode: "91", LocalLength: 10},
}

// Unrestricted numbers are accepted when their length is inside this window.
const (
	minUnrestrictedDigits = 10
	maxUnrestrictedDigits = 15
)

// Lookup returns the dial-code entry for an ISO country code.
func Lookup(code string) (Country, bool) {
	c, ok := countries[strings.ToUpper(code)]
	return c, ok
}

// Result is the outcome of NormalizeAndValidate.
type Result struct {
	Number string
	Valid  bool
	Fixed  bool
	Err    string
}

// Normalize converts raw input into a bare digit string: invisible
// formatting marks are stripped, Arabic-Indic digits are mapped to ASCII, a
// leading "+" or international "00" prefix is removed, and every remaining
// non-digit is dropped. No length validation happens here.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '٠' && r <= '٩': // Arabic-Indic digits
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹': // Extended Arabic-Indic digits
			b.WriteRune('0' + (r - '۰'))
		case r == ' ' || unicode.In(r, unicode.Cf):
			// NBSP and direction/formatting marks
		default:
			// everything else is separator noise
		}
	}

	number := b.String()
	for strings.HasPrefix(number, "00") {
		number = number[2:]
	}
	return number
}

// NormalizeAndValidate normalizes raw and checks it against the allowed
// countries. An empty list or a wildcard entry accepts any number whose
// length fits the unrestricted window. Otherwise each allowed country is
// tried in turn: a duplicated dial code is stripped, a matching dial code is
// length-checked, and a bare local number gets the dial code prepended with
// Fixed set.
func NormalizeAndValidate(raw string, allowedCountries []string) Result {
	number := Normalize(raw)

	if number == "" {
		return Result{Number: number, Err: "phone number is empty"}
	}

	if isUnrestricted(allowedCountries) {
		if len(number) < minUnrestrictedDigits || len(number) > maxUnrestrictedDigits {
			return Result{
				Number: number,
				Err: fmt.Sprintf("phone number must be between %d and %d digits, got %d",
					minUnrestrictedDigits, maxUnrestrictedDigits, len(number)),
			}
		}
		return Result{Number: number, Valid: true}
	}

	var lengthErr string
	for _, code := range allowedCountries {
		country, ok := Lookup(code)
		if !ok {
			continue
		}

		candidate := number
		fixed := false

		// Duplicated dial code is a common copy/paste error.
		doubled := country.DialCode + country.DialCode
		if strings.HasPrefix(candidate, doubled) &&
			len(candidate) == len(doubled)+country.LocalLength {
			candidate = candidate[len(country.DialCode):]
			fixed = true
		}

		if strings.HasPrefix(candidate, country.DialCode) {
			if len(candidate) == len(country.DialCode)+country.LocalLength {
				return Result{Number: candidate, Valid: true, Fixed: fixed}
			}
			lengthErr = fmt.Sprintf("number starting with %s must have %d local digits",
				country.DialCode, country.LocalLength)
			continue
		}

		if len(candidate) == country.LocalLength {
			return Result{Number: country.DialCode + candidate, Valid: true, Fixed: true}
		}
	}

	if lengthErr != "" {
		return Result{Number: number, Err: lengthErr}
	}
	return Result{
		Number: number,
		Err:    fmt.Sprintf("number does not match any allowed country (%s)", strings.Join(allowedCountries, ", ")),
	}
}

func isUnrestricted(allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, c := range allowed {
		if c == Wildcard {
			return true
		}
	}
	return false
}

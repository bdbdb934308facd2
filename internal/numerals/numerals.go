package numerals

import (
	"strconv"
	"strings"
)

// digits maps single Chinese numeral characters to their values. 十 is
// included so a bare 十 resolves to ten.
var digits = map[rune]int{
	'零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9, '十': 10,
}

// ToDecimal converts a Chinese numeral token to its decimal string form.
// Coverage is deliberately narrow: single digits and compound tens up to 99,
// which is all that shows up in floor numbers (三樓, 十二樓, 二十五樓).
//
// Tokens already made of ASCII digits come back unchanged with ok=true.
// Tokens the converter does not understand (百 and above, unknown
// characters) pass through verbatim with ok=false, so callers can tell a
// conversion from a fallback. Never errors.
func ToDecimal(token string) (string, bool) {
	if token == "" {
		return token, false
	}
	if isASCIIDigits(token) {
		return token, true
	}

	r := []rune(token)
	if len(r) == 1 {
		if v, ok := digits[r[0]]; ok {
			return strconv.Itoa(v), true
		}
		return token, false
	}

	if !strings.ContainsRune(token, '十') {
		return token, false
	}

	// Compound tens: characters before 十 are the tens part, characters
	// after are the ones part. An empty tens part means exactly ten.
	// Unmapped parts contribute zero.
	parts := strings.Split(token, "十")
	tens, ones := parts[0], ""
	if len(parts) > 1 {
		ones = parts[1]
	}

	n := 10
	if tens != "" {
		n = digitValue(tens) * 10
	}
	if ones != "" {
		n += digitValue(ones)
	}
	return strconv.Itoa(n), true
}

func digitValue(s string) int {
	r := []rune(s)
	if len(r) != 1 {
		return 0
	}
	return digits[r[0]]
}

func isASCIIDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrNoPrice is returned by ParsePrice when the text holds no price.
var ErrNoPrice = errors.New("no price found")

var (
	phonePattern       = regexp.MustCompile(`(?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	emailPattern       = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	contactLinePattern = regexp.MustCompile(`(?im)^.*\b(?:call|text|txt|email|e-mail|dm)\s+(?:me|us)\b.*$`)
	repeatPunctPattern = regexp.MustCompile(`([!?.*~=_-])[!?.*~=_-]+`)
	spaceRunPattern    = regexp.MustCompile(`[ \t]+`)
	blankLinesPattern  = regexp.MustCompile(`\n{3,}`)
	pricePattern       = regexp.MustCompile(`\d[\d,]*(?:\.\d{1,2})?`)
)

// CleanSellerText normalizes a seller's free-text description: contact
// details and "call/text me" lines are removed, emoji and decorative symbols
// are dropped, runs of punctuation collapse to one character, and
// whitespace is tidied.
func CleanSellerText(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = contactLinePattern.ReplaceAllString(s, "")
	s = phonePattern.ReplaceAllString(s, "")
	s = emailPattern.ReplaceAllString(s, "")
	s = strings.Map(dropSymbols, s)
	s = repeatPunctPattern.ReplaceAllString(s, "$1")
	s = spaceRunPattern.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = blankLinesPattern.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

func dropSymbols(r rune) rune {
	switch {
	case r == '\n' || r == '\t':
		return r
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		return r
	case unicode.IsPunct(r):
		return r
	case r == '$' || r == '+' || r == '%' || r == '&' || r == '/' || r == '=':
		return r
	default:
		return -1
	}
}

// ParsePrice extracts the first price from text such as "$1,200" or
// "450 obo". It returns ErrNoPrice rather than a zero default when no
// number is present.
func ParsePrice(raw string) (float64, error) {
	match := pricePattern.FindString(raw)
	if match == "" {
		return 0, fmt.Errorf("%w in %q", ErrNoPrice, raw)
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", match, err)
	}

	return v, nil
}

// Package extract turns noisy listing text into structured signals: the
// normalized condition, seller trust flags, cleaned descriptions and prices.
package extract

import (
	"regexp"
	"strings"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// conditionRule maps a set of phrases to a condition tag.
type conditionRule struct {
	tag     domain.ConditionTag
	phrases []string
}

// conditionRules is scanned in order and the first matching rule wins.
// Qualified phrases come before generic words so "like new" is never
// shadowed by "new", and defects come first so "for parts" beats anything
// else in the same text.
var conditionRules = []conditionRule{
	{domain.ConditionPoor, []string{
		"for parts", "parts only", "not working", "doesn't work", "does not work",
		"won't turn on", "wont turn on", "broken", "cracked screen", "as-is", "as is",
		"water damage", "damaged", "needs repair", "dead",
	}},
	{domain.ConditionLikeNew, []string{
		"like new", "like-new", "barely used", "hardly used", "lightly used",
		"used once", "used twice", "open box", "mint condition", "mint",
		"excellent condition", "pristine",
	}},
	{domain.ConditionNew, []string{
		"brand new", "new in box", "new in package", "nib", "bnib", "factory sealed",
		"sealed", "unopened", "never opened", "never used", "new with tags", "nwt",
	}},
	{domain.ConditionFair, []string{
		"heavy wear", "heavily used", "well used", "scratches", "scratched", "scuffs",
		"scuffed", "dents", "dented", "worn", "fair condition", "cosmetic damage",
		"missing parts", "stains",
	}},
	{domain.ConditionGood, []string{
		"good condition", "great condition", "very good", "works great",
		"works perfectly", "works fine", "fully functional", "gently used",
		"normal wear", "tested", "pre-owned", "preowned", "used",
	}},
	{domain.ConditionNew, []string{"new"}},
}

// compiledConditionRules holds one word-bounded pattern per rule.
var compiledConditionRules = compileConditionRules(conditionRules)

type compiledConditionRule struct {
	tag domain.ConditionTag
	re  *regexp.Regexp
}

func compileConditionRules(rules []conditionRule) []compiledConditionRule {
	out := make([]compiledConditionRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, compiledConditionRule{
			tag: r.tag,
			re:  phrasePattern(r.phrases),
		})
	}
	return out
}

// phrasePattern builds a case-insensitive alternation that only matches
// whole words, so "new" does not match "renewed" and "used" does not match
// "unused". Group 1 is the matched phrase.
func phrasePattern(phrases []string) *regexp.Regexp {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(` +
		strings.Join(quoted, "|") + `)(?:$|[^\p{L}\p{N}])`)
}

var (
	negation    = phrasePattern([]string{"no", "not", "never", "without", "isn't", "wasn't"})
	clauseBreak = regexp.MustCompile(`(?i)[,.;:!?]|(?:^|[^\p{L}\p{N}])but(?:$|[^\p{L}\p{N}])`)
)

// negated reports whether the clause ending at the start of a phrase holds a
// negation, as in "no scratches or dents" or "not broken".
func negated(before string) bool {
	if breaks := clauseBreak.FindAllStringIndex(before, -1); len(breaks) > 0 {
		before = before[breaks[len(breaks)-1][1]:]
	}
	return negation.MatchString(before)
}

// matches reports whether any phrase of the rule occurs in text outside a
// negated clause.
func (r compiledConditionRule) matches(text string) bool {
	for off := 0; off < len(text); {
		loc := r.re.FindStringSubmatchIndex(text[off:])
		if loc == nil {
			return false
		}
		start, end := off+loc[2], off+loc[3]
		if !negated(text[:start]) {
			return true
		}
		off = end
	}
	return false
}

// NormalizeCondition maps free-text condition wording to a ConditionTag.
// Phrases negated within their clause are ignored. Returns ConditionUnknown
// for blank text or when no rule matches.
func NormalizeCondition(raw string) domain.ConditionTag {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.ConditionUnknown
	}

	for _, r := range compiledConditionRules {
		if r.matches(text) {
			return r.tag
		}
	}

	return domain.ConditionUnknown
}

// NormalizeListingCondition normalizes the listing's own condition text and
// falls back to its title and description when that yields nothing.
func NormalizeListingCondition(l *domain.ListingRecord) domain.ConditionTag {
	if c := NormalizeCondition(l.RawCondition); c != domain.ConditionUnknown {
		return c
	}
	return NormalizeCondition(l.Title + " " + l.Description)
}

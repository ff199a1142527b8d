package extract

import (
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// sellerRedFlags are phrases that suggest a risky or difficult transaction.
var sellerRedFlags = []string{
	"cash only", "no returns", "no refunds", "as is", "as-is", "must go today",
	"need gone", "first come first serve", "no holds", "no lowballers",
	"serious buyers only", "pickup only tonight", "zelle only", "gift card",
	"shipping only", "can't test", "cannot test", "untested",
}

// sellerGreenFlags are phrases that suggest a well-documented item.
var sellerGreenFlags = []string{
	"receipt", "original box", "original packaging", "warranty", "tested",
	"smoke free", "smoke-free", "pet free", "pet-free", "serial number",
	"can demo", "happy to demo", "meet at police station", "meet in public",
	"all accessories", "comes with charger", "upgraded",
}

var (
	sellerRedPatterns   = compilePhrases(sellerRedFlags)
	sellerGreenPatterns = compilePhrases(sellerGreenFlags)
)

type phraseMatcher struct {
	phrase  string
	matches func(string) bool
}

func compilePhrases(phrases []string) []phraseMatcher {
	out := make([]phraseMatcher, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, phraseMatcher{
			phrase:  p,
			matches: phrasePattern([]string{p}).MatchString,
		})
	}
	return out
}

// RateSeller scores the trust signals in a listing's title and description.
// Two or more red flags, or red flags outnumbering green ones, yield
// SellerCaution; green flags outnumbering red ones yield SellerTrusted.
// The matched phrases are returned with "-" (red) or "+" (green) prefixes
// in table order.
func RateSeller(title, description string) (domain.SellerRating, []string) {
	text := title + " " + description

	var flags []string
	red, green := 0, 0

	for _, m := range sellerRedPatterns {
		if m.matches(text) {
			red++
			flags = append(flags, "-"+m.phrase)
		}
	}
	for _, m := range sellerGreenPatterns {
		if m.matches(text) {
			green++
			flags = append(flags, "+"+m.phrase)
		}
	}

	switch {
	case red >= 2 || red > green:
		return domain.SellerCaution, flags
	case green > red:
		return domain.SellerTrusted, flags
	default:
		return domain.SellerNeutral, flags
	}
}

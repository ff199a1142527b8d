package ebay

import (
	"strconv"
	"time"

	"github.com/donaldgifford/localflipper/pkg/extract"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// conditionIDs maps eBay's numeric condition IDs to condition tags.
var conditionIDs = map[string]domain.ConditionTag{
	"1000": domain.ConditionNew,     // New
	"1500": domain.ConditionLikeNew, // New other
	"1750": domain.ConditionLikeNew, // New with defects
	"2000": domain.ConditionLikeNew, // Certified refurbished
	"2010": domain.ConditionLikeNew, // Excellent - Refurbished
	"2020": domain.ConditionGood,    // Very Good - Refurbished
	"2030": domain.ConditionGood,    // Good - Refurbished
	"2500": domain.ConditionGood,    // Seller refurbished
	"2750": domain.ConditionLikeNew, // Like New
	"3000": domain.ConditionGood,    // Used
	"4000": domain.ConditionGood,    // Very Good
	"5000": domain.ConditionGood,    // Good
	"6000": domain.ConditionFair,    // Acceptable
	"7000": domain.ConditionPoor,    // For parts or not working
}

// ToComparables converts item summaries into comparable sales. Items that
// have no positive price, or are priced in a currency other than currency
// (when currency is non-empty), are skipped.
func ToComparables(items []ItemSummary, currency string) []domain.ComparableSale {
	sales := make([]domain.ComparableSale, 0, len(items))
	for i := range items {
		sale, ok := toComparable(&items[i], currency)
		if !ok {
			continue
		}
		sales = append(sales, sale)
	}
	return sales
}

func toComparable(item *ItemSummary, currency string) (domain.ComparableSale, bool) {
	if currency != "" && item.Price.Currency != "" && item.Price.Currency != currency {
		return domain.ComparableSale{}, false
	}

	price, err := strconv.ParseFloat(item.Price.Value, 64)
	if err != nil || price <= 0 {
		return domain.ComparableSale{}, false
	}

	return domain.ComparableSale{
		Price:     price,
		SoldAt:    itemDate(item),
		Condition: ConditionFor(item),
	}, true
}

// ConditionFor maps an item's condition to a tag, preferring the numeric
// condition ID and falling back to the condition text.
func ConditionFor(item *ItemSummary) domain.ConditionTag {
	if c, ok := conditionIDs[item.ConditionID]; ok {
		return c
	}
	return extract.NormalizeCondition(item.Condition)
}

// itemDate returns the end date of the item, or its creation date when no
// end date is present. Unparseable dates yield the zero time.
func itemDate(item *ItemSummary) time.Time {
	for _, s := range []string{item.ItemEndDate, item.ItemCreationDate} {
		if s == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

package ebay

// ItemSummary is a single item from the Browse API search response. Only
// the fields used to build comparables are decoded.
type ItemSummary struct {
	ItemID           string      `json:"itemId"`
	Title            string      `json:"title"`
	Price            ItemPrice   `json:"price"`
	ItemWebURL       string      `json:"itemWebUrl"`
	Condition        string      `json:"condition"`
	ConditionID      string      `json:"conditionId"`
	BuyingOptions    []string    `json:"buyingOptions"`
	ItemCreationDate string      `json:"itemCreationDate,omitempty"`
	ItemEndDate      string      `json:"itemEndDate,omitempty"`
	Seller           *ItemSeller `json:"seller,omitempty"`
}

// ItemPrice holds eBay price information.
type ItemPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemSeller holds eBay seller information.
type ItemSeller struct {
	Username           string `json:"username"`
	FeedbackScore      int    `json:"feedbackScore"`
	FeedbackPercentage string `json:"feedbackPercentage"`
}

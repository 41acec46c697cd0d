package domain

// CustomerProfile is loaded once at startup and immutable afterwards.
// Browsing/purchase history and preferred category are ingested as proper
// token slices, never re-parsed from serialized text at scoring time.
type CustomerProfile struct {
	CustomerID        string   `json:"customer_id"`
	Age               int      `json:"age,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	Location          string   `json:"location,omitempty"`
	BrowsingHistory   []string `json:"browsing_history"`
	PurchaseHistory   []string `json:"purchase_history"`
	PreferredCategory string   `json:"preferred_category,omitempty"`
	AvgOrderValue     float64  `json:"avg_order_value"`
	Season            string   `json:"season,omitempty"`
	Holiday           string   `json:"holiday,omitempty"`
	Segment           string   `json:"segment,omitempty"`
}

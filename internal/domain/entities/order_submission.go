package entities

// ResolvedOrderLine is a line item whose price and identity come from the
// catalog snapshot, never from user or extractor input.

type ResolvedOrderLine struct {
	CatalogPath    string `json:"catalogPath"`
	DisplayName    string `json:"displayName"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unitPriceMinor"`
}

func (l ResolvedOrderLine) LineTotalMinor() int64 {
	return int64(l.Quantity) * l.UnitPriceMinor
}

// OrderSubmission is the backend-ready order payload assembled from a
// confirmed candidate and the catalog snapshot.

type OrderSubmission struct {
	GuestName           string              `json:"guestName"`
	GuestPhone          string              `json:"guestPhone"`
	DeliveryAddress     string              `json:"deliveryAddress"`
	PaymentMethod       PaymentGateway      `json:"paymentMethod"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	Lines               []ResolvedOrderLine `json:"lines"`
	PlaceReference      string              `json:"placeReference"`
}

// TotalMinor sums all line totals, for display in the confirmation summary.
func (s OrderSubmission) TotalMinor() int64 {
	var total int64
	for _, l := range s.Lines {
		total += l.LineTotalMinor()
	}
	return total
}

// OrderConfirmation carries the references the backend returns on a
// successful submission.

type OrderConfirmation struct {
	OrderReference   string `json:"orderReference"`
	PaymentReference string `json:"paymentReference,omitempty"`
}

package entities

import "strings"

// PaymentGateway enumerates the payment options the commerce backend accepts.

type PaymentGateway string

const (
	PaymentCashToCourier PaymentGateway = "CASH_TO_COURIER_PAYMENT"
	PaymentMTNMoMo       PaymentGateway = "MTN_MOMO"
	PaymentOrangeMoney   PaymentGateway = "ORANGE_MONEY"
)

// Field identifiers used in OrderCandidate.MissingFields. "all" marks a
// message that carried no ordering intent at all.
const (
	FieldCustomerName    = "customer_name"
	FieldCustomerPhone   = "customer_phone"
	FieldDeliveryAddress = "delivery_address"
	FieldAll             = "all"
)

// ExtractionOutcome tags what one extraction pass produced.

type ExtractionOutcome int

const (
	OutcomeEmpty ExtractionOutcome = iota
	OutcomePartial
	OutcomeComplete
)

// OrderCandidateLine is one extracted line item. ResolvedItemPath is set once
// the line has been matched to a CatalogItem, either by the extractor (the
// menu listing in the prompt carries paths) or by the assembler.

type OrderCandidateLine struct {
	FoodName         string `json:"foodName"`
	Quantity         int    `json:"quantity"`
	ResolvedItemPath string `json:"menuItemPath,omitempty"`
}

// OrderCandidate is the result of one extraction pass over a user message.
// It lives at most one conversational turn in session state, pending either
// clarification or confirmation, and is invalidated after submission or
// cancellation.

type OrderCandidate struct {
	Items               []OrderCandidateLine `json:"items"`
	CustomerName        string               `json:"customer_name,omitempty"`
	CustomerPhone       string               `json:"customer_phone,omitempty"`
	DeliveryAddress     string               `json:"delivery_address,omitempty"`
	PaymentMethod       PaymentGateway       `json:"payment_method,omitempty"`
	SpecialInstructions string               `json:"special_instructions,omitempty"`
	Confidence          float64              `json:"confidence"`
	MissingFields       []string             `json:"missing_fields"`
}

// EmptyCandidate is the degraded result used when no order intent was
// detected or when every extraction strategy failed.
func EmptyCandidate() OrderCandidate {
	return OrderCandidate{
		Items:         []OrderCandidateLine{},
		PaymentMethod: PaymentCashToCourier,
		Confidence:    0,
		MissingFields: []string{FieldAll},
	}
}

// RecomputeMissingFields derives MissingFields from the candidate's own
// fields. It must be called whenever fields are supplemented conversationally;
// a MissingFields list carried across turns is never trusted as-is.
func (c *OrderCandidate) RecomputeMissingFields() {
	if len(c.Items) == 0 {
		c.MissingFields = []string{FieldAll}
		return
	}
	missing := make([]string, 0, 3)
	if strings.TrimSpace(c.CustomerName) == "" {
		missing = append(missing, FieldCustomerName)
	}
	if strings.TrimSpace(c.CustomerPhone) == "" {
		missing = append(missing, FieldCustomerPhone)
	}
	if strings.TrimSpace(c.DeliveryAddress) == "" {
		missing = append(missing, FieldDeliveryAddress)
	}
	c.MissingFields = missing
}

// Outcome classifies the candidate as Empty, Partial or Complete.
func (c OrderCandidate) Outcome() ExtractionOutcome {
	if len(c.Items) == 0 {
		return OutcomeEmpty
	}
	if len(c.MissingFields) > 0 {
		return OutcomePartial
	}
	return OutcomeComplete
}

// MergeCandidates folds a fresh extraction into a pending candidate. New
// non-empty fields overwrite old ones. Line items follow last-extraction-wins:
// if the new pass extracted any items they replace the old set entirely, so
// repeating an item across turns never double-counts it. MissingFields are
// recomputed on the merged result.
func MergeCandidates(base, next OrderCandidate) OrderCandidate {
	merged := base
	if len(next.Items) > 0 {
		merged.Items = next.Items
	}
	if strings.TrimSpace(next.CustomerName) != "" {
		merged.CustomerName = next.CustomerName
	}
	if strings.TrimSpace(next.CustomerPhone) != "" {
		merged.CustomerPhone = next.CustomerPhone
	}
	if strings.TrimSpace(next.DeliveryAddress) != "" {
		merged.DeliveryAddress = next.DeliveryAddress
	}
	if next.PaymentMethod != "" {
		merged.PaymentMethod = next.PaymentMethod
	}
	if strings.TrimSpace(next.SpecialInstructions) != "" {
		merged.SpecialInstructions = next.SpecialInstructions
	}
	if next.Confidence > 0 {
		merged.Confidence = next.Confidence
	}
	merged.RecomputeMissingFields()
	return merged
}

const cameroonCountryCode = "237"

// NormalizePhone canonicalizes a phone number to "+<country><national>" when a
// recognizable Cameroonian prefix is present. Unrecognized input is returned
// trimmed but otherwise untouched.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	hasPlus := strings.HasPrefix(trimmed, "+")
	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case strings.HasPrefix(d, "00"+cameroonCountryCode) && len(d) == 14:
		return "+" + d[2:]
	case strings.HasPrefix(d, cameroonCountryCode) && len(d) == 12:
		return "+" + d
	case !hasPlus && len(d) == 9 && (d[0] == '6' || d[0] == '2'):
		// Bare national number.
		return "+" + cameroonCountryCode + d
	case hasPlus && len(d) >= 8:
		return "+" + d
	default:
		return trimmed
	}
}

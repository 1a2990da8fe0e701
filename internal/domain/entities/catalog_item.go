package entities

// ItemType mirrors the commerce backend's base item type discriminator.

type ItemType string

const (
	ItemTypeMenuItem ItemType = "BASE_ITEM_TYPE_MENU_ITEM"
)

// CatalogItem is one orderable product from the commerce backend catalog.
//
// PriceMinor is the price in currency minor units (XAF has none, so 5000 XAF
// is stored as 5000). A zero price means the backend sent no price for the
// item, which makes it ineligible.

type CatalogItem struct {
	Path        string   `json:"path"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description,omitempty"`
	PriceMinor  int64    `json:"priceMinor"`
	IsAvailable bool     `json:"isAvailable"`
	IsVisible   bool     `json:"isVisible"`
	ItemType    ItemType `json:"itemType"`
}

// Eligible reports whether the item may be matched against or shown to users.
func (i CatalogItem) Eligible() bool {
	return i.IsAvailable && i.IsVisible && i.ItemType == ItemTypeMenuItem && i.PriceMinor > 0
}

// EligibleItems filters a snapshot down to orderable items.
func EligibleItems(items []CatalogItem) []CatalogItem {
	out := make([]CatalogItem, 0, len(items))
	for _, it := range items {
		if it.Eligible() {
			out = append(out, it)
		}
	}
	return out
}

package entities

import "testing"

func TestOrderSubmissionTotals(t *testing.T) {
	sub := OrderSubmission{
		Lines: []ResolvedOrderLine{
			{CatalogPath: "menuItems/ndole", DisplayName: "Ndolé", Quantity: 2, UnitPriceMinor: 3500},
			{CatalogPath: "menuItems/jus", DisplayName: "Jus de bissap", Quantity: 3, UnitPriceMinor: 500},
		},
	}

	if got := sub.Lines[0].LineTotalMinor(); got != 7000 {
		t.Fatalf("expected line total 7000, got %d", got)
	}
	if got := sub.TotalMinor(); got != 8500 {
		t.Fatalf("expected total 8500, got %d", got)
	}
}

func TestCatalogItemEligible(t *testing.T) {
	base := CatalogItem{
		Path:        "menuItems/ndole",
		DisplayName: "Ndolé",
		PriceMinor:  3500,
		IsAvailable: true,
		IsVisible:   true,
		ItemType:    ItemTypeMenuItem,
	}

	cases := []struct {
		name   string
		mutate func(*CatalogItem)
		want   bool
	}{
		{"fully eligible", func(i *CatalogItem) {}, true},
		{"unavailable", func(i *CatalogItem) { i.IsAvailable = false }, false},
		{"hidden", func(i *CatalogItem) { i.IsVisible = false }, false},
		{"not a menu item", func(i *CatalogItem) { i.ItemType = "BASE_ITEM_TYPE_CATEGORY" }, false},
		{"zero price", func(i *CatalogItem) { i.PriceMinor = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := base
			tc.mutate(&it)
			if got := it.Eligible(); got != tc.want {
				t.Fatalf("Eligible() = %v, want %v", got, tc.want)
			}
		})
	}
}

package usecase

import (
	"errors"
	"log"
	"strings"

	"chatorder/internal/domain/entities"
)

var ErrNoResolvableItems = errors.New("no resolvable items")

// OrderAssembler reconciles a candidate's line items against a catalog
// snapshot into a backend-ready OrderSubmission. Prices always come from the
// matched catalog entry, never from the candidate. Lines that cannot be
// resolved are dropped and reported back to the caller; an order where every
// line drops fails with ErrNoResolvableItems.
//
// Deterministic: the same candidate and snapshot always produce the same
// submission.

type OrderAssembler struct{}

func NewOrderAssembler() *OrderAssembler {
	return &OrderAssembler{}
}

// Assemble resolves each line and returns the submission plus the names of
// any dropped (unresolvable) lines.
func (a *OrderAssembler) Assemble(cand entities.OrderCandidate, catalog []entities.CatalogItem, placeRef string) (entities.OrderSubmission, []string, error) {
	byPath := make(map[string]entities.CatalogItem, len(catalog))
	for _, it := range catalog {
		if it.Eligible() {
			byPath[it.Path] = it
		}
	}

	lines := make([]entities.ResolvedOrderLine, 0, len(cand.Items))
	var dropped []string
	for _, line := range cand.Items {
		item, ok := resolveLine(line, byPath, catalog)
		if !ok {
			log.Printf("[order][assembler] dropping unresolvable line food_name=%q path=%q", line.FoodName, line.ResolvedItemPath)
			dropped = append(dropped, line.FoodName)
			continue
		}
		lines = append(lines, entities.ResolvedOrderLine{
			CatalogPath:    item.Path,
			DisplayName:    item.DisplayName,
			Quantity:       line.Quantity,
			UnitPriceMinor: item.PriceMinor,
		})
	}

	if len(lines) == 0 {
		return entities.OrderSubmission{}, dropped, ErrNoResolvableItems
	}

	return entities.OrderSubmission{
		GuestName:           cand.CustomerName,
		GuestPhone:          cand.CustomerPhone,
		DeliveryAddress:     cand.DeliveryAddress,
		PaymentMethod:       cand.PaymentMethod,
		SpecialInstructions: cand.SpecialInstructions,
		Lines:               lines,
		PlaceReference:      placeRef,
	}, dropped, nil
}

func resolveLine(line entities.OrderCandidateLine, byPath map[string]entities.CatalogItem, catalog []entities.CatalogItem) (entities.CatalogItem, bool) {
	if line.ResolvedItemPath != "" {
		if item, ok := byPath[line.ResolvedItemPath]; ok {
			return item, true
		}
	}

	want := normalizeName(line.FoodName)
	if want == "" {
		return entities.CatalogItem{}, false
	}
	for _, it := range catalog {
		if !it.Eligible() {
			continue
		}
		have := normalizeName(it.DisplayName)
		if have == want || strings.Contains(have, want) || strings.Contains(want, have) {
			return it, true
		}
	}
	return entities.CatalogItem{}, false
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

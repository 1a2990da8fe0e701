package interfaces

import (
	"context"

	"chatorder/internal/domain/entities"
)

// ICatalogProvider abstracts the commerce backend's menu listing.
//
// FetchAvailableItems returns the backend's current "available" snapshot for
// a place; eligibility filtering beyond that is the consumers' concern.

type ICatalogProvider interface {
	FetchAvailableItems(ctx context.Context, placeID string) ([]entities.CatalogItem, error)
}

package response

import (
	"time"

	"chatorder/internal/usecase/interfaces"
)

type OrderLogLineResponse struct {
	CatalogPath    string `json:"catalogPath"`
	DisplayName    string `json:"displayName"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unitPriceMinor"`
}

type OrderLogEntryResponse struct {
	ID               string                 `json:"id"`
	GuestPhone       string                 `json:"guestPhone"`
	GuestName        string                 `json:"guestName"`
	PlaceReference   string                 `json:"placeReference"`
	OrderReference   string                 `json:"orderReference"`
	PaymentReference string                 `json:"paymentReference,omitempty"`
	TotalMinor       int64                  `json:"totalMinor"`
	Lines            []OrderLogLineResponse `json:"lines"`
	CreatedAt        time.Time              `json:"createdAt"`
}

func FromOrderLogEntry(e interfaces.OrderLogEntry) OrderLogEntryResponse {
	lines := make([]OrderLogLineResponse, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, OrderLogLineResponse{
			CatalogPath:    l.CatalogPath,
			DisplayName:    l.DisplayName,
			Quantity:       l.Quantity,
			UnitPriceMinor: l.UnitPriceMinor,
		})
	}
	return OrderLogEntryResponse{
		ID:               e.ID,
		GuestPhone:       e.GuestPhone,
		GuestName:        e.GuestName,
		PlaceReference:   e.PlaceReference,
		OrderReference:   e.OrderReference,
		PaymentReference: e.PaymentReference,
		TotalMinor:       e.TotalMinor,
		Lines:            lines,
		CreatedAt:        e.CreatedAt,
	}
}

func FromOrderLogEntries(entries []interfaces.OrderLogEntry) []OrderLogEntryResponse {
	out := make([]OrderLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromOrderLogEntry(e))
	}
	return out
}

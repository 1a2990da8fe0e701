package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatorder/internal/domain/entities"
	"chatorder/internal/usecase/interfaces"
)

func testSubmission() entities.OrderSubmission {
	return entities.OrderSubmission{
		GuestName:       "Jean",
		GuestPhone:      "+237675123456",
		DeliveryAddress: "Elig-Essono",
		PaymentMethod:   entities.PaymentCashToCourier,
		Lines: []entities.ResolvedOrderLine{
			{CatalogPath: "menuItems/ndole", DisplayName: "Ndolé", Quantity: 2, UnitPriceMinor: 3500},
		},
		PlaceReference: "place-1",
	}
}

func TestAPIClient_FetchAvailableItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places/place-1/items" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"path": "menuItems/ndole", "displayName": "Ndolé", "price": 3500, "isAvailable": true, "isVisible": true, "itemType": "BASE_ITEM_TYPE_MENU_ITEM"},
			},
		})
	}))
	defer srv.Close()

	c, err := NewAPIClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := c.FetchAvailableItems(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].PriceMinor != 3500 || !items[0].Eligible() {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestAPIClient_Submit(t *testing.T) {
	t.Run("success sends idempotency key and guest payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/orders" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Idempotency-Key"); got != "675123456-1700000000" {
				t.Fatalf("missing idempotency key, got %q", got)
			}
			var payload createOrderRequest
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("invalid request body: %v", err)
			}
			if !payload.IsGuestCheckout || payload.CreatorSource != "CHAT_BOT_REGULAR" || payload.CurrencyCodeAlpha3 != "XAF" {
				t.Fatalf("unexpected payload: %+v", payload)
			}
			if po, ok := payload.Orders["place-1"]; !ok || po.PlacePath != "places/place-1" || len(po.SelectedItems) != 1 {
				t.Fatalf("unexpected orders block: %+v", payload.Orders)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"orderGroupPath": "orderGroups/og-1", "paymentPath": "payments/p-1"},
			})
		}))
		defer srv.Close()

		c, err := NewAPIClient(srv.URL, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		conf, err := c.Submit(context.Background(), testSubmission(), "675123456-1700000000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conf.OrderReference != "orderGroups/og-1" || conf.PaymentReference != "payments/p-1" {
			t.Fatalf("unexpected confirmation: %+v", conf)
		}
	})

	t.Run("server error classifies as transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c, _ := NewAPIClient(srv.URL, "")
		_, err := c.Submit(context.Background(), testSubmission(), "key")
		if !errors.Is(err, interfaces.ErrSubmissionTransport) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})

	t.Run("backend error field classifies as rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "place closed"})
		}))
		defer srv.Close()

		c, _ := NewAPIClient(srv.URL, "")
		_, err := c.Submit(context.Background(), testSubmission(), "key")
		if !errors.Is(err, interfaces.ErrSubmissionRejected) {
			t.Fatalf("expected rejection error, got %v", err)
		}
	})
}

func TestAPIClient_MockMode(t *testing.T) {
	t.Setenv("COMMERCE_API_MOCK", "1")

	c, err := NewAPIClient("", "")
	if err != nil {
		t.Fatalf("unexpected error in mock mode: %v", err)
	}
	items, err := c.FetchAvailableItems(context.Background(), "anything")
	if err != nil || len(items) == 0 {
		t.Fatalf("expected mock catalog, got %v err=%v", items, err)
	}
	conf, err := c.Submit(context.Background(), testSubmission(), "key")
	if err != nil || conf.OrderReference == "" {
		t.Fatalf("expected mock confirmation, got %+v err=%v", conf, err)
	}
}

package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"chatorder/internal/domain/entities"
	"chatorder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingCommerceBaseURL = errors.New("missing COMMERCE_API_BASE_URL")

const (
	commerceHTTPTimeout = 60 * time.Second
	creatorSource       = "CHAT_BOT_REGULAR"
	currencyCode        = "XAF"
)

// APIClient talks to the commerce backend: it fetches a place's catalog and
// submits guest-checkout orders. One client serves both capability interfaces.
//
// In mock mode (COMMERCE_API_MOCK) no network calls are made: the catalog is
// a fixed local menu and submissions return fabricated references. Useful for
// local runs without a backend.

type APIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	mockMode   bool
}

var _ interfaces.ICatalogProvider = (*APIClient)(nil)
var _ interfaces.IOrderSubmitter = (*APIClient)(nil)

func NewAPIClient(baseURL, apiKey string) (*APIClient, error) {
	if isCommerceMockEnabled() {
		log.Printf("[commerce][client] mock mode enabled")
		return &APIClient{mockMode: true}, nil
	}

	if baseURL == "" {
		log.Printf("[commerce][client] missing COMMERCE_API_BASE_URL")
		return nil, ErrMissingCommerceBaseURL
	}
	log.Printf("[commerce][client] initialized base_url=%s", baseURL)

	return &APIClient{
		httpClient: &http.Client{Timeout: commerceHTTPTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}, nil
}

type catalogItemPayload struct {
	Path        string `json:"path"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"isAvailable"`
	IsVisible   bool   `json:"isVisible"`
	ItemType    string `json:"itemType"`
}

type catalogResponse struct {
	Data  []catalogItemPayload `json:"data"`
	Error string               `json:"error"`
}

func (c *APIClient) FetchAvailableItems(ctx context.Context, placeID string) ([]entities.CatalogItem, error) {
	if c.mockMode {
		return mockCatalog(), nil
	}

	url := fmt.Sprintf("%s/places/%s/items", c.baseURL, placeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[commerce][client] catalog fetch failed place_id=%s err=%v", placeID, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[commerce][client] catalog fetch non-200 place_id=%s status=%d", placeID, resp.StatusCode)
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	var parsed catalogResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("catalog response unmarshal failed: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("catalog fetch rejected: %s", parsed.Error)
	}

	items := make([]entities.CatalogItem, 0, len(parsed.Data))
	for _, p := range parsed.Data {
		items = append(items, entities.CatalogItem{
			Path:        p.Path,
			DisplayName: p.DisplayName,
			Description: p.Description,
			PriceMinor:  p.Price,
			IsAvailable: p.IsAvailable,
			IsVisible:   p.IsVisible,
			ItemType:    entities.ItemType(p.ItemType),
		})
	}
	log.Printf("[commerce][client] catalog fetched place_id=%s items=%d", placeID, len(items))
	return items, nil
}

type selectedItemPayload struct {
	ItemPath string `json:"itemPath"`
	Quantity int    `json:"quantity"`
}

type placeOrderPayload struct {
	SelectedItems []selectedItemPayload `json:"selectedItems"`
	PlacePath     string                `json:"placePath"`
}

type createOrderRequest struct {
	GuestUserNumber     string                       `json:"guestUserNumber"`
	GuestUserName       string                       `json:"guestUserName"`
	SelectedGateWay     string                       `json:"selectedGateWay"`
	CurrencyCodeAlpha3  string                       `json:"currencyCodeAlpha3"`
	CreatorSource       string                       `json:"creatorSource"`
	IsGuestCheckout     bool                         `json:"isGuestCheckout"`
	DeliveryAddress     string                       `json:"deliveryAddress"`
	SpecialInstructions string                       `json:"specialInstructions,omitempty"`
	Orders              map[string]placeOrderPayload `json:"orders"`
}

type createOrderResponse struct {
	Data struct {
		OrderGroupPath string `json:"orderGroupPath"`
		PaymentPath    string `json:"paymentPath"`
	} `json:"data"`
	Error string `json:"error"`
}

func (c *APIClient) Submit(ctx context.Context, sub entities.OrderSubmission, idempotencyKey string) (entities.OrderConfirmation, error) {
	if c.mockMode {
		ref := "orderGroups/" + uuid.NewString()
		log.Printf("[commerce][client] mock submit success order_ref=%s idempotency_key=%s", ref, idempotencyKey)
		return entities.OrderConfirmation{
			OrderReference:   ref,
			PaymentReference: "payments/" + uuid.NewString(),
		}, nil
	}

	selected := make([]selectedItemPayload, 0, len(sub.Lines))
	for _, l := range sub.Lines {
		selected = append(selected, selectedItemPayload{ItemPath: l.CatalogPath, Quantity: l.Quantity})
	}

	payload := createOrderRequest{
		GuestUserNumber:     sub.GuestPhone,
		GuestUserName:       sub.GuestName,
		SelectedGateWay:     string(sub.PaymentMethod),
		CurrencyCodeAlpha3:  currencyCode,
		CreatorSource:       creatorSource,
		IsGuestCheckout:     true,
		DeliveryAddress:     sub.DeliveryAddress,
		SpecialInstructions: sub.SpecialInstructions,
		Orders: map[string]placeOrderPayload{
			sub.PlaceReference: {
				SelectedItems: selected,
				PlacePath:     "places/" + sub.PlaceReference,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.OrderConfirmation{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return entities.OrderConfirmation{}, err
	}
	c.setHeaders(req)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	log.Printf("[commerce][client] submit start place_id=%s lines=%d idempotency_key=%s", sub.PlaceReference, len(sub.Lines), idempotencyKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[commerce][client] submit transport failure err=%v", err)
		return entities.OrderConfirmation{}, errors.Join(interfaces.ErrSubmissionTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.OrderConfirmation{}, errors.Join(interfaces.ErrSubmissionTransport, err)
	}

	// 5xx means the backend may still process the order; the idempotency key
	// makes the retry safe. 4xx is a definitive rejection.
	if resp.StatusCode >= http.StatusInternalServerError {
		log.Printf("[commerce][client] submit server error status=%d", resp.StatusCode)
		return entities.OrderConfirmation{}, fmt.Errorf("%w: status %d", interfaces.ErrSubmissionTransport, resp.StatusCode)
	}

	var parsed createOrderResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return entities.OrderConfirmation{}, fmt.Errorf("%w: response unmarshal failed: %v", interfaces.ErrSubmissionTransport, err)
	}
	if resp.StatusCode != http.StatusOK || parsed.Error != "" {
		msg := parsed.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		log.Printf("[commerce][client] submit rejected status=%d err=%s", resp.StatusCode, msg)
		return entities.OrderConfirmation{}, fmt.Errorf("%w: %s", interfaces.ErrSubmissionRejected, msg)
	}
	if parsed.Data.OrderGroupPath == "" {
		return entities.OrderConfirmation{}, fmt.Errorf("%w: missing order reference in response", interfaces.ErrSubmissionRejected)
	}

	log.Printf("[commerce][client] submit success order_ref=%s", parsed.Data.OrderGroupPath)
	return entities.OrderConfirmation{
		OrderReference:   parsed.Data.OrderGroupPath,
		PaymentReference: parsed.Data.PaymentPath,
	}, nil
}

func (c *APIClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func mockCatalog() []entities.CatalogItem {
	return []entities.CatalogItem{
		{Path: "menuItems/mock-ndole", DisplayName: "Ndolé complet", Description: "Ndolé aux crevettes avec plantain", PriceMinor: 3500, IsAvailable: true, IsVisible: true, ItemType: entities.ItemTypeMenuItem},
		{Path: "menuItems/mock-poulet-dg", DisplayName: "Poulet DG", Description: "Poulet sauté aux légumes et plantain", PriceMinor: 5000, IsAvailable: true, IsVisible: true, ItemType: entities.ItemTypeMenuItem},
		{Path: "menuItems/mock-eru", DisplayName: "Eru", Description: "Eru avec water fufu", PriceMinor: 2500, IsAvailable: true, IsVisible: true, ItemType: entities.ItemTypeMenuItem},
		{Path: "menuItems/mock-poisson", DisplayName: "Poisson braisé", Description: "Poisson braisé avec miondo", PriceMinor: 4000, IsAvailable: true, IsVisible: true, ItemType: entities.ItemTypeMenuItem},
		{Path: "menuItems/mock-jus", DisplayName: "Jus de bissap", Description: "Jus naturel de bissap 50cl", PriceMinor: 500, IsAvailable: true, IsVisible: true, ItemType: entities.ItemTypeMenuItem},
	}
}

func isCommerceMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("COMMERCE_API_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

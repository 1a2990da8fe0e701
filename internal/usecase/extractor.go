package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"chatorder/internal/domain/entities"
	"chatorder/internal/usecase/interfaces"
)

var (
	ErrInference       = errors.New("inference failed")
	ErrMalformedOutput = errors.New("malformed extraction output")
)

// OrderExtractor turns raw user text plus a catalog snapshot into an
// OrderCandidate. The primary strategy runs first; any failure (transport,
// malformed output, validation) triggers the fallback exactly once. If both
// fail the extractor degrades to an empty zero-confidence candidate —
// extraction failure is never fatal to a conversation turn.

type OrderExtractor struct {
	primary  interfaces.IInferenceProvider
	fallback interfaces.IInferenceProvider
	timeout  time.Duration
}

func NewOrderExtractor(primary, fallback interfaces.IInferenceProvider, timeout time.Duration) *OrderExtractor {
	return &OrderExtractor{primary: primary, fallback: fallback, timeout: timeout}
}

func (e *OrderExtractor) Extract(ctx context.Context, text string, catalog []entities.CatalogItem, language string) entities.OrderCandidate {
	prompt := buildExtractionPrompt(text, formatCatalogForPrompt(catalog), language)

	cand, err := e.runStrategy(ctx, e.primary, prompt)
	if err == nil {
		return cand
	}
	log.Printf("[chat][extractor] primary strategy failed, falling back err=%v", err)

	cand, err = e.runStrategy(ctx, e.fallback, prompt)
	if err == nil {
		return cand
	}
	log.Printf("[chat][extractor] fallback strategy failed, degrading to empty candidate err=%v", err)
	return entities.EmptyCandidate()
}

func (e *OrderExtractor) runStrategy(ctx context.Context, provider interfaces.IInferenceProvider, prompt string) (entities.OrderCandidate, error) {
	if provider == nil {
		return entities.OrderCandidate{}, errors.New("extraction provider not configured")
	}

	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	raw, err := provider.Infer(callCtx, prompt)
	if err != nil {
		return entities.OrderCandidate{}, errors.Join(ErrInference, err)
	}
	return parseCandidate(raw)
}

// extractedOrderPayload is the strict shape expected from an extraction
// strategy. Anything that does not unmarshal into it is treated as an
// inference failure so the fallback gets its turn.
type extractedOrderPayload struct {
	Items []struct {
		FoodName     string `json:"foodName"`
		Quantity     int    `json:"quantity"`
		MenuItemPath string `json:"menuItemPath"`
	} `json:"items"`
	CustomerName        string   `json:"customer_name"`
	CustomerPhone       string   `json:"customer_phone"`
	DeliveryAddress     string   `json:"delivery_address"`
	PaymentMethod       string   `json:"payment_method"`
	SpecialInstructions string   `json:"special_instructions"`
	Confidence          *float64 `json:"confidence"`
	MissingFields       []string `json:"missing_fields"`
}

func parseCandidate(raw string) (entities.OrderCandidate, error) {
	text := stripMarkdownFences(raw)
	if text == "" {
		return entities.OrderCandidate{}, ErrMalformedOutput
	}

	var payload extractedOrderPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return entities.OrderCandidate{}, errors.Join(ErrMalformedOutput, err)
	}
	if payload.Confidence == nil || *payload.Confidence < 0 || *payload.Confidence > 1 {
		return entities.OrderCandidate{}, ErrMalformedOutput
	}

	cand := entities.OrderCandidate{
		Items:               make([]entities.OrderCandidateLine, 0, len(payload.Items)),
		CustomerName:        strings.TrimSpace(payload.CustomerName),
		CustomerPhone:       entities.NormalizePhone(payload.CustomerPhone),
		DeliveryAddress:     strings.TrimSpace(payload.DeliveryAddress),
		PaymentMethod:       entities.PaymentCashToCourier,
		SpecialInstructions: strings.TrimSpace(payload.SpecialInstructions),
		Confidence:          *payload.Confidence,
	}

	switch entities.PaymentGateway(payload.PaymentMethod) {
	case entities.PaymentMTNMoMo:
		cand.PaymentMethod = entities.PaymentMTNMoMo
	case entities.PaymentOrangeMoney:
		cand.PaymentMethod = entities.PaymentOrangeMoney
	}

	for _, it := range payload.Items {
		name := strings.TrimSpace(it.FoodName)
		if name == "" || it.Quantity <= 0 {
			return entities.OrderCandidate{}, ErrMalformedOutput
		}
		cand.Items = append(cand.Items, entities.OrderCandidateLine{
			FoodName:         name,
			Quantity:         it.Quantity,
			ResolvedItemPath: strings.TrimSpace(it.MenuItemPath),
		})
	}

	// MissingFields from the model are advisory only.
	cand.RecomputeMissingFields()
	return cand, nil
}

func stripMarkdownFences(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

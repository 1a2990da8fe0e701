package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatorder/internal/domain/entities"
	mock_interfaces "chatorder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const validExtractionJSON = `{
	"items": [{"foodName": "Ndolé", "quantity": 2, "menuItemPath": "menuItems/ndole"}],
	"customer_name": "Jean",
	"customer_phone": "675123456",
	"delivery_address": "Elig-Essono",
	"payment_method": "MTN_MOMO",
	"confidence": 0.9,
	"missing_fields": []
}`

func TestOrderExtractor_Extract(t *testing.T) {
	t.Run("primary success skips fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mock_interfaces.NewMockIInferenceProvider(ctrl)
		fallback := mock_interfaces.NewMockIInferenceProvider(ctrl)
		primary.EXPECT().Infer(gomock.Any(), gomock.Any()).Return(validExtractionJSON, nil)

		e := NewOrderExtractor(primary, fallback, time.Second)
		cand := e.Extract(context.Background(), "je veux 2 ndolé", testCatalog(), "fr")

		if len(cand.Items) != 1 || cand.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items: %v", cand.Items)
		}
		if cand.CustomerPhone != "+237675123456" {
			t.Fatalf("expected normalized phone, got %q", cand.CustomerPhone)
		}
		if cand.PaymentMethod != entities.PaymentMTNMoMo {
			t.Fatalf("expected MTN_MOMO, got %q", cand.PaymentMethod)
		}
		if cand.Outcome() != entities.OutcomeComplete {
			t.Fatalf("expected complete outcome, missing=%v", cand.MissingFields)
		}
	})

	t.Run("primary failure triggers fallback exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mock_interfaces.NewMockIInferenceProvider(ctrl)
		fallback := mock_interfaces.NewMockIInferenceProvider(ctrl)
		primary.EXPECT().Infer(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))
		fallback.EXPECT().Infer(gomock.Any(), gomock.Any()).Return(validExtractionJSON, nil).Times(1)

		e := NewOrderExtractor(primary, fallback, time.Second)
		cand := e.Extract(context.Background(), "je veux 2 ndolé", testCatalog(), "fr")
		if len(cand.Items) != 1 {
			t.Fatalf("expected fallback result, got %v", cand.Items)
		}
	})

	t.Run("malformed primary output counts as failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mock_interfaces.NewMockIInferenceProvider(ctrl)
		fallback := mock_interfaces.NewMockIInferenceProvider(ctrl)
		primary.EXPECT().Infer(gomock.Any(), gomock.Any()).Return("I cannot help with that.", nil)
		fallback.EXPECT().Infer(gomock.Any(), gomock.Any()).Return(validExtractionJSON, nil)

		e := NewOrderExtractor(primary, fallback, time.Second)
		cand := e.Extract(context.Background(), "je veux 2 ndolé", testCatalog(), "fr")
		if len(cand.Items) != 1 {
			t.Fatalf("expected fallback result, got %v", cand.Items)
		}
	})

	t.Run("both strategies failing degrades to empty candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mock_interfaces.NewMockIInferenceProvider(ctrl)
		fallback := mock_interfaces.NewMockIInferenceProvider(ctrl)
		primary.EXPECT().Infer(gomock.Any(), gomock.Any()).Return("", errors.New("down"))
		fallback.EXPECT().Infer(gomock.Any(), gomock.Any()).Return("", errors.New("also down"))

		e := NewOrderExtractor(primary, fallback, time.Second)
		cand := e.Extract(context.Background(), "je veux 2 ndolé", testCatalog(), "fr")
		if cand.Outcome() != entities.OutcomeEmpty || cand.Confidence != 0 {
			t.Fatalf("expected empty degraded candidate, got %+v", cand)
		}
	})

	t.Run("markdown fences are stripped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mock_interfaces.NewMockIInferenceProvider(ctrl)
		primary.EXPECT().Infer(gomock.Any(), gomock.Any()).Return("```json\n"+validExtractionJSON+"\n```", nil)

		e := NewOrderExtractor(primary, nil, time.Second)
		cand := e.Extract(context.Background(), "je veux 2 ndolé", testCatalog(), "fr")
		if len(cand.Items) != 1 {
			t.Fatalf("expected fenced JSON to parse, got %+v", cand)
		}
	})
}

func TestParseCandidate_Validation(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing confidence", `{"items": [], "missing_fields": ["all"]}`},
		{"confidence out of range", `{"items": [], "confidence": 1.5, "missing_fields": ["all"]}`},
		{"zero quantity", `{"items": [{"foodName": "Eru", "quantity": 0}], "confidence": 0.9}`},
		{"empty food name", `{"items": [{"foodName": " ", "quantity": 1}], "confidence": 0.9}`},
		{"not json", `the user wants two ndole`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseCandidate(tc.raw); !errors.Is(err, ErrMalformedOutput) {
				t.Fatalf("expected ErrMalformedOutput, got %v", err)
			}
		})
	}

	t.Run("unknown payment method falls back to cash", func(t *testing.T) {
		cand, err := parseCandidate(`{"items": [{"foodName": "Eru", "quantity": 1}], "payment_method": "BITCOIN", "confidence": 0.7}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cand.PaymentMethod != entities.PaymentCashToCourier {
			t.Fatalf("expected cash default, got %q", cand.PaymentMethod)
		}
	})

	t.Run("advisory missing_fields are recomputed", func(t *testing.T) {
		cand, err := parseCandidate(`{"items": [{"foodName": "Eru", "quantity": 1}], "customer_name": "Jean", "customer_phone": "675123456", "delivery_address": "Bastos", "confidence": 0.9, "missing_fields": ["customer_name"]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cand.MissingFields) != 0 {
			t.Fatalf("expected recomputed empty missing fields, got %v", cand.MissingFields)
		}
	})
}

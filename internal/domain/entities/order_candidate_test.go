package entities

import (
	"reflect"
	"testing"
)

func TestRecomputeMissingFields(t *testing.T) {
	t.Run("no items means all", func(t *testing.T) {
		c := OrderCandidate{CustomerName: "Jean"}
		c.RecomputeMissingFields()
		if !reflect.DeepEqual(c.MissingFields, []string{FieldAll}) {
			t.Fatalf("expected [all], got %v", c.MissingFields)
		}
	})

	t.Run("lists exactly the absent fields", func(t *testing.T) {
		c := OrderCandidate{
			Items:        []OrderCandidateLine{{FoodName: "Eru", Quantity: 1}},
			CustomerName: "Jean",
		}
		c.RecomputeMissingFields()
		want := []string{FieldCustomerPhone, FieldDeliveryAddress}
		if !reflect.DeepEqual(c.MissingFields, want) {
			t.Fatalf("expected %v, got %v", want, c.MissingFields)
		}
	})

	t.Run("whitespace-only fields count as missing", func(t *testing.T) {
		c := OrderCandidate{
			Items:           []OrderCandidateLine{{FoodName: "Eru", Quantity: 1}},
			CustomerName:    "  ",
			CustomerPhone:   "+237675123456",
			DeliveryAddress: "Elig-Essono",
		}
		c.RecomputeMissingFields()
		if !reflect.DeepEqual(c.MissingFields, []string{FieldCustomerName}) {
			t.Fatalf("expected [customer_name], got %v", c.MissingFields)
		}
	})

	t.Run("complete candidate has none", func(t *testing.T) {
		c := OrderCandidate{
			Items:           []OrderCandidateLine{{FoodName: "Eru", Quantity: 1}},
			CustomerName:    "Jean",
			CustomerPhone:   "+237675123456",
			DeliveryAddress: "Elig-Essono",
		}
		c.RecomputeMissingFields()
		if len(c.MissingFields) != 0 {
			t.Fatalf("expected no missing fields, got %v", c.MissingFields)
		}
		if c.Outcome() != OutcomeComplete {
			t.Fatalf("expected OutcomeComplete, got %v", c.Outcome())
		}
	})
}

func TestMergeCandidates(t *testing.T) {
	base := OrderCandidate{
		Items:         []OrderCandidateLine{{FoodName: "Ndolé", Quantity: 2}},
		Confidence:    0.8,
		MissingFields: []string{FieldCustomerName, FieldCustomerPhone, FieldDeliveryAddress},
	}

	t.Run("new fields fill the gaps", func(t *testing.T) {
		next := OrderCandidate{
			CustomerName:    "Jean",
			CustomerPhone:   "+237675123456",
			DeliveryAddress: "Elig-Essono",
		}
		merged := MergeCandidates(base, next)
		if merged.Outcome() != OutcomeComplete {
			t.Fatalf("expected complete merged candidate, missing=%v", merged.MissingFields)
		}
		if len(merged.Items) != 1 || merged.Items[0].FoodName != "Ndolé" {
			t.Fatalf("expected base items preserved, got %v", merged.Items)
		}
	})

	t.Run("new items replace the old set entirely", func(t *testing.T) {
		next := OrderCandidate{
			Items: []OrderCandidateLine{{FoodName: "Ndolé", Quantity: 3}},
		}
		merged := MergeCandidates(base, next)
		if len(merged.Items) != 1 || merged.Items[0].Quantity != 3 {
			t.Fatalf("expected last-extraction-wins on items, got %v", merged.Items)
		}
	})

	t.Run("empty next fields never erase base fields", func(t *testing.T) {
		withName := base
		withName.CustomerName = "Jean"
		merged := MergeCandidates(withName, OrderCandidate{CustomerPhone: "+237675123456"})
		if merged.CustomerName != "Jean" {
			t.Fatalf("expected name preserved, got %q", merged.CustomerName)
		}
	})
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare national mobile", "675123456", "+237675123456"},
		{"national with spaces", "675 123 456", "+237675123456"},
		{"country code no plus", "237675123456", "+237675123456"},
		{"double zero prefix", "00237675123456", "+237675123456"},
		{"already canonical", "+237675123456", "+237675123456"},
		{"foreign with plus", "+33612345678", "+33612345678"},
		{"empty", "   ", ""},
		{"unrecognized stays trimmed", "call me", "call me"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePhone(tc.in); got != tc.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEmptyCandidate(t *testing.T) {
	c := EmptyCandidate()
	if c.Outcome() != OutcomeEmpty {
		t.Fatalf("expected empty outcome, got %v", c.Outcome())
	}
	if c.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", c.Confidence)
	}
	if !reflect.DeepEqual(c.MissingFields, []string{FieldAll}) {
		t.Fatalf("expected [all], got %v", c.MissingFields)
	}
}

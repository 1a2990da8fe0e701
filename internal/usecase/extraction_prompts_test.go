package usecase

import (
	"fmt"
	"strings"
	"testing"

	"chatorder/internal/domain/entities"
)

func TestFormatCatalogForPrompt(t *testing.T) {
	t.Run("renders name, price and path", func(t *testing.T) {
		got := formatCatalogForPrompt(testCatalog())
		want := "Ndolé (3500 XAF) - menuItems/ndole\nEru (2500 XAF) - menuItems/eru"
		if got != want {
			t.Fatalf("unexpected menu rendering:\n%s", got)
		}
	})

	t.Run("skips ineligible items", func(t *testing.T) {
		items := append(testCatalog(), entities.CatalogItem{
			Path: "menuItems/hidden", DisplayName: "Hidden", PriceMinor: 1000,
			IsAvailable: true, IsVisible: false, ItemType: entities.ItemTypeMenuItem,
		})
		if got := formatCatalogForPrompt(items); strings.Contains(got, "Hidden") {
			t.Fatalf("ineligible item leaked into prompt:\n%s", got)
		}
	})

	t.Run("caps the number of listed items", func(t *testing.T) {
		items := make([]entities.CatalogItem, 0, maxMenuItemsInPrompt+10)
		for i := 0; i < maxMenuItemsInPrompt+10; i++ {
			items = append(items, entities.CatalogItem{
				Path:        fmt.Sprintf("menuItems/item-%d", i),
				DisplayName: fmt.Sprintf("Item %d", i),
				PriceMinor:  1000,
				IsAvailable: true, IsVisible: true,
				ItemType: entities.ItemTypeMenuItem,
			})
		}
		got := formatCatalogForPrompt(items)
		if n := len(strings.Split(got, "\n")); n != maxMenuItemsInPrompt {
			t.Fatalf("expected %d lines, got %d", maxMenuItemsInPrompt, n)
		}
	})
}

func TestBuildConversationPrompt_History(t *testing.T) {
	history := []SessionTurn{
		{Role: "user", Text: "turn 1"},
		{Role: "assistant", Text: "turn 2"},
		{Role: "user", Text: "turn 3"},
		{Role: "assistant", Text: "turn 4"},
		{Role: "user", Text: "turn 5"},
	}
	prompt := buildConversationPrompt("bonjour", "menu", "fr", history)

	if strings.Contains(prompt, "turn 1") {
		t.Fatal("expected history window limited to the last 4 turns")
	}
	for _, want := range []string{"turn 2", "turn 3", "turn 4", "turn 5", "CONVERSATION PRÉCÉDENTE"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected %q in prompt", want)
		}
	}
}

func TestBuildExtractionPrompt_Language(t *testing.T) {
	fr := buildExtractionPrompt("je veux un eru", "menu", "fr")
	if !strings.Contains(fr, "RÈGLES CRITIQUES") || !strings.Contains(fr, "je veux un eru") {
		t.Fatal("expected french extraction prompt with user text")
	}
	en := buildExtractionPrompt("one eru please", "menu", "en")
	if !strings.Contains(en, "CRITICAL RULES") || !strings.Contains(en, "one eru please") {
		t.Fatal("expected english extraction prompt with user text")
	}
}

package usecase

import (
	"strings"

	"chatorder/internal/domain/entities"
)

const greetingMaxLen = 10

var greetingTokens = []string{"hi", "hello", "bonjour", "salut", "bonsoir", "hey", "coucou"}

var menuKeywords = []string{
	"menu", "carte", "produit", "qu'est-ce que",
	"what do you have", "what's on the menu", "show me", "voir",
}

var questionKeywords = []string{
	"c'est quoi", "what is", "what's", "comment", "how", "pourquoi",
}

// ClassifyIntent categorizes an inbound message given its extraction result.
// Pure function; first matching rule wins:
//  1. greeting token or very short message -> greeting
//  2. menu keyword -> menu_request
//  3. question keyword -> question
//  4. items present, fields missing -> partial_order
//  5. items present, nothing missing -> complete_order
//  6. otherwise -> chat
func ClassifyIntent(text string, candidate entities.OrderCandidate) entities.Intent {
	msg := strings.ToLower(strings.TrimSpace(text))

	for _, g := range greetingTokens {
		if msg == g {
			return entities.IntentGreeting
		}
	}
	if len(msg) < greetingMaxLen {
		return entities.IntentGreeting
	}

	for _, w := range menuKeywords {
		if strings.Contains(msg, w) {
			return entities.IntentMenuRequest
		}
	}

	for _, w := range questionKeywords {
		if strings.Contains(msg, w) {
			return entities.IntentQuestion
		}
	}

	switch candidate.Outcome() {
	case entities.OutcomePartial:
		return entities.IntentPartialOrder
	case entities.OutcomeComplete:
		return entities.IntentCompleteOrder
	default:
		return entities.IntentChat
	}
}

var frenchHints = []string{"je", "mon", "ma", "veux", "bonjour", "salut", "svp", "livraison"}

// DetectLanguage is the same cheap heuristic the bot has always used: a
// handful of French tokens decide "fr", everything else is "en".
func DetectLanguage(text string) string {
	msg := strings.ToLower(text)
	for _, w := range strings.FieldsFunc(msg, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?' || r == '\n'
	}) {
		for _, hint := range frenchHints {
			if w == hint {
				return "fr"
			}
		}
	}
	return "en"
}

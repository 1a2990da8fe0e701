package usecase

import (
	"fmt"
	"strings"

	"chatorder/internal/domain/entities"
)

// User-facing phrasing lives here, in the session's language. Internal
// components return typed failures; only the orchestrator turns them into
// text.

var fieldLabels = map[string]map[string]string{
	"fr": {
		entities.FieldCustomerName:    "votre nom",
		entities.FieldCustomerPhone:   "votre numéro de téléphone",
		entities.FieldDeliveryAddress: "votre adresse de livraison",
	},
	"en": {
		entities.FieldCustomerName:    "your name",
		entities.FieldCustomerPhone:   "your phone number",
		entities.FieldDeliveryAddress: "your delivery address",
	},
}

func msgMissingFields(language string, fields []string) string {
	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		if label, ok := fieldLabels[language][f]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, f)
		}
	}
	joined := strings.Join(labels, ", ")
	if language == "fr" {
		return fmt.Sprintf("Il me manque: %s. Pouvez-vous me les donner ?", joined)
	}
	return fmt.Sprintf("I still need: %s. Can you provide them?", joined)
}

func msgConfirmSummary(language string, sub entities.OrderSubmission, dropped []string) string {
	var items strings.Builder
	for _, l := range sub.Lines {
		fmt.Fprintf(&items, "• %dx %s (%d XAF)\n", l.Quantity, l.DisplayName, l.LineTotalMinor())
	}

	droppedNote := ""
	if len(dropped) > 0 {
		if language == "fr" {
			droppedNote = fmt.Sprintf("\n⚠️ Non disponibles, retirés: %s\n", strings.Join(dropped, ", "))
		} else {
			droppedNote = fmt.Sprintf("\n⚠️ Unavailable, removed: %s\n", strings.Join(dropped, ", "))
		}
	}

	if language == "fr" {
		return fmt.Sprintf(
			"📋 Récapitulatif:\n\n%s%s\n👤 %s\n📞 %s\n📍 %s\n💰 Total: %d XAF\n💳 Paiement: %s\n\nConfirmer la commande ?",
			items.String(), droppedNote, sub.GuestName, sub.GuestPhone, sub.DeliveryAddress, sub.TotalMinor(), paymentLabel(language, sub.PaymentMethod))
	}
	return fmt.Sprintf(
		"📋 Summary:\n\n%s%s\n👤 %s\n📞 %s\n📍 %s\n💰 Total: %d XAF\n💳 Payment: %s\n\nConfirm order?",
		items.String(), droppedNote, sub.GuestName, sub.GuestPhone, sub.DeliveryAddress, sub.TotalMinor(), paymentLabel(language, sub.PaymentMethod))
}

func paymentLabel(language string, method entities.PaymentGateway) string {
	switch method {
	case entities.PaymentMTNMoMo:
		return "MTN Mobile Money"
	case entities.PaymentOrangeMoney:
		return "Orange Money"
	default:
		if language == "fr" {
			return "À la livraison"
		}
		return "Cash on delivery"
	}
}

func confirmChoices(language string) []entities.ReplyChoice {
	if language == "fr" {
		return []entities.ReplyChoice{
			{Label: "✅ Confirmer", Action: "confirm"},
			{Label: "❌ Annuler", Action: "cancel"},
		}
	}
	return []entities.ReplyChoice{
		{Label: "✅ Confirm", Action: "confirm"},
		{Label: "❌ Cancel", Action: "cancel"},
	}
}

func msgOrderCreated(language string, conf entities.OrderConfirmation) string {
	if language == "fr" {
		return fmt.Sprintf("✅ Commande créée !\n\n📦 Numéro: %s\n\nMerci ! Votre commande arrive bientôt.", conf.OrderReference)
	}
	return fmt.Sprintf("✅ Order created!\n\n📦 Number: %s\n\nThank you! Your order is on the way.", conf.OrderReference)
}

func msgCancelled(language string) string {
	if language == "fr" {
		return "Commande annulée."
	}
	return "Order cancelled."
}

func msgOrderExpired(language string) string {
	if language == "fr" {
		return "Votre commande a expiré. Veuillez recommencer."
	}
	return "Your order expired. Please start again."
}

func msgResolutionFailed(language string) string {
	if language == "fr" {
		return "❌ Aucun de ces articles n'est disponible actuellement. Veuillez recommencer votre commande."
	}
	return "❌ None of these items are available right now. Please start your order again."
}

func msgSubmissionRetryable(language string) string {
	if language == "fr" {
		return "❌ Erreur lors de la création de la commande. Veuillez réessayer en confirmant à nouveau."
	}
	return "❌ Error creating your order. Please try confirming again."
}

func msgSubmissionRejected(language, detail string) string {
	if language == "fr" {
		return fmt.Sprintf("❌ La commande a été refusée par le service: %s. Veuillez recommencer.", detail)
	}
	return fmt.Sprintf("❌ The order was rejected by the service: %s. Please start again.", detail)
}

func msgMenuUnavailable(language string) string {
	if language == "fr" {
		return "Désolé, le menu est indisponible pour le moment. Réessayez dans quelques minutes."
	}
	return "Sorry, the menu is unavailable right now. Please try again in a few minutes."
}

func msgConversationFallback(language string) string {
	if language == "fr" {
		return "Désolé, je peux vous aider à commander. Que voulez-vous manger aujourd'hui ? 😊"
	}
	return "Sorry, I can help you order. What would you like to eat today? 😊"
}

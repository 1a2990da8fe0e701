package entities

// Intent is the conversational category of one inbound message.

type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentMenuRequest   Intent = "menu_request"
	IntentQuestion      Intent = "question"
	IntentPartialOrder  Intent = "partial_order"
	IntentCompleteOrder Intent = "complete_order"
	IntentChat          Intent = "chat"
)

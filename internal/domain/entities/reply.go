package entities

// ReplyChoice is a button the chat transport renders under a reply.

type ReplyChoice struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Reply is one outbound message for a user, with optional choices.

type Reply struct {
	Text    string        `json:"text"`
	Choices []ReplyChoice `json:"choices,omitempty"`
}

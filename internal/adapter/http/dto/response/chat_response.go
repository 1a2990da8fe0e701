package response

import "chatorder/internal/domain/entities"

type ChoiceResponse struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

type ChatReplyResponse struct {
	Text    string           `json:"text"`
	Choices []ChoiceResponse `json:"choices,omitempty"`
}

func FromReply(r entities.Reply) ChatReplyResponse {
	out := ChatReplyResponse{Text: r.Text}
	for _, c := range r.Choices {
		out.Choices = append(out.Choices, ChoiceResponse{Label: c.Label, Action: c.Action})
	}
	return out
}

package dto

// SendMessageRequest carries one customer utterance.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ChatMessage is one rendered conversation turn. Bubble is the formatted
// time shown inside the bubble; Separator is the date label to show above
// this message when it opens a new day, empty otherwise.
type ChatMessage struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Time      string `json:"time"`
	Bubble    string `json:"bubble"`
	Separator string `json:"separator,omitempty"`
}

// SendMessageResponse reports whether the message was accepted and whether
// a bot reply is pending.
type SendMessageResponse struct {
	Accepted bool `json:"accepted"`
	Typing   bool `json:"typing"`
}

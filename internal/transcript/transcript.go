package transcript

import "time"

// Event is one recorded chat exchange.
type Event struct {
	Time             time.Time `json:"time"`
	SessionID        string    `json:"session_id"`
	Query            string    `json:"query"`
	Reply            string    `json:"reply"`
	Model            string    `json:"model,omitempty"`
	PromptTokens     int       `json:"prompt_tokens,omitempty"`
	CompletionTokens int       `json:"completion_tokens,omitempty"`
	TotalTokens      int       `json:"total_tokens,omitempty"`
}

type Recorder interface {
	AppendExchange(event Event) error
	LoadExchanges() ([]Event, error)
}

package dto

// SendChatRequest is the public chat entry point. CallerId is optional; an
// empty or unknown id resolves to a guest caller.
type SendChatRequest struct {
	Query    string `json:"query" validate:"required"`
	CallerId string `json:"caller_id,omitempty"`
}

type SendChatResponse struct {
	Reply      string   `json:"reply"`
	Role       string   `json:"role"`
	Categories []string `json:"categories,omitempty"`
	Blocked    bool     `json:"blocked,omitempty"`
	Fallback   bool     `json:"fallback,omitempty"`
}

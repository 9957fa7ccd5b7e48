package chat

// Reply is the consumed portion of the backend's send-message response.
type Reply struct {
	BotResponse    string `json:"bot_response"`
	TriggerCapture bool   `json:"trigger_capture,omitempty"`
	TriggerReason  string `json:"trigger_reason,omitempty"`
	Category       string `json:"category,omitempty"`
	DirectFAQUsed  bool   `json:"direct_faq_used,omitempty"`
}

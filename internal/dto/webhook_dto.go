package dto

// LINE webhook payload. Only the fields the handler reads are declared;
// everything else in the platform payload is ignored on unmarshal.

type WebhookRequest struct {
	Destination string         `json:"destination"`
	Events      []WebhookEvent `json:"events"`
}

type WebhookEvent struct {
	Type            string                 `json:"type"`
	WebhookEventId  string                 `json:"webhookEventId"`
	Timestamp       int64                  `json:"timestamp"`
	ReplyToken      string                 `json:"replyToken"`
	Source          WebhookSource          `json:"source"`
	Message         WebhookMessage         `json:"message"`
	DeliveryContext WebhookDeliveryContext `json:"deliveryContext"`
}

type WebhookSource struct {
	Type   string `json:"type"`
	UserId string `json:"userId"`
}

type WebhookMessage struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

type WebhookDeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

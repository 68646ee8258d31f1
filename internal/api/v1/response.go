package v1

type WebhookResponse struct {
	Status string `json:"status"`
	Parsed bool   `json:"parsed"`
}

// Package webhookdto chứa DTO cho domain webhook.
package webhookdto

// WebhookLogCreateInput tạo mới webhook log.
type WebhookLogCreateInput struct {
	Source    string `json:"source" validate:"required"`
	EventID   string `json:"eventId,omitempty"`
	EventType string `json:"eventType" validate:"required"`
	RawBody   string `json:"rawBody,omitempty"`
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// WebhookLogUpdateInput cập nhật trạng thái xử lý của webhook log.
type WebhookLogUpdateInput struct {
	Processed    *bool   `json:"processed,omitempty"`
	ProcessError *string `json:"processError,omitempty"`
}

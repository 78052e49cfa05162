// Package models - WebhookLog thuộc domain webhook (webhook_logs).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog lưu log của tất cả webhook nhận được để debug và đối soát.
type WebhookLog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== SOURCE INFO =====
	Source    string `json:"source" bson:"source" index:"single:1"` // Nguồn webhook, hiện tại: "stripe"
	EventID   string `json:"eventId,omitempty" bson:"eventId,omitempty" index:"single:1"`
	EventType string `json:"eventType" bson:"eventType" index:"single:1"` // vd: checkout.session.completed

	// ===== REQUEST INFO =====
	RequestHeaders map[string]string `json:"requestHeaders,omitempty" bson:"requestHeaders,omitempty"`
	RawBody        string            `json:"rawBody,omitempty" bson:"rawBody,omitempty"`

	// ===== PROCESSING INFO =====
	Processed    bool   `json:"processed" bson:"processed" index:"single:1"`
	ProcessError string `json:"processError,omitempty" bson:"processError,omitempty"`
	ProcessedAt  int64  `json:"processedAt,omitempty" bson:"processedAt,omitempty"`

	// ===== METADATA =====
	IPAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`

	// ===== TIMESTAMPS =====
	ReceivedAt int64 `json:"receivedAt" bson:"receivedAt" index:"single:-1"`
	CreatedAt  int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64 `json:"updatedAt" bson:"updatedAt"`
}

// WebhookLogPaginateResult kết quả phân trang WebhookLog.
type WebhookLogPaginateResult struct {
	Page      int64        `json:"page" bson:"page"`
	Limit     int64        `json:"limit" bson:"limit"`
	ItemCount int64        `json:"itemCount" bson:"itemCount"`
	Items     []WebhookLog `json:"items" bson:"items"`
}

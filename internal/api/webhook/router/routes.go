// Package router đăng ký các route thuộc domain Webhook: Stripe webhook (public), WebhookLog (read-only).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "design_commerce/internal/api/router"
	webhookhdl "design_commerce/internal/api/webhook/handler"
)

// Register đăng ký tất cả route webhook lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	stripeWebhookHandler, err := webhookhdl.NewStripeWebhookHandler()
	if err != nil {
		return fmt.Errorf("create stripe webhook handler: %w", err)
	}
	// Stripe gọi trực tiếp, xác thực bằng chữ ký nên không qua auth middleware
	v1.Post("/webhook/stripe", stripeWebhookHandler.HandleStripeWebhook)

	webhookLogHandler, err := webhookhdl.NewWebhookLogHandler()
	if err != nil {
		return fmt.Errorf("create webhook log handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/webhook-log", webhookLogHandler, apirouter.ReadOnlyConfig)

	return nil
}

// Package webhookhdl - handler webhook Stripe (checkout.session.completed).
package webhookhdl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	basehdl "design_commerce/internal/api/base/handler"
	ordersvc "design_commerce/internal/api/order/service"
	webhookmodels "design_commerce/internal/api/webhook/models"
	webhooksvc "design_commerce/internal/api/webhook/service"
	"design_commerce/internal/common"
	"design_commerce/internal/global"
	"design_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
	stripe "github.com/stripe/stripe-go/v76"
	stripewebhook "github.com/stripe/stripe-go/v76/webhook"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StripeWebhookHandler xử lý các webhook từ Stripe
type StripeWebhookHandler struct {
	orderService      *ordersvc.OrderService
	webhookLogService *webhooksvc.WebhookLogService
}

// NewStripeWebhookHandler tạo mới StripeWebhookHandler
func NewStripeWebhookHandler() (*StripeWebhookHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	return &StripeWebhookHandler{
		orderService:      orderService,
		webhookLogService: webhookLogService,
	}, nil
}

// HandleStripeWebhook xác thực chữ ký rồi xử lý event từ Stripe
func (h *StripeWebhookHandler) HandleStripeWebhook(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()
		rawBody := c.Body()
		ctx := c.Context()

		event, verifyErr := stripewebhook.ConstructEvent(rawBody, c.Get("Stripe-Signature"), global.ServerConfig.StripeWebhookSecret)

		webhookLog, logErr := h.saveWebhookLog(ctx, c, event, string(rawBody), verifyErr)
		if logErr != nil {
			log.WithError(logErr).Warn("🔔 [STRIPE WEBHOOK] Không thể lưu webhook log")
		}

		if verifyErr != nil {
			log.WithError(verifyErr).Warn("🔔 [STRIPE WEBHOOK] Chữ ký không hợp lệ, từ chối webhook")
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodePaymentWebhook, "message": common.ErrWebhookSignature.Error(), "status": "error",
			})
			return nil
		}

		var processErr error
		switch event.Type {
		case "checkout.session.completed":
			processErr = h.handleCheckoutCompleted(ctx, event)
			if processErr == nil {
				logger.LogPayment("checkout_completed", c, map[string]interface{}{"event_id": event.ID})
			}
		default:
			log.WithField("eventType", event.Type).Warn("🔔 [STRIPE WEBHOOK] Event type chưa được xử lý")
		}

		if webhookLog != nil {
			errorMsg := ""
			if processErr != nil {
				errorMsg = processErr.Error()
			}
			_ = h.webhookLogService.UpdateProcessedStatus(ctx, webhookLog.ID, processErr == nil, errorMsg)
		}
		if processErr != nil {
			log.WithError(processErr).WithField("eventType", event.Type).Error("🔔 [STRIPE WEBHOOK] Lỗi khi xử lý webhook")
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Webhook đã được nhận và lưu log", "status": "success",
		})
		return nil
	})
}

// handleCheckoutCompleted đánh dấu đơn đã thanh toán theo session vừa hoàn tất.
func (h *StripeWebhookHandler) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("không đọc được checkout session từ event: %v", err)
	}

	orderIDHex := session.Metadata["orderId"]
	if orderIDHex == "" {
		return fmt.Errorf("session không có metadata orderId")
	}
	orderID, err := primitive.ObjectIDFromHex(orderIDHex)
	if err != nil {
		return fmt.Errorf("orderId trong metadata không hợp lệ: %v", err)
	}

	var customerID, phone, address string
	if session.CustomerDetails != nil {
		customerID = session.CustomerDetails.Email
		phone = session.CustomerDetails.Phone
		if session.CustomerDetails.Address != nil {
			address = joinAddressComponents(session.CustomerDetails.Address)
		}
	}

	_, err = h.orderService.MarkPaid(ctx, orderID, customerID, phone, address)
	return err
}

// joinAddressComponents ghép địa chỉ Stripe thành một dòng, bỏ qua thành phần rỗng.
func joinAddressComponents(addr *stripe.Address) string {
	components := []string{addr.Line1, addr.Line2, addr.City, addr.State, addr.PostalCode, addr.Country}
	parts := make([]string, 0, len(components))
	for _, comp := range components {
		if comp != "" {
			parts = append(parts, comp)
		}
	}
	return strings.Join(parts, ", ")
}

func (h *StripeWebhookHandler) saveWebhookLog(ctx context.Context, c fiber.Ctx, event stripe.Event, rawBody string, verifyErr error) (*webhookmodels.WebhookLog, error) {
	now := time.Now().UnixMilli()
	requestHeaders := make(map[string]string)
	c.Request().Header.VisitAll(func(key, value []byte) {
		requestHeaders[string(key)] = string(value)
	})
	webhookLog := webhookmodels.WebhookLog{
		Source:         "stripe",
		EventID:        event.ID,
		EventType:      string(event.Type),
		RequestHeaders: requestHeaders,
		RawBody:        rawBody,
		Processed:      false,
		ProcessError: func() string {
			if verifyErr != nil {
				return fmt.Sprintf("Signature error: %v", verifyErr)
			}
			return ""
		}(),
		IPAddress: c.IP(), UserAgent: c.Get("User-Agent"), ReceivedAt: now, CreatedAt: now, UpdatedAt: now,
	}
	return h.webhookLogService.CreateWebhookLog(ctx, webhookLog)
}

package webhookhdl

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"design_commerce/config"
	basesvc "design_commerce/internal/api/base/service"
	webhookmodels "design_commerce/internal/api/webhook/models"
	webhooksvc "design_commerce/internal/api/webhook/service"
	"design_commerce/internal/common"
	"design_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
	stripe "github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

func TestJoinAddressComponents(t *testing.T) {
	addr := &stripe.Address{
		Line1:      "123 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62704",
		Country:    "US",
	}
	got := joinAddressComponents(addr)
	want := "123 Main St, Springfield, IL, 62704, US"
	if got != want {
		t.Errorf("joinAddressComponents = %q, muốn %q (Line2 rỗng phải bị bỏ qua)", got, want)
	}
}

func TestJoinAddressComponents_AllEmpty(t *testing.T) {
	if got := joinAddressComponents(&stripe.Address{}); got != "" {
		t.Errorf("địa chỉ rỗng phải trả về chuỗi rỗng, nhận %q", got)
	}
}

// newTestWebhookLogService tạo WebhookLogService trên client Mongo không kết nối.
// Thao tác ghi fail nhanh bằng server selection timeout ngắn, handler phải chịu
// được việc không lưu được log mà vẫn trả response đúng.
func newTestWebhookLogService(t *testing.T) *webhooksvc.WebhookLogService {
	t.Helper()
	client, err := mongo.Connect(context.Background(), mongoopts.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatalf("tạo mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	coll := client.Database("design_commerce_test").Collection("webhook_logs")
	return &webhooksvc.WebhookLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[webhookmodels.WebhookLog](coll),
	}
}

func newStripeWebhookTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.ServerConfig = &config.Configuration{StripeWebhookSecret: "whsec_test_secret"}
	handler := &StripeWebhookHandler{
		webhookLogService: newTestWebhookLogService(t),
	}
	app := fiber.New()
	app.Post("/api/v1/webhook/stripe", handler.HandleStripeWebhook)
	return app
}

func TestHandleStripeWebhook_BadSignatureRejectedWith400(t *testing.T) {
	app := newStripeWebhookTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/webhook/stripe", strings.NewReader(`{"id":"evt_1","type":"checkout.session.completed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", "t=12345,v1=deadbeef")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != common.StatusBadRequest {
		t.Errorf("status = %d, muốn %d khi chữ ký không hợp lệ", resp.StatusCode, common.StatusBadRequest)
	}
}

func TestHandleStripeWebhook_MissingSignatureRejectedWith400(t *testing.T) {
	app := newStripeWebhookTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/webhook/stripe", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != common.StatusBadRequest {
		t.Errorf("status = %d, muốn %d khi thiếu header Stripe-Signature", resp.StatusCode, common.StatusBadRequest)
	}
}

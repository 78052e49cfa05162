// Package orderhdl - handler đơn hàng, bao gồm checkout storefront công khai.
package orderhdl

import (
	"fmt"
	"time"

	basehdl "design_commerce/internal/api/base/handler"
	orderdto "design_commerce/internal/api/order/dto"
	ordermodels "design_commerce/internal/api/order/models"
	ordersvc "design_commerce/internal/api/order/service"
	"design_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý checkout và truy vấn đơn hàng của store.
type OrderHandler struct {
	*basehdl.BaseHandler[ordermodels.Order, orderdto.CheckoutInput, orderdto.CheckoutInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo OrderHandler mới.
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrderService: %w", err)
	}
	return &OrderHandler{
		BaseHandler:  basehdl.NewBaseHandler[ordermodels.Order, orderdto.CheckoutInput, orderdto.CheckoutInput](orderService),
		orderService: orderService,
	}, nil
}

// parseDateParam nhận ISO-8601 đầy đủ hoặc dạng ngày yyyy-mm-dd.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Ngày không hợp lệ, cần ISO-8601", common.StatusBadRequest, err)
	}
	return &t, nil
}

// HandleCheckout tạo đơn chưa thanh toán và phiên thanh toán Stripe từ giỏ hàng.
// POST /storefront/:storeId/checkout
func (h *OrderHandler) HandleCheckout(c fiber.Ctx) error {
	storeID, err := primitive.ObjectIDFromHex(c.Params("storeId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "storeId không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	var input orderdto.CheckoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.Checkout(c.Context(), storeID, &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandlePaidOrders trả về đơn đã thanh toán của store đang làm việc.
// GET /order/paid?from=&to=
func (h *OrderHandler) HandlePaidOrders(c fiber.Ctx) error {
	storeID := h.GetActiveStoreID(c)
	if storeID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Chưa chọn store làm việc", common.StatusBadRequest, nil))
		return nil
	}
	var query orderdto.PaidOrderQuery
	if err := h.ParseRequestQuery(c, &query); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	from, err := parseDateParam(query.From)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	to, err := parseDateParam(query.To)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	orders, err := h.orderService.ListPaidOrders(c.Context(), *storeID, from, to)
	h.HandleResponse(c, orders, err)
	return nil
}

// Package analyticshdl - handler cho các báo cáo phân tích của store.
package analyticshdl

import (
	"fmt"

	analyticssvc "design_commerce/internal/api/analytics/service"
	"design_commerce/internal/api/middleware"
	"design_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsHandler xử lý các route analytics, đọc store từ context.
type AnalyticsHandler struct {
	analyticsService *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler tạo AnalyticsHandler mới.
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	analyticsService, err := analyticssvc.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("tạo AnalyticsService: %w", err)
	}
	return &AnalyticsHandler{analyticsService: analyticsService}, nil
}

// activeStoreID lấy store đang làm việc từ context, lỗi 400 nếu chưa chọn.
func (h *AnalyticsHandler) activeStoreID(c fiber.Ctx) (primitive.ObjectID, error) {
	storeIDStr, ok := c.Locals("store_id").(string)
	if !ok || storeIDStr == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "Chưa chọn store làm việc", common.StatusBadRequest, nil)
	}
	storeID, err := primitive.ObjectIDFromHex(storeIDStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Store ID không hợp lệ", common.StatusBadRequest, err)
	}
	return storeID, nil
}

// respond trả envelope thống nhất của ứng dụng.
func (h *AnalyticsHandler) respond(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return
	}
	middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleCustomerSegmentation phân khúc khách hàng RFM.
// GET /analytics/customer-segmentation
func (h *AnalyticsHandler) HandleCustomerSegmentation(c fiber.Ctx) error {
	storeID, err := h.activeStoreID(c)
	if err != nil {
		h.respond(c, nil, err)
		return nil
	}
	result, err := h.analyticsService.CustomerSegmentation(c.Context(), storeID)
	h.respond(c, result, err)
	return nil
}

// HandleProductPerformance doanh thu theo sản phẩm.
// GET /analytics/product-performance
func (h *AnalyticsHandler) HandleProductPerformance(c fiber.Ctx) error {
	storeID, err := h.activeStoreID(c)
	if err != nil {
		h.respond(c, nil, err)
		return nil
	}
	result, err := h.analyticsService.ProductPerformance(c.Context(), storeID)
	h.respond(c, result, err)
	return nil
}

// HandleSalesByCountry doanh thu theo quốc gia đoán từ địa chỉ giao hàng.
// GET /analytics/sales-by-country
func (h *AnalyticsHandler) HandleSalesByCountry(c fiber.Ctx) error {
	storeID, err := h.activeStoreID(c)
	if err != nil {
		h.respond(c, nil, err)
		return nil
	}
	result, err := h.analyticsService.CountrySales(c.Context(), storeID)
	h.respond(c, result, err)
	return nil
}

// Package cataloghdl - handler các thực thể catalog.
package cataloghdl

import (
	"fmt"

	catalogdto "design_commerce/internal/api/catalog/dto"
	catalogmodels "design_commerce/internal/api/catalog/models"
	catalogsvc "design_commerce/internal/api/catalog/service"
	basehdl "design_commerce/internal/api/base/handler"
	"design_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreHandler xử lý CRUD cửa hàng.
type StoreHandler struct {
	*basehdl.BaseHandler[catalogmodels.Store, catalogdto.StoreCreateInput, catalogdto.StoreUpdateInput]
	storeService *catalogsvc.StoreService
}

// NewStoreHandler tạo StoreHandler mới.
func NewStoreHandler() (*StoreHandler, error) {
	storeService, err := catalogsvc.NewStoreService()
	if err != nil {
		return nil, fmt.Errorf("tạo StoreService: %w", err)
	}
	return &StoreHandler{
		BaseHandler:  basehdl.NewBaseHandler[catalogmodels.Store, catalogdto.StoreCreateInput, catalogdto.StoreUpdateInput](storeService),
		storeService: storeService,
	}, nil
}

// HandleCreateStore tạo store mới thuộc sở hữu của user đang đăng nhập.
// Không dùng InsertOne của BaseHandler vì UserID được gán từ context, không từ body.
func (h *StoreHandler) HandleCreateStore(c fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	var input catalogdto.StoreCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	store := catalogmodels.Store{
		UserID: userID,
		Name:   input.Name,
	}
	created, err := h.storeService.InsertOne(c.Context(), store)
	h.HandleResponse(c, created, err)
	return nil
}

// HandleListMyStores trả về danh sách store của user đang đăng nhập.
func (h *StoreHandler) HandleListMyStores(c fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	stores, err := h.storeService.FindByUser(c.Context(), userID)
	h.HandleResponse(c, stores, err)
	return nil
}

// HandleUpdateStore cập nhật store, yêu cầu user sở hữu store.
func (h *StoreHandler) HandleUpdateStore(c fiber.Ctx) error {
	storeID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	if err := h.ValidateUserOwnsStore(c, storeID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	return h.UpdateById(c)
}

// HandleDeleteStore xóa store, yêu cầu user sở hữu store.
// Relationship tags trên model chặn xóa khi store còn sản phẩm, danh mục hoặc billboard.
func (h *StoreHandler) HandleDeleteStore(c fiber.Ctx) error {
	storeID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	if err := h.ValidateUserOwnsStore(c, storeID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	return h.DeleteById(c)
}

// BillboardHandler xử lý CRUD billboard.
type BillboardHandler struct {
	*basehdl.BaseHandler[catalogmodels.Billboard, catalogdto.BillboardCreateInput, catalogdto.BillboardUpdateInput]
}

// NewBillboardHandler tạo BillboardHandler mới.
func NewBillboardHandler() (*BillboardHandler, error) {
	svc, err := catalogsvc.NewBillboardService()
	if err != nil {
		return nil, fmt.Errorf("tạo BillboardService: %w", err)
	}
	return &BillboardHandler{
		BaseHandler: basehdl.NewBaseHandler[catalogmodels.Billboard, catalogdto.BillboardCreateInput, catalogdto.BillboardUpdateInput](svc),
	}, nil
}

// CategoryHandler xử lý CRUD danh mục.
type CategoryHandler struct {
	*basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo CategoryHandler mới.
func NewCategoryHandler() (*CategoryHandler, error) {
	svc, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	return &CategoryHandler{
		BaseHandler: basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](svc),
	}, nil
}

// SizeHandler xử lý CRUD kích thước.
type SizeHandler struct {
	*basehdl.BaseHandler[catalogmodels.Size, catalogdto.SizeCreateInput, catalogdto.SizeUpdateInput]
}

// NewSizeHandler tạo SizeHandler mới.
func NewSizeHandler() (*SizeHandler, error) {
	svc, err := catalogsvc.NewSizeService()
	if err != nil {
		return nil, fmt.Errorf("tạo SizeService: %w", err)
	}
	return &SizeHandler{
		BaseHandler: basehdl.NewBaseHandler[catalogmodels.Size, catalogdto.SizeCreateInput, catalogdto.SizeUpdateInput](svc),
	}, nil
}

// ColorHandler xử lý CRUD màu sắc.
type ColorHandler struct {
	*basehdl.BaseHandler[catalogmodels.Color, catalogdto.ColorCreateInput, catalogdto.ColorUpdateInput]
}

// NewColorHandler tạo ColorHandler mới.
func NewColorHandler() (*ColorHandler, error) {
	svc, err := catalogsvc.NewColorService()
	if err != nil {
		return nil, fmt.Errorf("tạo ColorService: %w", err)
	}
	return &ColorHandler{
		BaseHandler: basehdl.NewBaseHandler[catalogmodels.Color, catalogdto.ColorCreateInput, catalogdto.ColorUpdateInput](svc),
	}, nil
}

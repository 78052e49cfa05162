// Package cataloghdl - handler sản phẩm (products), bao gồm storefront công khai.
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

// ProductHandler xử lý CRUD sản phẩm và các route storefront.
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService),
		productService: productService,
	}, nil
}

// HandleStorefrontProducts trả về sản phẩm công khai của store (không cần auth).
// GET /storefront/:storeId/products?categoryId=&sizeId=&colorId=&isFeatured=
func (h *ProductHandler) HandleStorefrontProducts(c fiber.Ctx) error {
	storeID, err := primitive.ObjectIDFromHex(c.Params("storeId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "storeId không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	var query catalogdto.StorefrontProductQuery
	if err := h.ParseRequestQuery(c, &query); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	products, err := h.productService.FindStorefront(c.Context(), storeID, &query)
	h.HandleResponse(c, products, err)
	return nil
}

// HandleStorefrontProductDetail trả về chi tiết một sản phẩm công khai.
// GET /storefront/:storeId/products/:id
func (h *ProductHandler) HandleStorefrontProductDetail(c fiber.Ctx) error {
	storeID, err := primitive.ObjectIDFromHex(c.Params("storeId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "storeId không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "id không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	product, err := h.productService.FindOneById(c.Context(), productID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if product.StoreID != storeID || product.IsArchived {
		h.HandleResponse(c, nil, common.ErrNotFound)
		return nil
	}
	h.HandleResponse(c, product, nil)
	return nil
}

// HandleCreateFromDesign tạo sản phẩm từ design chia sẻ trên marketplace.
// POST /product/from-design
func (h *ProductHandler) HandleCreateFromDesign(c fiber.Ctx) error {
	storeID := h.GetActiveStoreID(c)
	if storeID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Chưa chọn store làm việc", common.StatusBadRequest, nil))
		return nil
	}
	var input catalogdto.CreateFromDesignInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.CreateFromDesign(c.Context(), *storeID, &input)
	h.HandleResponse(c, product, err)
	return nil
}

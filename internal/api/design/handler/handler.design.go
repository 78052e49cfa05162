// Package designhdl - handler design và marketplace.
package designhdl

import (
	"fmt"

	basehdl "design_commerce/internal/api/base/handler"
	designdto "design_commerce/internal/api/design/dto"
	designmodels "design_commerce/internal/api/design/models"
	designsvc "design_commerce/internal/api/design/service"
	"design_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DesignHandler xử lý design người dùng lưu, chia sẻ và đánh giá.
type DesignHandler struct {
	*basehdl.BaseHandler[designmodels.Design, designdto.DesignCreateInput, designdto.DesignUpdateInput]
	designService *designsvc.DesignService
}

// NewDesignHandler tạo DesignHandler mới.
func NewDesignHandler() (*DesignHandler, error) {
	designService, err := designsvc.NewDesignService()
	if err != nil {
		return nil, fmt.Errorf("tạo DesignService: %w", err)
	}
	return &DesignHandler{
		BaseHandler:   basehdl.NewBaseHandler[designmodels.Design, designdto.DesignCreateInput, designdto.DesignUpdateInput](designService),
		designService: designService,
	}, nil
}

// currentUserID lấy user ID đã xác thực từ context.
func (h *DesignHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return userID, nil
}

// designIDFromParams lấy design ID từ URL params.
func (h *DesignHandler) designIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	designID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err)
	}
	return designID, nil
}

// HandleCreateDesign lưu design mới cho user đang đăng nhập.
func (h *DesignHandler) HandleCreateDesign(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input designdto.DesignCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	design, err := h.designService.CreateDesign(c.Context(), userID, &input)
	h.HandleResponse(c, design, err)
	return nil
}

// HandleListMyDesigns trả về danh sách design của user đang đăng nhập.
func (h *DesignHandler) HandleListMyDesigns(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	designs, err := h.designService.FindByUser(c.Context(), userID)
	h.HandleResponse(c, designs, err)
	return nil
}

// HandleUpdateDesign cập nhật design, chỉ chủ sở hữu.
func (h *DesignHandler) HandleUpdateDesign(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	designID, err := h.designIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input designdto.DesignUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	design, err := h.designService.UpdateDesign(c.Context(), designID, userID, &input)
	h.HandleResponse(c, design, err)
	return nil
}

// HandleDeleteDesign xóa design kèm toàn bộ đánh giá, chỉ chủ sở hữu.
func (h *DesignHandler) HandleDeleteDesign(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	designID, err := h.designIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.designService.DeleteDesign(c.Context(), designID, userID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleShareDesign chia sẻ design lên marketplace, cấp share token.
func (h *DesignHandler) HandleShareDesign(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	designID, err := h.designIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	design, err := h.designService.Share(c.Context(), designID, userID)
	h.HandleResponse(c, design, err)
	return nil
}

// HandleUnshareDesign gỡ design khỏi marketplace.
func (h *DesignHandler) HandleUnshareDesign(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	designID, err := h.designIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	design, err := h.designService.Unshare(c.Context(), designID, userID)
	h.HandleResponse(c, design, err)
	return nil
}

// HandleMarketplace trả về danh sách design chia sẻ, rating cao trước.
func (h *DesignHandler) HandleMarketplace(c fiber.Ctx) error {
	designs, err := h.designService.FindMarketplace(c.Context())
	h.HandleResponse(c, designs, err)
	return nil
}

// HandleRateDesign ghi nhận đánh giá 1..5 sao cho design chia sẻ.
func (h *DesignHandler) HandleRateDesign(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	designID, err := h.designIDFromParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input designdto.DesignRateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	design, err := h.designService.Rate(c.Context(), designID, userID, input.Rating)
	h.HandleResponse(c, design, err)
	return nil
}

// HandleImportDesign import bản sao design bằng share token.
func (h *DesignHandler) HandleImportDesign(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input designdto.DesignImportInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	design, err := h.designService.ImportByToken(c.Context(), userID, input.ShareToken)
	h.HandleResponse(c, design, err)
	return nil
}

// Package uploadhdl - handler cấp signed URL upload và xóa object.
package uploadhdl

import (
	"encoding/json"
	"fmt"

	"design_commerce/internal/api/middleware"
	uploaddto "design_commerce/internal/api/upload/dto"
	uploadsvc "design_commerce/internal/api/upload/service"
	"design_commerce/internal/common"
	"design_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadHandler xử lý các route upload, đọc store từ context.
type UploadHandler struct {
	uploadService *uploadsvc.UploadService
}

// NewUploadHandler tạo UploadHandler mới.
func NewUploadHandler() (*UploadHandler, error) {
	uploadService, err := uploadsvc.NewUploadService()
	if err != nil {
		return nil, fmt.Errorf("tạo UploadService: %w", err)
	}
	return &UploadHandler{uploadService: uploadService}, nil
}

// activeStoreID lấy store đang làm việc từ context.
func (h *UploadHandler) activeStoreID(c fiber.Ctx) (primitive.ObjectID, error) {
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
func (h *UploadHandler) respond(c fiber.Ctx, data interface{}, err error) {
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

// parseAndValidate decode body JSON và chạy validator chung.
func (h *UploadHandler) parseAndValidate(c fiber.Ctx, input interface{}) error {
	if err := json.Unmarshal(c.Body(), input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Dữ liệu gửi lên không đúng định dạng JSON", common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}
	return nil
}

// HandleUploadURL cấp V4 signed PUT URL cho store đang làm việc.
// POST /upload/upload-url
func (h *UploadHandler) HandleUploadURL(c fiber.Ctx) error {
	storeID, err := h.activeStoreID(c)
	if err != nil {
		h.respond(c, nil, err)
		return nil
	}
	var input uploaddto.UploadURLInput
	if err := h.parseAndValidate(c, &input); err != nil {
		h.respond(c, nil, err)
		return nil
	}
	result, err := h.uploadService.IssueUploadURL(c.Context(), storeID, &input)
	h.respond(c, result, err)
	return nil
}

// HandleDeleteObject xóa object của store đang làm việc.
// DELETE /upload/object
func (h *UploadHandler) HandleDeleteObject(c fiber.Ctx) error {
	storeID, err := h.activeStoreID(c)
	if err != nil {
		h.respond(c, nil, err)
		return nil
	}
	var input uploaddto.DeleteObjectInput
	if err := h.parseAndValidate(c, &input); err != nil {
		h.respond(c, nil, err)
		return nil
	}
	err = h.uploadService.DeleteObject(c.Context(), storeID, input.ObjectPath)
	h.respond(c, nil, err)
	return nil
}

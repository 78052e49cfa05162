// Package authhdl - handler admin (block user, cấp quyền admin).
package authhdl

import (
	"fmt"

	authdto "design_commerce/internal/api/auth/dto"
	authmodels "design_commerce/internal/api/auth/models"
	authsvc "design_commerce/internal/api/auth/service"
	basehdl "design_commerce/internal/api/base/handler"
	"design_commerce/internal/common"
	"design_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler xử lý các route liên quan đến quản trị viên
type AdminHandler struct {
	basehdl.BaseHandler[authmodels.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput]
	UserCRUD     *authsvc.UserService
	AdminService *authsvc.AdminService
}

// NewAdminHandler tạo một instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	h := &AdminHandler{}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	h.UserCRUD = userService
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	h.AdminService = adminService
	h.BaseService = userService
	return h, nil
}

// SetAdminInput đầu vào cấp/thu quyền admin cho người dùng
type SetAdminInput struct {
	Email   string `json:"email" validate:"required"`
	IsAdmin bool   `json:"isAdmin"`
}

// HandleSetAdmin xử lý cấp hoặc thu quyền admin cho người dùng
func (h *AdminHandler) HandleSetAdmin(c fiber.Ctx) error {
	var input SetAdminInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.SetAdmin(c.Context(), input.Email, input.IsAdmin)
	if err == nil {
		logger.LogAction("admin_set_admin", c, map[string]interface{}{"email": input.Email, "isAdmin": input.IsAdmin})
	}
	if result != nil {
		sanitizeUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleBlockUser xử lý khóa người dùng
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.BlockUser(c.Context(), input.Email, true, input.Note)
	if err == nil {
		logger.LogAction("admin_block_user", c, map[string]interface{}{"email": input.Email})
	}
	if result != nil {
		sanitizeUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUnBlockUser xử lý mở khóa người dùng
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.BlockUser(c.Context(), input.Email, false, "")
	if err == nil {
		logger.LogAction("admin_unblock_user", c, map[string]interface{}{"email": input.Email})
	}
	if result != nil {
		sanitizeUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}

// Package goalhdl - handler mục tiêu doanh số của store.
package goalhdl

import (
	"fmt"

	basehdl "design_commerce/internal/api/base/handler"
	goaldto "design_commerce/internal/api/goal/dto"
	goalmodels "design_commerce/internal/api/goal/models"
	goalsvc "design_commerce/internal/api/goal/service"
	"design_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// GoalHandler xử lý upsert/xóa goal và danh sách goal kèm tiến độ.
type GoalHandler struct {
	*basehdl.BaseHandler[goalmodels.SalesGoal, goaldto.SalesGoalUpsertInput, goaldto.SalesGoalUpsertInput]
	goalService *goalsvc.GoalService
}

// NewGoalHandler tạo GoalHandler mới.
func NewGoalHandler() (*GoalHandler, error) {
	goalService, err := goalsvc.NewGoalService()
	if err != nil {
		return nil, fmt.Errorf("tạo GoalService: %w", err)
	}
	return &GoalHandler{
		BaseHandler: basehdl.NewBaseHandler[goalmodels.SalesGoal, goaldto.SalesGoalUpsertInput, goaldto.SalesGoalUpsertInput](goalService),
		goalService: goalService,
	}, nil
}

// HandleUpsertGoal tạo hoặc cập nhật goal của store đang làm việc.
// Enum và targetValue được validate trước khi chạm database.
// POST /sales-goal/upsert
func (h *GoalHandler) HandleUpsertGoal(c fiber.Ctx) error {
	storeID := h.GetActiveStoreID(c)
	if storeID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Chưa chọn store làm việc", common.StatusBadRequest, nil))
		return nil
	}
	var input goaldto.SalesGoalUpsertInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	goal, err := h.goalService.UpsertGoal(c.Context(), *storeID, &input)
	h.HandleResponse(c, goal, err)
	return nil
}

// HandleListWithProgress trả về goal của store kèm tiến độ và pacing hiện tại.
// GET /sales-goal/progress
func (h *GoalHandler) HandleListWithProgress(c fiber.Ctx) error {
	storeID := h.GetActiveStoreID(c)
	if storeID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Chưa chọn store làm việc", common.StatusBadRequest, nil))
		return nil
	}
	goals, err := h.goalService.ListWithProgress(c.Context(), *storeID)
	h.HandleResponse(c, goals, err)
	return nil
}

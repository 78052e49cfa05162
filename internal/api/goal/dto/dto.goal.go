// Package goaldto - input/output cho domain goal.
package goaldto

import (
	goalmodels "design_commerce/internal/api/goal/models"
)

// SalesGoalUpsertInput tạo hoặc cập nhật goal. GoalID rỗng → tạo mới,
// server tự sinh id. Enum và target được validate trước khi chạm database.
type SalesGoalUpsertInput struct {
	GoalID      string  `json:"goalId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	MetricType  string  `json:"metricType" validate:"required,oneof=REVENUE UNITS_SOLD"`
	TimePeriod  string  `json:"timePeriod" validate:"required,oneof=DAILY WEEKLY MONTHLY"`
	TargetValue float64 `json:"targetValue" validate:"required,gt=0"`
}

// GoalProgress goal kèm tiến độ trong cửa sổ thời gian hiện tại.
// Tính lại mỗi request, không lưu. StartDate/EndDate là ISO-8601.
type GoalProgress struct {
	goalmodels.SalesGoal
	CurrentProgress float64 `json:"currentProgress"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	PacingStatus    string  `json:"pacingStatus"`
	PacingLabel     string  `json:"pacingLabel"`
}

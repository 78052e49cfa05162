// Package models - SalesGoal thuộc domain goal (sales_goals).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Giá trị hợp lệ của MetricType.
const (
	MetricTypeRevenue   = "REVENUE"
	MetricTypeUnitsSold = "UNITS_SOLD"
)

// Giá trị hợp lệ của TimePeriod.
const (
	TimePeriodDaily   = "DAILY"
	TimePeriodWeekly  = "WEEKLY"
	TimePeriodMonthly = "MONTHLY"
)

// SalesGoal mục tiêu doanh số của store (sales_goals).
// Mỗi store chỉ có một goal cho mỗi cặp (metricType, timePeriod),
// ràng buộc bằng unique index.
type SalesGoal struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID     primitive.ObjectID `json:"storeId" bson:"storeId" index:"single:1"`
	MetricType  string             `json:"metricType" bson:"metricType"`
	TimePeriod  string             `json:"timePeriod" bson:"timePeriod"`
	TargetValue float64            `json:"targetValue" bson:"targetValue"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// SalesGoalPaginateResult kết quả phân trang SalesGoal.
type SalesGoalPaginateResult struct {
	Page      int64       `json:"page" bson:"page"`
	Limit     int64       `json:"limit" bson:"limit"`
	ItemCount int64       `json:"itemCount" bson:"itemCount"`
	Items     []SalesGoal `json:"items" bson:"items"`
}

// Package goalsvc - Test cửa sổ thời gian và phân loại pacing cho sales goal.
package goalsvc

import (
	"testing"
	"time"

	goalmodels "design_commerce/internal/api/goal/models"
	ordermodels "design_commerce/internal/api/order/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGoalWindow_Daily(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)
	start, end, err := GoalWindow(goalmodels.TimePeriodDaily, now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestGoalWindow_WeeklyStartsOnMonday(t *testing.T) {
	// Thứ Tư 2026-01-07 → tuần từ thứ Hai 05 đến Chủ nhật 11
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	start, end, err := GoalWindow(goalmodels.TimePeriodWeekly, now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 11, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestGoalWindow_WeeklySundayBelongsToPreviousMonday(t *testing.T) {
	// Chủ nhật 2026-01-04 là ngày CUỐI tuần, không mở tuần mới
	now := time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC)
	start, end, err := GoalWindow(goalmodels.TimePeriodWeekly, now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 4, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestGoalWindow_MonthlyCoversWholeMonth(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	start, end, err := GoalWindow(goalmodels.TimePeriodMonthly, now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestGoalWindow_InvalidPeriod(t *testing.T) {
	_, _, err := GoalWindow("QUARTERLY", time.Now())
	assert.Error(t, err)
}

func TestMetricProgress(t *testing.T) {
	orders := []ordermodels.Order{
		{OrderItems: []ordermodels.OrderItem{
			{ProductID: primitive.NewObjectID(), UnitPrice: 10},
			{ProductID: primitive.NewObjectID(), UnitPrice: 20},
			{ProductID: primitive.NewObjectID(), UnitPrice: 30},
		}},
		{OrderItems: []ordermodels.OrderItem{
			{ProductID: primitive.NewObjectID(), UnitPrice: 40},
		}},
	}
	assert.Equal(t, 100.0, MetricProgress(goalmodels.MetricTypeRevenue, orders))
	// UNITS_SOLD đếm dòng hàng, không đếm đơn
	assert.Equal(t, 4.0, MetricProgress(goalmodels.MetricTypeUnitsSold, orders))
}

func TestClassifyPacing_MidWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC) // 50% cửa sổ, kỳ vọng 50/100

	cases := []struct {
		progress   float64
		wantStatus string
		wantLabel  string
	}{
		{50, "on_pace", "On Pace"},
		{47.5, "on_pace", "On Pace"}, // đúng ngưỡng 95% kỳ vọng
		{47, "behind", "Behind"},
		{20, "behind", "Behind"},
		{55, "on_pace", "On Pace"}, // đúng ngưỡng 110%, chưa vượt
		{56, "ahead", "Ahead"},
		{80, "ahead", "Ahead"},
	}
	for _, c := range cases {
		status, label := ClassifyPacing(100, c.progress, start, end, mid)
		assert.Equal(t, c.wantStatus, status, "progress=%v", c.progress)
		assert.Equal(t, c.wantLabel, label, "progress=%v", c.progress)
	}
}

func TestClassifyPacing_OutsideWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	status, label := ClassifyPacing(100, 0, start, end, start.AddDate(0, 0, -1))
	assert.Equal(t, "on_pace", status)
	assert.Equal(t, "Not Started", label)

	status, label = ClassifyPacing(100, 100, start, end, end.AddDate(0, 0, 1))
	assert.Equal(t, "ahead", status)
	assert.Equal(t, "Met", label)

	status, label = ClassifyPacing(100, 99, start, end, end.AddDate(0, 0, 1))
	assert.Equal(t, "behind", status)
	assert.Equal(t, "Missed", label)
}

func TestClassifyPacing_DegenerateWindow(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	status, label := ClassifyPacing(100, 50, at, at, at)
	assert.Equal(t, "behind", status)
	assert.Equal(t, "Invalid Date Range", label)

	status, label = ClassifyPacing(100, 50, at, at.AddDate(0, 0, -1), at)
	assert.Equal(t, "behind", status)
	assert.Equal(t, "Invalid Date Range", label)
}

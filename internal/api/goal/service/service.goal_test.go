package goalsvc

import (
	"testing"
	"time"

	goalmodels "design_commerce/internal/api/goal/models"
	ordermodels "design_commerce/internal/api/order/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComputeGoalProgress_MonthlyRevenue(t *testing.T) {
	goal := goalmodels.SalesGoal{
		ID:          primitive.NewObjectID(),
		MetricType:  goalmodels.MetricTypeRevenue,
		TimePeriod:  goalmodels.TimePeriodMonthly,
		TargetValue: 1000,
	}
	orders := []ordermodels.Order{
		{OrderItems: []ordermodels.OrderItem{{ProductID: primitive.NewObjectID(), UnitPrice: 250}}},
		{OrderItems: []ordermodels.OrderItem{{ProductID: primitive.NewObjectID(), UnitPrice: 250}}},
	}
	// Giữa tháng (ngày 15/30), kỳ vọng ~483: 500 nằm trong dải on-pace
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	result := ComputeGoalProgress(goal, orders, now)
	assert.Equal(t, 500.0, result.CurrentProgress)
	assert.Equal(t, "on_pace", result.PacingStatus)
	assert.Equal(t, "2026-06-01T00:00:00Z", result.StartDate)
	assert.Equal(t, goal.ID, result.ID)
}

func TestComputeGoalProgress_InvalidPeriod(t *testing.T) {
	goal := goalmodels.SalesGoal{MetricType: goalmodels.MetricTypeRevenue, TimePeriod: "YEARLY", TargetValue: 100}
	result := ComputeGoalProgress(goal, nil, time.Now())
	assert.Equal(t, "behind", result.PacingStatus)
	assert.Equal(t, "Invalid Date Range", result.PacingLabel)
	assert.Empty(t, result.StartDate)
	assert.Empty(t, result.EndDate)
}

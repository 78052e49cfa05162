package goaldto

import (
	"testing"

	"design_commerce/internal/global"
)

func TestSalesGoalUpsertInput_Validation(t *testing.T) {
	global.InitValidator()

	cases := []struct {
		name    string
		input   SalesGoalUpsertInput
		wantErr bool
	}{
		{
			name:  "revenue monthly hợp lệ",
			input: SalesGoalUpsertInput{MetricType: "REVENUE", TimePeriod: "MONTHLY", TargetValue: 5000},
		},
		{
			name:  "units sold daily hợp lệ",
			input: SalesGoalUpsertInput{MetricType: "UNITS_SOLD", TimePeriod: "DAILY", TargetValue: 10},
		},
		{
			name:  "goal id hex 24 ký tự hợp lệ",
			input: SalesGoalUpsertInput{GoalID: "65f1a2b3c4d5e6f708192a3b", MetricType: "REVENUE", TimePeriod: "WEEKLY", TargetValue: 100},
		},
		{
			name:    "metric type lạ bị từ chối",
			input:   SalesGoalUpsertInput{MetricType: "PROFIT", TimePeriod: "MONTHLY", TargetValue: 5000},
			wantErr: true,
		},
		{
			name:    "time period lạ bị từ chối",
			input:   SalesGoalUpsertInput{MetricType: "REVENUE", TimePeriod: "YEARLY", TargetValue: 5000},
			wantErr: true,
		},
		{
			name:    "target bằng 0 bị từ chối",
			input:   SalesGoalUpsertInput{MetricType: "REVENUE", TimePeriod: "MONTHLY", TargetValue: 0},
			wantErr: true,
		},
		{
			name:    "target âm bị từ chối",
			input:   SalesGoalUpsertInput{MetricType: "UNITS_SOLD", TimePeriod: "WEEKLY", TargetValue: -5},
			wantErr: true,
		},
		{
			name:    "thiếu metric type bị từ chối",
			input:   SalesGoalUpsertInput{TimePeriod: "MONTHLY", TargetValue: 5000},
			wantErr: true,
		},
		{
			name:    "goal id không phải hex bị từ chối",
			input:   SalesGoalUpsertInput{GoalID: "zzzzzzzzzzzzzzzzzzzzzzzz", MetricType: "REVENUE", TimePeriod: "MONTHLY", TargetValue: 5000},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := global.Validate.Struct(&c.input)
			if c.wantErr && err == nil {
				t.Errorf("input %+v phải bị từ chối", c.input)
			}
			if !c.wantErr && err != nil {
				t.Errorf("input %+v phải hợp lệ, nhận lỗi: %v", c.input, err)
			}
		})
	}
}

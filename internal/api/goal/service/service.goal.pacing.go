package goalsvc

import (
	"time"

	goalmodels "design_commerce/internal/api/goal/models"
	ordermodels "design_commerce/internal/api/order/models"
	"design_commerce/internal/common"
)

// Ngưỡng pacing: đạt từ 95% tiến độ kỳ vọng là đúng nhịp, vượt quá 110% là vượt nhịp.
const (
	pacingLowerTolerance = 0.95
	pacingUpperTolerance = 1.10
)

// GoalWindow trả về cửa sổ thời gian chuẩn [start, end] cho một kỳ tính tại now,
// theo giờ địa phương. End luôn là mốc 23:59:59.999.
//
// WEEKLY bắt đầu thứ Hai; Chủ nhật được tính là ngày cuối tuần, không phải đầu tuần.
func GoalWindow(timePeriod string, now time.Time) (time.Time, time.Time, error) {
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
	}
	startOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	switch timePeriod {
	case goalmodels.TimePeriodDaily:
		return startOfDay(now), endOfDay(now), nil
	case goalmodels.TimePeriodWeekly:
		weekday := int(now.Weekday()) // 0 = Chủ nhật
		offset := 1 - weekday
		if weekday == 0 {
			offset = -6
		}
		monday := startOfDay(now.AddDate(0, 0, offset))
		return monday, endOfDay(monday.AddDate(0, 0, 6)), nil
	case goalmodels.TimePeriodMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		lastDay := start.AddDate(0, 1, -1)
		return start, endOfDay(lastDay), nil
	}
	return time.Time{}, time.Time{}, common.NewError(common.ErrCodeValidationInput, "timePeriod không hợp lệ: "+timePeriod, common.StatusBadRequest, nil)
}

// MetricProgress gộp metric của goal trên các đơn đã thanh toán trong cửa sổ.
// REVENUE cộng giá từng dòng hàng; UNITS_SOLD đếm dòng hàng, không đếm đơn.
func MetricProgress(metricType string, orders []ordermodels.Order) float64 {
	var progress float64
	for i := range orders {
		for _, item := range orders[i].OrderItems {
			if metricType == goalmodels.MetricTypeRevenue {
				progress += item.UnitPrice
			} else {
				progress++
			}
		}
	}
	return progress
}

// ClassifyPacing so sánh tiến độ thực tế với tiến độ kỳ vọng theo thời gian
// đã trôi qua trong cửa sổ. Status ∈ {ahead, on_pace, behind}, label là
// nhãn hiển thị.
func ClassifyPacing(targetValue, currentProgress float64, start, end, now time.Time) (string, string) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return "behind", "Invalid Date Range"
	}

	totalDuration := end.Sub(start)
	elapsed := now.Sub(start)

	if elapsed < 0 {
		return "on_pace", "Not Started"
	}
	if elapsed > totalDuration {
		if currentProgress >= targetValue {
			return "ahead", "Met"
		}
		return "behind", "Missed"
	}

	elapsedFraction := float64(elapsed) / float64(totalDuration)
	expectedProgress := targetValue * elapsedFraction

	if currentProgress >= expectedProgress*pacingLowerTolerance {
		if currentProgress > expectedProgress*pacingUpperTolerance {
			return "ahead", "Ahead"
		}
		return "on_pace", "On Pace"
	}
	return "behind", "Behind"
}

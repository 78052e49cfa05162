// Package analyticssvc - phân tích RFM, hiệu suất sản phẩm và doanh thu theo quốc gia.
// Các hàm tính toán nhận sẵn danh sách đơn đã thanh toán nên test được với
// fixture in-memory, không cần database.
package analyticssvc

import (
	"sort"
	"time"

	analyticsdto "design_commerce/internal/api/analytics/dto"
	ordermodels "design_commerce/internal/api/order/models"
)

// defaultQuantiles số bucket điểm RFM.
const defaultQuantiles = 5

// CustomerMetric số liệu RFM gộp theo khách, tính lại mỗi request, không lưu.
type CustomerMetric struct {
	CustomerID       string
	LastPurchaseDate time.Time
	OrderCount       int
	TotalSpent       float64
	RecencyScore     int
	FrequencyScore   int
	MonetaryScore    int
}

// quantileScores gán điểm quantile [1..q] cho từng phần tử theo keys,
// trả về slice điểm cùng thứ tự với input. Sort ổn định theo giá trị tăng
// dần, tie có thể rơi vào bucket khác nhau.
//
// inverted=false: score = min(q, floor(i/bucket)+1), giá trị nhỏ điểm thấp.
// inverted=true (recency trên days-ago): score = q - floor(i/bucket),
// days-ago thấp nhận điểm cao. Hai nhánh tách riêng để không lẫn hướng điểm.
func quantileScores(keys []float64, q int, inverted bool) []int {
	n := len(keys)
	if n == 0 {
		return nil
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})
	bucketSize := (n + q - 1) / q
	scores := make([]int, n)
	for pos, idx := range order {
		if inverted {
			scores[idx] = q - pos/bucketSize
		} else {
			score := pos/bucketSize + 1
			if score > q {
				score = q
			}
			scores[idx] = score
		}
	}
	return scores
}

// segmentRule một dòng trong bảng phân loại RFM.
type segmentRule struct {
	match func(r, f, m int) bool
	label string
}

// segmentRules đánh giá từ trên xuống, dòng khớp đầu tiên thắng.
// Các điều kiện chồng lấn nhau có chủ đích: thứ tự quyết định kết quả,
// không được sắp xếp lại.
var segmentRules = []segmentRule{
	{func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }, "Champions"},
	{func(r, f, m int) bool { return r >= 3 && f >= 3 && m >= 3 }, "Loyal Customers"},
	{func(r, f, m int) bool { return r >= 4 && f >= 1 && m >= 1 }, "Recent Customers"},
	{func(r, f, m int) bool { return r >= 3 && f >= 4 && m >= 4 }, "Potential Loyalists"},
	{func(r, f, m int) bool { return r <= 2 && f >= 3 && m >= 3 }, "At Risk"},
	{func(r, f, m int) bool { return r <= 2 && f <= 2 && m <= 2 }, "Lost"},
	{func(r, f, m int) bool { return r <= 3 && f <= 3 && m >= 4 }, "High Spenders (Needs Attention)"},
	{func(r, f, m int) bool { return r >= 3 && f <= 3 && m <= 3 }, "Low Spenders (Recent)"},
}

// classifySegment trả về nhãn segment cho bộ điểm (r, f, m).
func classifySegment(r, f, m int) string {
	for _, rule := range segmentRules {
		if rule.match(r, f, m) {
			return rule.label
		}
	}
	return "Other"
}

// orderValue tổng giá các dòng hàng của đơn. Mỗi dòng hàng là đúng một đơn vị.
func orderValue(order *ordermodels.Order) float64 {
	var total float64
	for _, item := range order.OrderItems {
		total += item.UnitPrice
	}
	return total
}

// AggregateCustomerMetrics gộp đơn đã thanh toán thành số liệu RFM theo khách.
// Đơn không có customerId bị bỏ qua. Thứ tự output theo lần xuất hiện đầu
// của khách trong input (ổn định cho phần gán điểm phía sau).
func AggregateCustomerMetrics(orders []ordermodels.Order) []CustomerMetric {
	index := make(map[string]int)
	metrics := make([]CustomerMetric, 0)
	for i := range orders {
		order := &orders[i]
		if order.CustomerID == "" {
			continue
		}
		createdAt := time.UnixMilli(order.CreatedAt)
		pos, seen := index[order.CustomerID]
		if !seen {
			pos = len(metrics)
			index[order.CustomerID] = pos
			metrics = append(metrics, CustomerMetric{
				CustomerID:       order.CustomerID,
				LastPurchaseDate: createdAt,
			})
		}
		metric := &metrics[pos]
		metric.OrderCount++
		metric.TotalSpent += orderValue(order)
		if createdAt.After(metric.LastPurchaseDate) {
			metric.LastPurchaseDate = createdAt
		}
	}
	return metrics
}

// ScoreCustomerMetrics gán điểm recency/frequency/monetary [1..5] theo quantile.
func ScoreCustomerMetrics(metrics []CustomerMetric, now time.Time) {
	n := len(metrics)
	if n == 0 {
		return
	}
	daysAgo := make([]float64, n)
	orderCounts := make([]float64, n)
	totalSpents := make([]float64, n)
	for i, m := range metrics {
		daysAgo[i] = float64(int(now.Sub(m.LastPurchaseDate).Hours() / 24))
		orderCounts[i] = float64(m.OrderCount)
		totalSpents[i] = m.TotalSpent
	}
	recency := quantileScores(daysAgo, defaultQuantiles, true)
	frequency := quantileScores(orderCounts, defaultQuantiles, false)
	monetary := quantileScores(totalSpents, defaultQuantiles, false)
	for i := range metrics {
		metrics[i].RecencyScore = recency[i]
		metrics[i].FrequencyScore = frequency[i]
		metrics[i].MonetaryScore = monetary[i]
	}
}

// SegmentCustomers chạy toàn bộ pipeline RFM: gộp theo khách, chấm điểm,
// phân loại, đếm theo segment. Kết quả sort giảm dần theo số khách,
// hòa nhau giữ thứ tự xuất hiện. Không có khách nào → slice rỗng.
func SegmentCustomers(orders []ordermodels.Order, now time.Time) []analyticsdto.SegmentCount {
	metrics := AggregateCustomerMetrics(orders)
	ScoreCustomerMetrics(metrics, now)

	counts := make(map[string]int)
	labels := make([]string, 0)
	for _, m := range metrics {
		label := classifySegment(m.RecencyScore, m.FrequencyScore, m.MonetaryScore)
		if _, seen := counts[label]; !seen {
			labels = append(labels, label)
		}
		counts[label]++
	}

	result := make([]analyticsdto.SegmentCount, 0, len(labels))
	for _, label := range labels {
		result = append(result, analyticsdto.SegmentCount{Segment: label, CustomerCount: counts[label]})
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CustomerCount > result[b].CustomerCount
	})
	return result
}

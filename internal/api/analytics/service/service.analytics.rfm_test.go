// Package analyticssvc - Test pipeline RFM: chấm điểm quantile, bảng phân loại, gộp theo khách.
package analyticssvc

import (
	"testing"
	"time"

	ordermodels "design_commerce/internal/api/order/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// makePaidOrder tạo đơn đã thanh toán với một dòng hàng, createdAt lùi daysAgo ngày so với now.
func makePaidOrder(customerID string, daysAgo int, price float64, now time.Time) ordermodels.Order {
	return ordermodels.Order{
		ID:         primitive.NewObjectID(),
		CustomerID: customerID,
		IsPaid:     true,
		OrderItems: []ordermodels.OrderItem{
			{ProductID: primitive.NewObjectID(), Name: "Áo thun", UnitPrice: price},
		},
		CreatedAt: now.AddDate(0, 0, -daysAgo).UnixMilli(),
	}
}

func TestQuantileScores_AscendingBuckets(t *testing.T) {
	keys := []float64{10, 20, 30, 40, 50}
	scores := quantileScores(keys, 5, false)
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("keys[%d]=%v: score = %d, muốn %d", i, keys[i], scores[i], want[i])
		}
	}
}

func TestQuantileScores_InvertedGivesHighScoreToSmallKeys(t *testing.T) {
	// Recency chấm trên days-ago: mua gần nhất (days-ago nhỏ) phải nhận điểm cao nhất
	keys := []float64{10, 20, 30, 40, 50}
	scores := quantileScores(keys, 5, true)
	want := []int{5, 4, 3, 2, 1}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("keys[%d]=%v: score = %d, muốn %d", i, keys[i], scores[i], want[i])
		}
	}
}

func TestQuantileScores_BoundsWhenNNotDivisibleByQ(t *testing.T) {
	keys := []float64{7, 3, 9, 1, 5, 8, 2}
	for _, inverted := range []bool{false, true} {
		scores := quantileScores(keys, 5, inverted)
		for i, s := range scores {
			if s < 1 || s > 5 {
				t.Errorf("inverted=%v keys[%d]=%v: score %d nằm ngoài [1,5]", inverted, i, keys[i], s)
			}
		}
	}
}

func TestQuantileScores_Empty(t *testing.T) {
	if scores := quantileScores(nil, 5, false); scores != nil {
		t.Errorf("input rỗng phải trả về nil, nhận %v", scores)
	}
}

func TestClassifySegment_RuleTable(t *testing.T) {
	cases := []struct {
		r, f, m int
		want    string
	}{
		{5, 5, 5, "Champions"},
		{4, 4, 4, "Champions"},
		{3, 3, 3, "Loyal Customers"},
		{4, 1, 1, "Recent Customers"},
		{2, 3, 3, "At Risk"},
		{1, 4, 4, "At Risk"},
		{2, 2, 2, "Lost"},
		{1, 1, 1, "Lost"},
		{1, 1, 5, "High Spenders (Needs Attention)"},
		{3, 2, 2, "Low Spenders (Recent)"},
		{2, 4, 2, "Other"},
	}
	for _, c := range cases {
		if got := classifySegment(c.r, c.f, c.m); got != c.want {
			t.Errorf("classifySegment(%d,%d,%d) = %q, muốn %q", c.r, c.f, c.m, got, c.want)
		}
	}
}

func TestAggregateCustomerMetrics_SkipsGuestOrders(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	orders := []ordermodels.Order{
		makePaidOrder("a@example.com", 1, 100, now),
		makePaidOrder("", 1, 999, now), // khách vãng lai, không có customerId
		makePaidOrder("a@example.com", 3, 50, now),
	}
	metrics := AggregateCustomerMetrics(orders)
	if len(metrics) != 1 {
		t.Fatalf("số khách = %d, muốn 1", len(metrics))
	}
	m := metrics[0]
	if m.OrderCount != 2 {
		t.Errorf("OrderCount = %d, muốn 2", m.OrderCount)
	}
	if m.TotalSpent != 150 {
		t.Errorf("TotalSpent = %v, muốn 150", m.TotalSpent)
	}
	wantLast := now.AddDate(0, 0, -1).UnixMilli()
	if m.LastPurchaseDate.UnixMilli() != wantLast {
		t.Errorf("LastPurchaseDate = %v, muốn đơn gần nhất (1 ngày trước)", m.LastPurchaseDate)
	}
}

func TestScoreCustomerMetrics_RecentBuyerScoresHigherRecency(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	orders := []ordermodels.Order{
		makePaidOrder("fresh@example.com", 1, 100, now),
		makePaidOrder("stale@example.com", 300, 100, now),
		makePaidOrder("mid@example.com", 90, 100, now),
	}
	metrics := AggregateCustomerMetrics(orders)
	ScoreCustomerMetrics(metrics, now)

	byID := map[string]CustomerMetric{}
	for _, m := range metrics {
		byID[m.CustomerID] = m
	}
	if byID["fresh@example.com"].RecencyScore <= byID["stale@example.com"].RecencyScore {
		t.Errorf("khách mua gần (score %d) phải có recency cao hơn khách lâu không mua (score %d)",
			byID["fresh@example.com"].RecencyScore, byID["stale@example.com"].RecencyScore)
	}
	if byID["fresh@example.com"].RecencyScore < byID["mid@example.com"].RecencyScore {
		t.Errorf("recency phải giảm dần theo days-ago")
	}
}

func TestSegmentCustomers_Empty(t *testing.T) {
	result := SegmentCustomers(nil, time.Now())
	if len(result) != 0 {
		t.Errorf("không có đơn phải trả về slice rỗng, nhận %v", result)
	}
}

func TestSegmentCustomers_EndToEnd(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	// 5 khách giảm dần đều cả 3 chiều: điểm quantile trải đúng 1..5
	var orders []ordermodels.Order
	customers := []struct {
		id         string
		daysAgo    int
		orderCount int
	}{
		{"a@example.com", 1, 5},
		{"b@example.com", 30, 4},
		{"c@example.com", 90, 3},
		{"d@example.com", 180, 2},
		{"e@example.com", 300, 1},
	}
	for _, c := range customers {
		for i := 0; i < c.orderCount; i++ {
			orders = append(orders, makePaidOrder(c.id, c.daysAgo, 100, now))
		}
	}

	result := SegmentCustomers(orders, now)

	// a,b → Champions; c → Loyal Customers; d,e → Lost
	if len(result) != 3 {
		t.Fatalf("số segment = %d, muốn 3: %+v", len(result), result)
	}
	if result[0].Segment != "Champions" || result[0].CustomerCount != 2 {
		t.Errorf("result[0] = %+v, muốn Champions với 2 khách", result[0])
	}
	if result[1].Segment != "Lost" || result[1].CustomerCount != 2 {
		t.Errorf("result[1] = %+v, muốn Lost với 2 khách (hòa số lượng giữ thứ tự xuất hiện)", result[1])
	}
	if result[2].Segment != "Loyal Customers" || result[2].CustomerCount != 1 {
		t.Errorf("result[2] = %+v, muốn Loyal Customers với 1 khách", result[2])
	}

	total := 0
	for _, s := range result {
		total += s.CustomerCount
	}
	if total != 5 {
		t.Errorf("tổng khách qua các segment = %d, muốn 5", total)
	}
}

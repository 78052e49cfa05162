package analyticssvc

import (
	"context"
	"fmt"
	"time"

	analyticsdto "design_commerce/internal/api/analytics/dto"
	ordersvc "design_commerce/internal/api/order/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsService nạp đơn đã thanh toán của store rồi chạy các phép phân tích.
// Kết quả luôn tính lại từ dữ liệu hiện tại, không cache.
type AnalyticsService struct {
	orderService *ordersvc.OrderService
}

// NewAnalyticsService tạo AnalyticsService mới.
func NewAnalyticsService() (*AnalyticsService, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrderService: %w", err)
	}
	return &AnalyticsService{orderService: orderService}, nil
}

// CustomerSegmentation phân khúc khách hàng RFM của store.
func (s *AnalyticsService) CustomerSegmentation(ctx context.Context, storeID primitive.ObjectID) ([]analyticsdto.SegmentCount, error) {
	orders, err := s.orderService.ListPaidOrders(ctx, storeID, nil, nil)
	if err != nil {
		return nil, err
	}
	return SegmentCustomers(orders, time.Now()), nil
}

// ProductPerformance doanh thu theo sản phẩm của store.
func (s *AnalyticsService) ProductPerformance(ctx context.Context, storeID primitive.ObjectID) ([]analyticsdto.ProductPerformance, error) {
	orders, err := s.orderService.ListPaidOrders(ctx, storeID, nil, nil)
	if err != nil {
		return nil, err
	}
	return ProductPerformances(orders), nil
}

// CountrySales doanh thu theo quốc gia của store.
func (s *AnalyticsService) CountrySales(ctx context.Context, storeID primitive.ObjectID) ([]analyticsdto.CountrySales, error) {
	orders, err := s.orderService.ListPaidOrders(ctx, storeID, nil, nil)
	if err != nil {
		return nil, err
	}
	return SalesByCountry(orders), nil
}

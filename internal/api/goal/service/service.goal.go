// Package goalsvc - service mục tiêu doanh số và tính tiến độ theo cửa sổ thời gian.
package goalsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "design_commerce/internal/api/base/service"
	goaldto "design_commerce/internal/api/goal/dto"
	goalmodels "design_commerce/internal/api/goal/models"
	ordermodels "design_commerce/internal/api/order/models"
	ordersvc "design_commerce/internal/api/order/service"
	"design_commerce/internal/common"
	"design_commerce/internal/global"
	"design_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// GoalService xử lý upsert/xóa goal và tính tiến độ từ đơn đã thanh toán.
type GoalService struct {
	*basesvc.BaseServiceMongoImpl[goalmodels.SalesGoal]
	orderService *ordersvc.OrderService
}

// NewGoalService tạo GoalService mới.
func NewGoalService() (*GoalService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesGoals)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.SalesGoals, common.ErrNotFound)
	}
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrderService: %w", err)
	}
	return &GoalService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[goalmodels.SalesGoal](coll),
		orderService:         orderService,
	}, nil
}

// UpsertGoal tạo hoặc cập nhật goal theo id. GoalID rỗng → server sinh id mới.
// Input đã được validate enum/target ở tầng handler trước khi vào đây.
func (s *GoalService) UpsertGoal(ctx context.Context, storeID primitive.ObjectID, input *goaldto.SalesGoalUpsertInput) (*goalmodels.SalesGoal, error) {
	goalID := primitive.NewObjectID()
	if input.GoalID != "" {
		goalID = utility.String2ObjectID(input.GoalID)
	}

	filter := bson.M{"_id": goalID, "storeId": storeID}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"metricType":  input.MetricType,
			"timePeriod":  input.TimePeriod,
			"targetValue": input.TargetValue,
		},
		SetOnInsert: map[string]interface{}{
			"storeId": storeID,
		},
	}
	goal, err := s.Upsert(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// ComputeGoalProgress tính tiến độ một goal từ danh sách đơn đã thanh toán
// trong cửa sổ của nó. Hàm thuần để test với fixture in-memory.
func ComputeGoalProgress(goal goalmodels.SalesGoal, orders []ordermodels.Order, now time.Time) goaldto.GoalProgress {
	start, end, err := GoalWindow(goal.TimePeriod, now)
	progress := MetricProgress(goal.MetricType, orders)

	result := goaldto.GoalProgress{
		SalesGoal:       goal,
		CurrentProgress: progress,
	}
	if err != nil {
		result.PacingStatus, result.PacingLabel = "behind", "Invalid Date Range"
		return result
	}
	result.StartDate = start.Format(time.RFC3339)
	result.EndDate = end.Format(time.RFC3339)
	result.PacingStatus, result.PacingLabel = ClassifyPacing(goal.TargetValue, progress, start, end, now)
	return result
}

// ListWithProgress trả về toàn bộ goal của store kèm tiến độ hiện tại,
// sắp theo timePeriod. Tiến độ tính từ đơn đã thanh toán trong cửa sổ
// của từng goal, không cache.
func (s *GoalService) ListWithProgress(ctx context.Context, storeID primitive.ObjectID) ([]goaldto.GoalProgress, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "timePeriod", Value: 1}})
	goals, err := s.Find(ctx, bson.M{"storeId": storeID}, opts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]goaldto.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		start, end, werr := GoalWindow(goal.TimePeriod, now)
		if werr != nil {
			result = append(result, ComputeGoalProgress(goal, nil, now))
			continue
		}
		orders, err := s.orderService.ListPaidOrders(ctx, storeID, &start, &end)
		if err != nil {
			return nil, err
		}
		result = append(result, ComputeGoalProgress(goal, orders, now))
	}
	return result, nil
}

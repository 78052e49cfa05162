// Package designsvc - service design và marketplace.
package designsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "design_commerce/internal/api/base/service"
	designdto "design_commerce/internal/api/design/dto"
	designmodels "design_commerce/internal/api/design/models"
	"design_commerce/internal/common"
	"design_commerce/internal/global"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// DesignService xử lý design người dùng lưu, chia sẻ marketplace và đánh giá.
type DesignService struct {
	*basesvc.BaseServiceMongoImpl[designmodels.Design]
	ratingService *basesvc.BaseServiceMongoImpl[designmodels.DesignRating]
}

// NewDesignService tạo DesignService mới.
func NewDesignService() (*DesignService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Designs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Designs, common.ErrNotFound)
	}
	ratingColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DesignRatings)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DesignRatings, common.ErrNotFound)
	}
	return &DesignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[designmodels.Design](coll),
		ratingService:        basesvc.NewBaseServiceMongo[designmodels.DesignRating](ratingColl),
	}, nil
}

// CreateDesign lưu design mới cho user.
func (s *DesignService) CreateDesign(ctx context.Context, userID primitive.ObjectID, input *designdto.DesignCreateInput) (*designmodels.Design, error) {
	design := designmodels.Design{
		UserID:     userID,
		Name:       input.Name,
		PreviewURL: input.PreviewURL,
		DesignData: input.DesignData,
	}
	created, err := s.InsertOne(ctx, design)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByUser trả về các design của user, mới nhất trước.
func (s *DesignService) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]designmodels.Design, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

// requireOwner trả về design nếu user là chủ sở hữu.
func (s *DesignService) requireOwner(ctx context.Context, designID, userID primitive.ObjectID) (*designmodels.Design, error) {
	design, err := s.FindOneById(ctx, designID)
	if err != nil {
		return nil, err
	}
	if design.UserID != userID {
		return nil, common.NewError(common.ErrCodeAuthRole, "Không có quyền với design này", common.StatusForbidden, nil)
	}
	return &design, nil
}

// UpdateDesign cập nhật design, chỉ chủ sở hữu.
func (s *DesignService) UpdateDesign(ctx context.Context, designID, userID primitive.ObjectID, input *designdto.DesignUpdateInput) (*designmodels.Design, error) {
	if _, err := s.requireOwner(ctx, designID, userID); err != nil {
		return nil, err
	}
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.PreviewURL != "" {
		set["previewUrl"] = input.PreviewURL
	}
	if input.DesignData != "" {
		set["designData"] = input.DesignData
	}
	if len(set) == 0 {
		design, err := s.FindOneById(ctx, designID)
		if err != nil {
			return nil, err
		}
		return &design, nil
	}
	updated, err := s.UpdateById(ctx, designID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDesign xóa design và toàn bộ đánh giá của nó, chỉ chủ sở hữu.
func (s *DesignService) DeleteDesign(ctx context.Context, designID, userID primitive.ObjectID) error {
	if _, err := s.requireOwner(ctx, designID, userID); err != nil {
		return err
	}
	if _, err := s.ratingService.DeleteMany(ctx, bson.M{"designId": designID}); err != nil {
		logrus.WithFields(logrus.Fields{"design_id": designID.Hex(), "error": err.Error()}).Warn("DeleteDesign: Không xóa được ratings")
	}
	return s.DeleteById(ctx, designID)
}

// Share chia sẻ design lên marketplace, cấp share token nếu chưa có.
func (s *DesignService) Share(ctx context.Context, designID, userID primitive.ObjectID) (*designmodels.Design, error) {
	design, err := s.requireOwner(ctx, designID, userID)
	if err != nil {
		return nil, err
	}
	set := map[string]interface{}{"isShared": true}
	if design.ShareToken == "" {
		set["shareToken"] = uuid.NewString()
	}
	updated, err := s.UpdateById(ctx, designID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Unshare gỡ design khỏi marketplace và thu hồi share token.
func (s *DesignService) Unshare(ctx context.Context, designID, userID primitive.ObjectID) (*designmodels.Design, error) {
	if _, err := s.requireOwner(ctx, designID, userID); err != nil {
		return nil, err
	}
	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"isShared": false},
		Unset: map[string]interface{}{"shareToken": ""},
	}
	updated, err := s.UpdateById(ctx, designID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindMarketplace trả về các design chia sẻ, rating cao trước.
func (s *DesignService) FindMarketplace(ctx context.Context) ([]designmodels.Design, error) {
	opts := mongoopts.Find().SetSort(bson.D{
		{Key: "averageRating", Value: -1},
		{Key: "ratingCount", Value: -1},
	})
	return s.Find(ctx, bson.M{"isShared": true}, opts)
}

// Rate ghi nhận đánh giá của user cho design (một đánh giá cho mỗi cặp design/user)
// rồi tính lại averageRating và ratingCount.
func (s *DesignService) Rate(ctx context.Context, designID, userID primitive.ObjectID, rating int) (*designmodels.Design, error) {
	design, err := s.FindOneById(ctx, designID)
	if err != nil {
		return nil, err
	}
	if !design.IsShared {
		return nil, common.NewError(common.ErrCodeBusinessState, "Chỉ đánh giá được design đang chia sẻ", common.StatusForbidden, nil)
	}
	if design.UserID == userID {
		return nil, common.NewError(common.ErrCodeBusinessState, "Không thể tự đánh giá design của mình", common.StatusForbidden, nil)
	}

	filter := bson.M{"designId": designID, "userId": userID}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"designId": designID,
			"userId":   userID,
			"rating":   rating,
		},
	}
	if _, err := s.ratingService.Upsert(ctx, filter, updateData); err != nil {
		return nil, err
	}

	return s.recomputeRating(ctx, designID)
}

// recomputeRating tính lại trung bình và số lượng đánh giá từ design_ratings.
func (s *DesignService) recomputeRating(ctx context.Context, designID primitive.ObjectID) (*designmodels.Design, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"designId": designID}},
		{"$group": bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}},
	}
	cursor, err := s.ratingService.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Average float64 `bson:"average"`
		Count   int64   `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return nil, common.ConvertMongoError(err)
		}
	}

	updated, err := s.UpdateById(ctx, designID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"averageRating": result.Average,
			"ratingCount":   result.Count,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ImportByToken tạo bản sao design từ share token cho user.
func (s *DesignService) ImportByToken(ctx context.Context, userID primitive.ObjectID, shareToken string) (*designmodels.Design, error) {
	source, err := s.FindOne(ctx, bson.M{"shareToken": shareToken, "isShared": true}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Share token không hợp lệ hoặc design đã ngừng chia sẻ", common.StatusNotFound, nil)
		}
		return nil, err
	}

	copyDesign := designmodels.Design{
		UserID:     userID,
		Name:       source.Name,
		PreviewURL: source.PreviewURL,
		DesignData: source.DesignData,
	}
	created, err := s.InsertOne(ctx, copyDesign)
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateById(ctx, source.ID, &basesvc.UpdateData{Inc: map[string]interface{}{"usageCount": 1}}); err != nil {
		logrus.WithFields(logrus.Fields{"design_id": source.ID.Hex(), "error": err.Error()}).Warn("ImportByToken: Không cập nhật được usageCount")
	}

	return &created, nil
}

// Package catalogsvc - service các thực thể catalog.
package catalogsvc

import (
	"context"
	"fmt"

	catalogmodels "design_commerce/internal/api/catalog/models"
	basesvc "design_commerce/internal/api/base/service"
	"design_commerce/internal/common"
	"design_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// StoreService xử lý CRUD cửa hàng.
type StoreService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Store]
}

// NewStoreService tạo StoreService mới.
func NewStoreService() (*StoreService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stores)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Stores, common.ErrNotFound)
	}
	return &StoreService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Store](coll),
	}, nil
}

// FindByUser trả về danh sách store thuộc sở hữu của user (theo thứ tự tạo).
func (s *StoreService) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]catalogmodels.Store, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

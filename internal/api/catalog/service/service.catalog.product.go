// Package catalogsvc - service sản phẩm (products).
package catalogsvc

import (
	"context"
	"fmt"

	catalogdto "design_commerce/internal/api/catalog/dto"
	catalogmodels "design_commerce/internal/api/catalog/models"
	basesvc "design_commerce/internal/api/base/service"
	designmodels "design_commerce/internal/api/design/models"
	"design_commerce/internal/common"
	"design_commerce/internal/global"
	"design_commerce/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService xử lý CRUD sản phẩm và các truy vấn storefront.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	designService *basesvc.BaseServiceMongoImpl[designmodels.Design]
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	designColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Designs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Designs, common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](coll),
		designService:        basesvc.NewBaseServiceMongo[designmodels.Design](designColl),
	}, nil
}

// FindStorefront trả về sản phẩm công khai của store theo bộ lọc.
// Sản phẩm archived luôn bị loại, mới nhất trước.
func (s *ProductService) FindStorefront(ctx context.Context, storeID primitive.ObjectID, query *catalogdto.StorefrontProductQuery) ([]catalogmodels.Product, error) {
	filter := bson.M{
		"storeId":    storeID,
		"isArchived": false,
	}
	if query.CategoryID != "" {
		filter["categoryId"] = utility.String2ObjectID(query.CategoryID)
	}
	if query.SizeID != "" {
		filter["sizeId"] = utility.String2ObjectID(query.SizeID)
	}
	if query.ColorID != "" {
		filter["colorId"] = utility.String2ObjectID(query.ColorID)
	}
	if query.IsFeatured {
		filter["isFeatured"] = true
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// CreateFromDesign tạo sản phẩm từ design chia sẻ trên marketplace.
// Sản phẩm được gắn vào community category, ảnh lấy từ preview của design,
// designId được lưu để ghi nhận lượt sử dụng cho chủ design.
func (s *ProductService) CreateFromDesign(ctx context.Context, storeID primitive.ObjectID, input *catalogdto.CreateFromDesignInput) (*catalogmodels.Product, error) {
	designID := utility.String2ObjectID(input.DesignID)
	design, err := s.designService.FindOneById(ctx, designID)
	if err != nil {
		return nil, err
	}
	if !design.IsShared {
		return nil, common.NewError(common.ErrCodeBusinessState, "Design chưa được chia sẻ trên marketplace", common.StatusForbidden, nil)
	}

	communityCategoryID := global.ServerConfig.CommunityCategoryID
	if communityCategoryID == "" {
		return nil, common.NewError(common.ErrCodeBusinessState, "Chưa cấu hình community category", common.StatusInternalServerError, nil)
	}

	name := input.Name
	if name == "" {
		name = design.Name
	}
	product := catalogmodels.Product{
		StoreID:    storeID,
		CategoryID: utility.String2ObjectID(communityCategoryID),
		SizeID:     utility.String2ObjectID(input.SizeID),
		ColorID:    utility.String2ObjectID(input.ColorID),
		DesignID:   &designID,
		Name:       name,
		Price:      input.Price,
		Images:     []string{design.PreviewURL},
	}
	created, err := s.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}

	// Ghi nhận lượt sử dụng cho chủ design
	usageUpdate := &basesvc.UpdateData{
		Inc: map[string]interface{}{"usageCount": 1},
	}
	if _, err := s.designService.UpdateById(ctx, designID, usageUpdate); err != nil {
		logrus.WithFields(logrus.Fields{"design_id": designID.Hex(), "error": err.Error()}).Warn("CreateFromDesign: Không cập nhật được usageCount")
	}

	return &created, nil
}

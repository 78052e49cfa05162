// Package catalogsvc - service billboard, category, size, color (CRUD thuần trên BaseService).
package catalogsvc

import (
	"fmt"

	catalogmodels "design_commerce/internal/api/catalog/models"
	basesvc "design_commerce/internal/api/base/service"
	"design_commerce/internal/common"
	"design_commerce/internal/global"
)

// BillboardService xử lý CRUD billboard.
type BillboardService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Billboard]
}

// NewBillboardService tạo BillboardService mới.
func NewBillboardService() (*BillboardService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Billboards)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Billboards, common.ErrNotFound)
	}
	return &BillboardService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Billboard](coll),
	}, nil
}

// CategoryService xử lý CRUD danh mục.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo CategoryService mới.
func NewCategoryService() (*CategoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Categories, common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](coll),
	}, nil
}

// SizeService xử lý CRUD kích thước.
type SizeService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Size]
}

// NewSizeService tạo SizeService mới.
func NewSizeService() (*SizeService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sizes)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Sizes, common.ErrNotFound)
	}
	return &SizeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Size](coll),
	}, nil
}

// ColorService xử lý CRUD màu sắc.
type ColorService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Color]
}

// NewColorService tạo ColorService mới.
func NewColorService() (*ColorService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Colors)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Colors, common.ErrNotFound)
	}
	return &ColorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Color](coll),
	}, nil
}

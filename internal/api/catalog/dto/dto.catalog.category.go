package dto

// CategoryCreateInput dữ liệu tạo danh mục mới.
type CategoryCreateInput struct {
	StoreID     string `json:"storeId,omitempty" transform:"str_objectid,optional"`
	BillboardID string `json:"billboardId" validate:"required" transform:"str_objectid"`
	Name        string `json:"name" validate:"required"`
}

// CategoryUpdateInput dữ liệu cập nhật danh mục.
type CategoryUpdateInput struct {
	BillboardID string `json:"billboardId,omitempty" transform:"str_objectid,optional"`
	Name        string `json:"name,omitempty"`
}

package dto

// BillboardCreateInput dữ liệu tạo billboard mới.
type BillboardCreateInput struct {
	StoreID  string `json:"storeId,omitempty" transform:"str_objectid,optional"`
	Label    string `json:"label" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

// BillboardUpdateInput dữ liệu cập nhật billboard.
type BillboardUpdateInput struct {
	Label    string `json:"label,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

package dto

// SizeCreateInput dữ liệu tạo kích thước mới.
type SizeCreateInput struct {
	StoreID string `json:"storeId,omitempty" transform:"str_objectid,optional"`
	Name    string `json:"name" validate:"required"`
	Value   string `json:"value" validate:"required"`
}

// SizeUpdateInput dữ liệu cập nhật kích thước.
type SizeUpdateInput struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

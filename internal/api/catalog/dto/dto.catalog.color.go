package dto

// ColorCreateInput dữ liệu tạo màu mới. Value phải là mã hex.
type ColorCreateInput struct {
	StoreID string `json:"storeId,omitempty" transform:"str_objectid,optional"`
	Name    string `json:"name" validate:"required"`
	Value   string `json:"value" validate:"required,hexcolor"`
}

// ColorUpdateInput dữ liệu cập nhật màu.
type ColorUpdateInput struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty" validate:"omitempty,hexcolor"`
}

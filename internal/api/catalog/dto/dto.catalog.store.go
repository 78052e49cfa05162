// Package dto - DTO cho domain catalog.
package dto

// StoreCreateInput dữ liệu tạo store mới.
type StoreCreateInput struct {
	Name string `json:"name" validate:"required"`
}

// StoreUpdateInput dữ liệu cập nhật store.
type StoreUpdateInput struct {
	Name string `json:"name,omitempty"`
}

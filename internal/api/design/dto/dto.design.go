// Package dto - DTO cho domain design.
package dto

// DesignCreateInput dữ liệu lưu design mới.
type DesignCreateInput struct {
	Name       string `json:"name" validate:"required"`
	PreviewURL string `json:"previewUrl" validate:"required"`
	DesignData string `json:"designData" validate:"required"`
}

// DesignUpdateInput dữ liệu cập nhật design.
type DesignUpdateInput struct {
	Name       string `json:"name,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
	DesignData string `json:"designData,omitempty"`
}

// DesignRateInput dữ liệu đánh giá design, 1 đến 5 sao.
type DesignRateInput struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// DesignImportInput dữ liệu import design bằng share token.
type DesignImportInput struct {
	ShareToken string `json:"shareToken" validate:"required"`
}

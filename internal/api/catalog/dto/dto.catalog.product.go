package dto

// ProductCreateInput dữ liệu tạo sản phẩm mới.
// Thứ tự validate: name -> price -> images -> categoryId -> sizeId -> colorId.
type ProductCreateInput struct {
	StoreID    string   `json:"storeId,omitempty" transform:"str_objectid,optional"`
	Name       string   `json:"name" validate:"required"`
	Price      float64  `json:"price" validate:"required,gt=0"`
	Images     []string `json:"images" validate:"required,min=1"`
	CategoryID string   `json:"categoryId" validate:"required" transform:"str_objectid"`
	SizeID     string   `json:"sizeId" validate:"required" transform:"str_objectid"`
	ColorID    string   `json:"colorId" validate:"required" transform:"str_objectid"`
	IsFeatured bool     `json:"isFeatured,omitempty"`
	IsArchived bool     `json:"isArchived,omitempty"`
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm.
type ProductUpdateInput struct {
	Name       string   `json:"name,omitempty"`
	Price      float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Images     []string `json:"images,omitempty"`
	CategoryID string   `json:"categoryId,omitempty" transform:"str_objectid,optional"`
	SizeID     string   `json:"sizeId,omitempty" transform:"str_objectid,optional"`
	ColorID    string   `json:"colorId,omitempty" transform:"str_objectid,optional"`
	IsFeatured bool     `json:"isFeatured,omitempty"`
	IsArchived bool     `json:"isArchived,omitempty"`
}

// StorefrontProductQuery bộ lọc sản phẩm cho storefront công khai.
type StorefrontProductQuery struct {
	CategoryID string `query:"categoryId"`
	SizeID     string `query:"sizeId"`
	ColorID    string `query:"colorId"`
	IsFeatured bool   `query:"isFeatured"`
}

// CreateFromDesignInput dữ liệu tạo sản phẩm từ design chia sẻ trên marketplace.
type CreateFromDesignInput struct {
	DesignID string  `json:"designId" validate:"required" transform:"str_objectid"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	SizeID   string  `json:"sizeId" validate:"required" transform:"str_objectid"`
	ColorID  string  `json:"colorId" validate:"required" transform:"str_objectid"`
}

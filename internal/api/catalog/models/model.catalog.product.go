// Package models - Product thuộc domain catalog (products).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product sản phẩm của store (products).
// DesignID khác rỗng khi sản phẩm được tạo từ design chia sẻ trên marketplace.
type Product struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID    primitive.ObjectID  `json:"storeId" bson:"storeId" index:"single:1"`
	CategoryID primitive.ObjectID  `json:"categoryId" bson:"categoryId" index:"single:1"`
	SizeID     primitive.ObjectID  `json:"sizeId" bson:"sizeId"`
	ColorID    primitive.ObjectID  `json:"colorId" bson:"colorId"`
	DesignID   *primitive.ObjectID `json:"designId,omitempty" bson:"designId,omitempty"`
	Name       string              `json:"name" bson:"name"`
	Price      float64             `json:"price" bson:"price"`
	Images     []string            `json:"images" bson:"images"`
	IsFeatured bool                `json:"isFeatured" bson:"isFeatured"`
	IsArchived bool                `json:"isArchived" bson:"isArchived"`
	CreatedAt  int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64               `json:"updatedAt" bson:"updatedAt"`
}

// ProductPaginateResult kết quả phân trang Product.
type ProductPaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Product `json:"items" bson:"items"`
}

// Package models - model các thực thể catalog (stores, billboards, categories, sizes, colors, products).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store cửa hàng thuộc sở hữu của một user (stores).
type Store struct {
	_Relationships struct{}           `relationship:"collection:products,field:storeId,message:Không thể xóa store vì còn %d sản phẩm. Vui lòng xóa sản phẩm trước.|collection:categories,field:storeId,message:Không thể xóa store vì còn %d danh mục. Vui lòng xóa danh mục trước.|collection:billboards,field:storeId,message:Không thể xóa store vì còn %d billboard. Vui lòng xóa billboard trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// StorePaginateResult kết quả phân trang Store.
type StorePaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []Store `json:"items" bson:"items"`
}

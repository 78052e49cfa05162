// Package models - Category thuộc domain catalog (categories).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category danh mục sản phẩm của store (categories).
type Category struct {
	_Relationships struct{}           `relationship:"collection:products,field:categoryId,message:Không thể xóa danh mục vì có %d sản phẩm đang thuộc danh mục này. Vui lòng chuyển sản phẩm sang danh mục khác trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID        primitive.ObjectID `json:"storeId" bson:"storeId" index:"single:1"`
	BillboardID    primitive.ObjectID `json:"billboardId" bson:"billboardId"`
	Name           string             `json:"name" bson:"name"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

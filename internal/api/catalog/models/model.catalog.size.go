// Package models - Size thuộc domain catalog (sizes).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Size kích thước sản phẩm của store (sizes).
type Size struct {
	_Relationships struct{}           `relationship:"collection:products,field:sizeId,message:Không thể xóa kích thước vì có %d sản phẩm đang sử dụng. Vui lòng gỡ kích thước khỏi sản phẩm trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID        primitive.ObjectID `json:"storeId" bson:"storeId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	Value          string             `json:"value" bson:"value"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models - Color thuộc domain catalog (colors).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Color màu sắc sản phẩm của store (colors). Value là mã hex, vd "#ff0000".
type Color struct {
	_Relationships struct{}           `relationship:"collection:products,field:colorId,message:Không thể xóa màu vì có %d sản phẩm đang sử dụng. Vui lòng gỡ màu khỏi sản phẩm trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID        primitive.ObjectID `json:"storeId" bson:"storeId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	Value          string             `json:"value" bson:"value"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models - Billboard thuộc domain catalog (billboards).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Billboard banner quảng cáo của store (billboards).
type Billboard struct {
	_Relationships struct{}           `relationship:"collection:categories,field:billboardId,message:Không thể xóa billboard vì có %d danh mục đang sử dụng. Vui lòng gỡ billboard khỏi danh mục trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID        primitive.ObjectID `json:"storeId" bson:"storeId" index:"single:1"`
	Label          string             `json:"label" bson:"label"`
	ImageURL       string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models - Design thuộc domain design (designs).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Design bản thiết kế người dùng lưu (designs).
// ShareToken chỉ tồn tại khi design được chia sẻ lên marketplace; unique sparse
// nên document không chia sẻ không giữ chuỗi rỗng.
type Design struct {
	_Relationships struct{}           `relationship:"collection:design_ratings,field:designId,cascade:true"`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	PreviewURL     string             `json:"previewUrl" bson:"previewUrl"`
	DesignData     string             `json:"designData" bson:"designData"`
	IsShared       bool               `json:"isShared" bson:"isShared"`
	ShareToken     string             `json:"shareToken,omitempty" bson:"shareToken,omitempty" index:"unique,sparse"`
	AverageRating  float64            `json:"averageRating" bson:"averageRating"`
	RatingCount    int64              `json:"ratingCount" bson:"ratingCount"`
	UsageCount     int64              `json:"usageCount" bson:"usageCount"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// DesignRating đánh giá của một user cho một design (design_ratings).
// Mỗi user chỉ có một đánh giá cho mỗi design (unique compound index).
type DesignRating struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DesignID  primitive.ObjectID `json:"designId" bson:"designId"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Rating    int                `json:"rating" bson:"rating"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models - Order thuộc domain order (orders).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem dòng hàng trong đơn. UnitPrice snapshot tại thời điểm đặt,
// không đổi khi giá sản phẩm thay đổi về sau.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	UnitPrice float64            `json:"unitPrice" bson:"unitPrice"`
}

// Order đơn hàng storefront (orders).
// CustomerID là định danh khách (email Stripe trả về), rỗng với khách vãng lai.
type Order struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID    primitive.ObjectID `json:"storeId" bson:"storeId" index:"single:1"`
	CustomerID string             `json:"customerId,omitempty" bson:"customerId,omitempty"`
	IsPaid     bool               `json:"isPaid" bson:"isPaid"`
	Phone      string             `json:"phone" bson:"phone"`
	Address    string             `json:"address" bson:"address"`
	OrderItems []OrderItem        `json:"orderItems" bson:"orderItems"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// OrderPaginateResult kết quả phân trang Order.
type OrderPaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []Order `json:"items" bson:"items"`
}

// Package orderdto - input/output cho domain order.
package orderdto

// CheckoutInput giỏ hàng storefront gửi lên khi thanh toán.
type CheckoutInput struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,len=24,hexadecimal"`
}

// CheckoutResult trả về cho storefront để redirect sang trang thanh toán Stripe.
type CheckoutResult struct {
	OrderID string `json:"orderId"`
	URL     string `json:"url"`
}

// PaidOrderQuery bộ lọc khoảng ngày (ISO-8601) cho danh sách đơn đã thanh toán.
type PaidOrderQuery struct {
	From string `json:"from" query:"from"`
	To   string `json:"to" query:"to"`
}

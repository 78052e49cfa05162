// Package ordersvc - service đơn hàng (orders) và checkout qua Stripe.
package ordersvc

import (
	"context"
	"fmt"
	"math"
	"time"

	basesvc "design_commerce/internal/api/base/service"
	catalogmodels "design_commerce/internal/api/catalog/models"
	orderdto "design_commerce/internal/api/order/dto"
	ordermodels "design_commerce/internal/api/order/models"
	"design_commerce/internal/common"
	"design_commerce/internal/global"
	"design_commerce/internal/utility"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	stripesession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService xử lý checkout storefront và truy vấn đơn hàng.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
	productService *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewOrderService tạo OrderService mới.
func NewOrderService() (*OrderService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Orders, common.ErrNotFound)
	}
	productColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](coll),
		productService:       basesvc.NewBaseServiceMongo[catalogmodels.Product](productColl),
	}, nil
}

// Checkout tạo đơn chưa thanh toán từ giỏ hàng rồi mở phiên thanh toán Stripe.
// Giá dòng hàng snapshot tại thời điểm này. Đơn được đánh dấu đã thanh toán
// khi webhook checkout.session.completed về.
func (s *OrderService) Checkout(ctx context.Context, storeID primitive.ObjectID, input *orderdto.CheckoutInput) (*orderdto.CheckoutResult, error) {
	productIDs := make([]primitive.ObjectID, 0, len(input.ProductIDs))
	for _, id := range input.ProductIDs {
		productIDs = append(productIDs, utility.String2ObjectID(id))
	}

	filter := bson.M{
		"_id":        bson.M{"$in": productIDs},
		"storeId":    storeID,
		"isArchived": false,
	}
	products, err := s.productService.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	if len(products) != len(productIDs) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Một số sản phẩm không tồn tại hoặc đã ngừng bán", common.StatusBadRequest, nil)
	}

	orderItems := make([]ordermodels.OrderItem, 0, len(products))
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(products))
	for _, product := range products {
		orderItems = append(orderItems, ordermodels.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
		})
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(int64(math.Round(product.Price * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(product.Name),
				},
			},
		})
	}

	order, err := s.InsertOne(ctx, ordermodels.Order{
		StoreID:    storeID,
		IsPaid:     false,
		OrderItems: orderItems,
	})
	if err != nil {
		return nil, err
	}

	stripe.Key = global.ServerConfig.StripeSecretKey
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(global.ServerConfig.FrontendURL + "/cart?success=1"),
		CancelURL:  stripe.String(global.ServerConfig.FrontendURL + "/cart?canceled=1"),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	params.AddMetadata("orderId", order.ID.Hex())

	sess, err := stripesession.New(params)
	if err != nil {
		logrus.WithFields(logrus.Fields{"order_id": order.ID.Hex(), "error": err.Error()}).Error("❌ [CHECKOUT] Không tạo được phiên thanh toán Stripe")
		return nil, common.NewError(common.ErrCodePaymentWebhook, "Không tạo được phiên thanh toán", common.StatusServiceUnavailable, err)
	}

	return &orderdto.CheckoutResult{
		OrderID: order.ID.Hex(),
		URL:     sess.URL,
	}, nil
}

// ListPaidOrders trả về đơn đã thanh toán của store, lọc theo khoảng thời gian tạo đơn nếu có.
func (s *OrderService) ListPaidOrders(ctx context.Context, storeID primitive.ObjectID, from, to *time.Time) ([]ordermodels.Order, error) {
	filter := bson.M{
		"storeId": storeID,
		"isPaid":  true,
	}
	createdAt := bson.M{}
	if from != nil {
		createdAt["$gte"] = from.UnixMilli()
	}
	if to != nil {
		createdAt["$lte"] = to.UnixMilli()
	}
	if len(createdAt) > 0 {
		filter["createdAt"] = createdAt
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// MarkPaid đánh dấu đơn đã thanh toán với thông tin khách Stripe trả về.
// Sản phẩm vẫn mở bán sau thanh toán (in theo design, không giới hạn một đơn vị),
// chỉ đảm bảo isArchived không bị bật.
func (s *OrderService) MarkPaid(ctx context.Context, orderID primitive.ObjectID, customerID, phone, address string) (*ordermodels.Order, error) {
	set := map[string]interface{}{
		"isPaid":  true,
		"phone":   phone,
		"address": address,
	}
	if customerID != "" {
		set["customerId"] = customerID
	}
	order, err := s.UpdateById(ctx, orderID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}

	productIDs := make([]primitive.ObjectID, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		productIDs = append(productIDs, item.ProductID)
	}
	if len(productIDs) > 0 {
		update := bson.M{"$set": bson.M{"isArchived": false, "updatedAt": time.Now().UnixMilli()}}
		if _, err := s.productService.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": productIDs}}, update, nil); err != nil {
			logrus.WithFields(logrus.Fields{"order_id": orderID.Hex(), "error": err.Error()}).Warn("⚠️ [ORDER] Không đồng bộ được trạng thái sản phẩm sau thanh toán")
		}
	}
	return &order, nil
}

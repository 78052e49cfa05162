// Package database - Index bổ sung (compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"design_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateStoreAdditionalIndexes tạo các index compound phục vụ truy vấn analytics và storefront.
// Gọi sau khi các collection đã được đăng ký vào registry.
func CreateStoreAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// orders: (storeId, isPaid, createdAt) — listPaidOrders theo cửa hàng và khoảng thời gian
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "storeId", Value: 1},
			{Key: "isPaid", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("order_store_paid_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (storeId, customerId) sparse — phân khúc khách hàng theo customerId
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "storeId", Value: 1},
			{Key: "customerId", Value: 1},
		},
		Options: options.Index().SetName("order_store_customer").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (storeId, categoryId, isArchived) — filter storefront
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "storeId", Value: 1},
			{Key: "categoryId", Value: 1},
			{Key: "isArchived", Value: 1},
		},
		Options: options.Index().SetName("product_store_category_archived"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (storeId, isFeatured) — trang chủ storefront
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "storeId", Value: 1},
			{Key: "isFeatured", Value: 1},
		},
		Options: options.Index().SetName("product_store_featured"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sales_goals: (storeId, metricType, timePeriod) unique — một goal cho mỗi cặp metric/period
	salesGoals := db.Collection(global.MongoDB_ColNames.SalesGoals)
	if _, err := salesGoals.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "storeId", Value: 1},
			{Key: "metricType", Value: 1},
			{Key: "timePeriod", Value: 1},
		},
		Options: options.Index().SetName("goal_store_metric_period").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// designs: (isShared, averageRating) — marketplace listing sắp theo rating
	designs := db.Collection(global.MongoDB_ColNames.Designs)
	if _, err := designs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "isShared", Value: 1},
			{Key: "averageRating", Value: -1},
		},
		Options: options.Index().SetName("design_shared_rating"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// design_ratings: (designId, userId) unique — mỗi user đánh giá một design một lần
	designRatings := db.Collection(global.MongoDB_ColNames.DesignRatings)
	if _, err := designRatings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "designId", Value: 1},
			{Key: "userId", Value: 1},
		},
		Options: options.Index().SetName("rating_design_user").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}

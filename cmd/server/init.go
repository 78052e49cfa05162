package main

import (
	"context"

	"design_commerce/config"
	authmodels "design_commerce/internal/api/auth/models"
	catalogmodels "design_commerce/internal/api/catalog/models"
	designmodels "design_commerce/internal/api/design/models"
	goalmodels "design_commerce/internal/api/goal/models"
	ordermodels "design_commerce/internal/api/order/models"
	webhookmodels "design_commerce/internal/api/webhook/models"
	"design_commerce/internal/database"
	"design_commerce/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Stores), catalogmodels.Store{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Billboards), catalogmodels.Billboard{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Sizes), catalogmodels.Size{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Colors), catalogmodels.Color{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.SalesGoals), goalmodels.SalesGoal{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Designs), designmodels.Design{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DesignRatings), designmodels.DesignRating{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WebhookLogs), webhookmodels.WebhookLog{})

	// Các index ghép không mô tả được bằng tag (unique theo store, text search, ...)
	if err := database.CreateStoreAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create additional indexes: %v", err)
	}
}

package global

import (
	"design_commerce/config"
	"design_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Stores        string // Tên collection cho cửa hàng
	Billboards    string // Tên collection cho billboard
	Categories    string // Tên collection cho danh mục sản phẩm
	Sizes         string // Tên collection cho kích thước
	Colors        string // Tên collection cho màu sắc
	Products      string // Tên collection cho sản phẩm
	Orders        string // Tên collection cho đơn hàng
	SalesGoals    string // Tên collection cho mục tiêu doanh số
	Designs       string // Tên collection cho design người dùng lưu
	DesignRatings string // Tên collection cho đánh giá design
	WebhookLogs   string // Tên collection cho log webhook thanh toán
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	Users:         "users",
	Stores:        "stores",
	Billboards:    "billboards",
	Categories:    "categories",
	Sizes:         "sizes",
	Colors:        "colors",
	Products:      "products",
	Orders:        "orders",
	SalesGoals:    "sales_goals",
	Designs:       "designs",
	DesignRatings: "design_ratings",
	WebhookLogs:   "webhook_logs",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// Package router đăng ký các route thuộc domain catalog: stores, billboards,
// categories, sizes, colors, products và storefront công khai.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "design_commerce/internal/api/catalog/handler"
	"design_commerce/internal/api/middleware"
	apirouter "design_commerce/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	storeHandler, err := cataloghdl.NewStoreHandler()
	if err != nil {
		return fmt.Errorf("tạo StoreHandler: %w", err)
	}
	billboardHandler, err := cataloghdl.NewBillboardHandler()
	if err != nil {
		return fmt.Errorf("tạo BillboardHandler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}
	sizeHandler, err := cataloghdl.NewSizeHandler()
	if err != nil {
		return fmt.Errorf("tạo SizeHandler: %w", err)
	}
	colorHandler, err := cataloghdl.NewColorHandler()
	if err != nil {
		return fmt.Errorf("tạo ColorHandler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}

	// Store: UserID gán từ context nên create/update/delete dùng handler riêng
	authOnly := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/store", "POST", "/create", authOnly, storeHandler.HandleCreateStore)
	apirouter.RegisterRouteWithMiddleware(v1, "/store", "GET", "/my-stores", authOnly, storeHandler.HandleListMyStores)
	apirouter.RegisterRouteWithMiddleware(v1, "/store", "PUT", "/update-by-id/:id", authOnly, storeHandler.HandleUpdateStore)
	apirouter.RegisterRouteWithMiddleware(v1, "/store", "DELETE", "/delete-by-id/:id", authOnly, storeHandler.HandleDeleteStore)
	apirouter.RegisterRouteWithMiddleware(v1, "/store", "GET", "/find-by-id/:id", authOnly, storeHandler.FindOneById)

	// CRUD scope theo store qua StoreContextMiddleware
	r.RegisterCRUDRoutes(v1, "/billboard", billboardHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/size", sizeHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/color", colorHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig)

	// Tạo sản phẩm từ design chia sẻ (marketplace)
	storeScoped := []fiber.Handler{middleware.AuthMiddleware(), middleware.StoreContextMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/from-design", storeScoped, productHandler.HandleCreateFromDesign)

	// Storefront công khai, không cần auth
	v1.Get("/storefront/:storeId/products", productHandler.HandleStorefrontProducts)
	v1.Get("/storefront/:storeId/products/:id", productHandler.HandleStorefrontProductDetail)

	return nil
}

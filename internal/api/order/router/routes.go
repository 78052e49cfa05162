// Package orderrouter đăng ký route cho domain order.
package orderrouter

import (
	"fmt"

	"design_commerce/internal/api/middleware"
	orderhdl "design_commerce/internal/api/order/handler"
	apirouter "design_commerce/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký các route order lên router v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("tạo OrderHandler: %w", err)
	}

	// Checkout công khai cho storefront, không cần đăng nhập.
	v1.Post("/storefront/:storeId/checkout", orderHandler.HandleCheckout)

	storeScoped := []fiber.Handler{middleware.AuthMiddleware(), middleware.StoreContextMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/paid", storeScoped, orderHandler.HandlePaidOrders)

	r.RegisterCRUDRoutes(v1, "/order", orderHandler, apirouter.ReadOnlyConfig)

	return nil
}

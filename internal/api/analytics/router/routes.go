// Package analyticsrouter đăng ký route cho domain analytics.
package analyticsrouter

import (
	"fmt"

	analyticshdl "design_commerce/internal/api/analytics/handler"
	"design_commerce/internal/api/middleware"
	apirouter "design_commerce/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký các route analytics lên router v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	analyticsHandler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("tạo AnalyticsHandler: %w", err)
	}

	storeScoped := []fiber.Handler{middleware.AuthMiddleware(), middleware.StoreContextMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/customer-segmentation", storeScoped, analyticsHandler.HandleCustomerSegmentation)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/product-performance", storeScoped, analyticsHandler.HandleProductPerformance)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/sales-by-country", storeScoped, analyticsHandler.HandleSalesByCountry)

	return nil
}

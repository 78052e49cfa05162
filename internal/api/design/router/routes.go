// Package designrouter đăng ký route cho design và marketplace.
package designrouter

import (
	"fmt"

	designhdl "design_commerce/internal/api/design/handler"
	"design_commerce/internal/api/middleware"
	apirouter "design_commerce/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký các route design lên router v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	designHandler, err := designhdl.NewDesignHandler()
	if err != nil {
		return fmt.Errorf("tạo DesignHandler: %w", err)
	}

	authOnly := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/design", "POST", "/create", authOnly, designHandler.HandleCreateDesign)
	apirouter.RegisterRouteWithMiddleware(v1, "/design", "GET", "/my-designs", authOnly, designHandler.HandleListMyDesigns)
	apirouter.RegisterRouteWithMiddleware(v1, "/design", "PUT", "/update-by-id/:id", authOnly, designHandler.HandleUpdateDesign)
	apirouter.RegisterRouteWithMiddleware(v1, "/design", "DELETE", "/delete-by-id/:id", authOnly, designHandler.HandleDeleteDesign)
	apirouter.RegisterRouteWithMiddleware(v1, "/design", "POST", "/share/:id", authOnly, designHandler.HandleShareDesign)
	apirouter.RegisterRouteWithMiddleware(v1, "/design", "POST", "/unshare/:id", authOnly, designHandler.HandleUnshareDesign)
	apirouter.RegisterRouteWithMiddleware(v1, "/design", "POST", "/rate/:id", authOnly, designHandler.HandleRateDesign)
	apirouter.RegisterRouteWithMiddleware(v1, "/design", "POST", "/import", authOnly, designHandler.HandleImportDesign)

	// Marketplace công khai, không cần đăng nhập.
	v1.Get("/marketplace/designs", designHandler.HandleMarketplace)

	return nil
}

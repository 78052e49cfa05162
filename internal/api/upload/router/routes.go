// Package uploadrouter đăng ký route cho domain upload.
package uploadrouter

import (
	"fmt"

	"design_commerce/internal/api/middleware"
	apirouter "design_commerce/internal/api/router"
	uploadhdl "design_commerce/internal/api/upload/handler"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký các route upload lên router v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	uploadHandler, err := uploadhdl.NewUploadHandler()
	if err != nil {
		return fmt.Errorf("tạo UploadHandler: %w", err)
	}

	storeScoped := []fiber.Handler{middleware.AuthMiddleware(), middleware.StoreContextMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/upload-url", storeScoped, uploadHandler.HandleUploadURL)
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "DELETE", "/object", storeScoped, uploadHandler.HandleDeleteObject)

	return nil
}

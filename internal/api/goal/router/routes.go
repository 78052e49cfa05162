// Package goalrouter đăng ký route cho domain goal.
package goalrouter

import (
	"fmt"

	goalhdl "design_commerce/internal/api/goal/handler"
	"design_commerce/internal/api/middleware"
	apirouter "design_commerce/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký các route sales goal lên router v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	goalHandler, err := goalhdl.NewGoalHandler()
	if err != nil {
		return fmt.Errorf("tạo GoalHandler: %w", err)
	}

	storeScoped := []fiber.Handler{middleware.AuthMiddleware(), middleware.StoreContextMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/sales-goal", "POST", "/upsert", storeScoped, goalHandler.HandleUpsertGoal)
	apirouter.RegisterRouteWithMiddleware(v1, "/sales-goal", "GET", "/progress", storeScoped, goalHandler.HandleListWithProgress)

	// Xóa và các thao tác đọc còn lại dùng CRUD chung, đã kèm kiểm tra store.
	r.RegisterCRUDRoutes(v1, "/sales-goal", goalHandler, apirouter.UpsertOnlyConfig)

	return nil
}

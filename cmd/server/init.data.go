package main

import (
	"context"

	authsvc "design_commerce/internal/api/auth/service"
	"design_commerce/internal/global"
	"design_commerce/internal/logger"
)

// InitDefaultData seed dữ liệu mặc định khi chạy ở chế độ init (INITMODE=true).
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("Init mode disabled, skipping default data seeding")
		return
	}

	cfg := global.ServerConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("⚠️ [INIT] ADMIN_EMAIL/ADMIN_PASSWORD chưa cấu hình, bỏ qua seed admin")
		return
	}

	adminService, err := authsvc.NewAdminService()
	if err != nil {
		log.Fatalf("Failed to initialize admin service: %v", err)
	}

	log.Info("🔄 [INIT] Seeding admin user...")
	if err := adminService.SeedAdmin(context.TODO(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to seed admin user")
		return
	}
	log.Infof("✅ [INIT] Admin user seeded (email: %s)", cfg.AdminEmail)
}

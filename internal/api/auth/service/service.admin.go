// Package authsvc - service quản trị (Admin): seed admin, cấp quyền admin.
package authsvc

import (
	"context"
	"errors"
	"fmt"

	models "design_commerce/internal/api/auth/models"
	basesvc "design_commerce/internal/api/base/service"
	"design_commerce/internal/common"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminService là cấu trúc chứa các phương thức liên quan đến admin
type AdminService struct {
	userService *UserService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &AdminService{
		userService: userService,
	}, nil
}

// SetAdmin cấp hoặc thu quyền admin cho User dựa trên Email
func (s *AdminService) SetAdmin(ctx context.Context, email string, isAdmin bool) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"isAdmin": isAdmin},
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// SeedAdmin tạo admin mặc định nếu chưa tồn tại (chạy trong init mode)
func (s *AdminService) SeedAdmin(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		logrus.Warn("SeedAdmin: Thiếu ADMIN_EMAIL hoặc ADMIN_PASSWORD, bỏ qua seed admin")
		return nil
	}

	existing, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err == nil {
		if !existing.IsAdmin {
			if _, err := s.SetAdmin(ctx, email, true); err != nil {
				return err
			}
		}
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
		Tokens:   []models.Token{},
	}
	created, err := s.userService.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("SeedAdmin: Đã tạo admin mặc định")
	return nil
}

// BlockUser chặn hoặc bỏ chặn User dựa trên Email và trạng thái Block
func (s *AdminService) BlockUser(ctx context.Context, email string, block bool, note string) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   block,
			"blockNote": note,
		},
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// UnBlockUser mở khóa người dùng
func (s *AdminService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	return s.BlockUser(ctx, email, false, "")
}

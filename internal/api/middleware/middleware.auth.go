package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "design_commerce/internal/api/auth/models"
	basesvc "design_commerce/internal/api/base/service"
	"design_commerce/internal/common"
	"design_commerce/internal/global"
	"design_commerce/internal/logger"
	"design_commerce/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *basesvc.BaseServiceMongoImpl[models.User]
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	newManager.UserCRUD = basesvc.NewBaseServiceMongo[models.User](userCollection)

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// findUserByToken tìm user sở hữu token
// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login
// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid)
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (models.User, error) {
	// Kiểm tra cache trước, tránh query database trên mỗi request
	if cached, ok := am.Cache.Get(token); ok {
		if user, ok := cached.(models.User); ok {
			return user, nil
		}
	}

	// Cách 1: Query field "token" (token mới nhất) - ĐÂY LÀ CÁCH CHÍNH
	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err == nil {
		am.Cache.Set(token, user)
		return user, nil
	}

	// Cách 2: Query trong array "tokens" với dot notation
	user, err = am.UserCRUD.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
	if err == nil {
		am.Cache.Set(token, user)
		return user, nil
	}

	// Cách 3: Query với $elemMatch
	user, err = am.UserCRUD.FindOne(ctx, bson.M{
		"tokens": bson.M{
			"$elemMatch": bson.M{
				"jwtToken": token,
			},
		},
	}, nil)
	if err == nil {
		am.Cache.Set(token, user)
	}
	return user, err
}

// AuthMiddleware middleware xác thực cho Fiber
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác thực chữ ký và hạn của token trước khi đụng đến database
		var claims models.JwtToken
		if err := utility.VerifyToken(global.ServerConfig.JwtSecret, token, &claims); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Tìm user có token (token phải còn được ghi nhận, logout sẽ gỡ nó ra)
		user, err := authManager.findUserByToken(context.Background(), token)
		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}

// AdminMiddleware yêu cầu user đã xác thực phải là admin. Dùng sau AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				"User not authenticated",
				common.StatusUnauthorized,
				nil,
			))
			return nil
		}
		if !user.IsAdmin {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": user.ID.Hex(),
				"path":    c.Path(),
			}).Warn("❌ [AUTH] User is not admin, denying access")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Chỉ quản trị viên mới có quyền truy cập",
				common.StatusForbidden,
				nil,
			))
			return nil
		}
		return c.Next()
	}
}

package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"design_commerce/internal/common"
	"design_commerce/internal/global"
)

// StoreContextMiddleware middleware để quản lý store context
// - Đọc X-Store-ID từ header
// - Validate user có sở hữu store này không
// - Nếu không có header hoặc store không thuộc sở hữu, fallback về store đầu tiên của user
// - Lưu store_id vào context để handler scope dữ liệu theo store
func StoreContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy user ID từ context (đã được set bởi AuthMiddleware)
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			// Không có user ID, có thể là route không cần auth
			// Cho phép tiếp tục nhưng không set store context
			return c.Next()
		}

		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			// User ID không hợp lệ
			return c.Next()
		}

		// Lấy store ID từ header
		storeIDStr := c.Get("X-Store-ID")
		var storeID primitive.ObjectID

		if storeIDStr != "" {
			// Có header, validate store ID
			storeID, err = primitive.ObjectIDFromHex(storeIDStr)
			if err != nil {
				// Store ID không hợp lệ, fallback về store đầu tiên
				storeID, err = getFirstUserStoreID(context.Background(), userID)
				if err != nil {
					return c.Next() // Không có store, cho phép tiếp tục
				}
			} else {
				// Validate user có sở hữu store này không
				owns, err := validateUserOwnsStore(context.Background(), userID, storeID)
				if err != nil || !owns {
					// User không sở hữu store này, fallback về store đầu tiên
					storeID, err = getFirstUserStoreID(context.Background(), userID)
					if err != nil {
						return c.Next() // Không có store, cho phép tiếp tục
					}
				}
			}
		} else {
			// Không có header, lấy store đầu tiên của user
			storeID, err = getFirstUserStoreID(context.Background(), userID)
			if err != nil {
				return c.Next() // Không có store, cho phép tiếp tục
			}
		}

		// Lưu vào context để handler scope dữ liệu theo store
		c.Locals("store_id", storeID.Hex())

		return c.Next()
	}
}

// validateUserOwnsStore kiểm tra user có sở hữu store này không
func validateUserOwnsStore(ctx context.Context, userID, storeID primitive.ObjectID) (bool, error) {
	storeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stores)
	if !exist {
		return false, common.ErrNotFound
	}

	count, err := storeCollection.CountDocuments(ctx, bson.M{
		"_id":    storeID,
		"userId": userID,
	})
	if err != nil {
		return false, common.ConvertMongoError(err)
	}

	return count > 0, nil
}

// getFirstUserStoreID lấy store ID đầu tiên của user (theo thứ tự tạo)
func getFirstUserStoreID(ctx context.Context, userID primitive.ObjectID) (primitive.ObjectID, error) {
	storeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stores)
	if !exist {
		return primitive.NilObjectID, common.ErrNotFound
	}

	var store struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	err := storeCollection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&store)
	if err != nil {
		return primitive.NilObjectID, common.ConvertMongoError(err)
	}

	return store.ID, nil
}

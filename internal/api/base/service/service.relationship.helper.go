package basesvc

import (
	"context"
	"fmt"
	"design_commerce/internal/common"
	"design_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiem tra quan he voi filter tuy chinh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteCategory kiem tra cac quan he cua Category truoc khi xoa
func ValidateBeforeDeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "categoryId", ErrorMessage: "Khong the xoa category vi co %d product dang su dung category nay. Vui long xoa cac product truoc."},
	}
	return CheckRelationshipExists(ctx, categoryID, checks)
}

// ValidateBeforeDeleteSize kiem tra cac quan he cua Size truoc khi xoa
func ValidateBeforeDeleteSize(ctx context.Context, sizeID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "sizeId", ErrorMessage: "Khong the xoa size vi co %d product dang su dung size nay. Vui long xoa cac product truoc."},
	}
	return CheckRelationshipExists(ctx, sizeID, checks)
}

// ValidateBeforeDeleteColor kiem tra cac quan he cua Color truoc khi xoa
func ValidateBeforeDeleteColor(ctx context.Context, colorID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "colorId", ErrorMessage: "Khong the xoa color vi co %d product dang su dung color nay. Vui long xoa cac product truoc."},
	}
	return CheckRelationshipExists(ctx, colorID, checks)
}

// ValidateBeforeDeleteBillboard kiem tra cac quan he cua Billboard truoc khi xoa
func ValidateBeforeDeleteBillboard(ctx context.Context, billboardID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Categories, FieldName: "billboardId", ErrorMessage: "Khong the xoa billboard vi co %d category dang su dung billboard nay. Vui long xoa cac category truoc."},
	}
	return CheckRelationshipExists(ctx, billboardID, checks)
}

// ValidateBeforeDeleteStore kiem tra cac quan he cua Store truoc khi xoa
func ValidateBeforeDeleteStore(ctx context.Context, storeID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "storeId", ErrorMessage: "Khong the xoa store vi co %d product truc thuoc. Vui long xoa cac product truoc."},
		{CollectionName: global.MongoDB_ColNames.Categories, FieldName: "storeId", ErrorMessage: "Khong the xoa store vi co %d category truc thuoc. Vui long xoa cac category truoc."},
		{CollectionName: global.MongoDB_ColNames.Billboards, FieldName: "storeId", ErrorMessage: "Khong the xoa store vi co %d billboard truc thuoc. Vui long xoa cac billboard truoc."},
	}
	return CheckRelationshipExists(ctx, storeID, checks)
}

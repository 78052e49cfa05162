// Package uploadsvc - cấp V4 signed URL upload ảnh lên Cloud Storage.
// Ký qua IAMCredentials SignBlob nên không cần private key JSON trong runtime,
// chỉ cần service account email và quyền signBlob.
package uploadsvc

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	uploaddto "design_commerce/internal/api/upload/dto"
	"design_commerce/internal/common"
	"design_commerce/internal/global"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/api/iamcredentials/v1"
)

// uploadURLTTL thời hạn signed URL.
const uploadURLTTL = 15 * time.Minute

// allowedContentTypes content type ảnh được phép, map sang extension chuẩn.
var allowedContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// UploadService cấp signed URL và xóa object trên bucket cấu hình.
type UploadService struct {
	bucket      string
	signerEmail string
}

// NewUploadService tạo UploadService từ config server.
func NewUploadService() (*UploadService, error) {
	cfg := global.ServerConfig
	if cfg.StorageBucket == "" || cfg.StorageSignerEmail == "" {
		return nil, fmt.Errorf("thiếu cấu hình storage bucket hoặc signer email")
	}
	return &UploadService{
		bucket:      cfg.StorageBucket,
		signerEmail: cfg.StorageSignerEmail,
	}, nil
}

// signBytes ký payload qua IAMCredentials SignBlob của service account.
func (s *UploadService) signBytes(ctx context.Context) func([]byte) ([]byte, error) {
	return func(payload []byte) ([]byte, error) {
		svc, err := iamcredentials.NewService(ctx)
		if err != nil {
			return nil, fmt.Errorf("khởi tạo iamcredentials: %w", err)
		}
		name := fmt.Sprintf("projects/-/serviceAccounts/%s", s.signerEmail)
		req := &iamcredentials.SignBlobRequest{
			Payload: base64.StdEncoding.EncodeToString(payload),
		}
		resp, err := svc.Projects.ServiceAccounts.SignBlob(name, req).Do()
		if err != nil {
			return nil, err
		}
		return base64.StdEncoding.DecodeString(resp.SignedBlob)
	}
}

// publicURL đường dẫn đọc công khai của object (bucket mở allUsers Viewer).
func (s *UploadService) publicURL(objectPath string) string {
	parts := strings.Split(objectPath, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, strings.Join(parts, "/"))
}

// IssueUploadURL kiểm tra contentType/extension rồi cấp V4 signed PUT URL
// cho object `stores/{storeId}/{uuid}.{ext}`, hạn 15 phút.
func (s *UploadService) IssueUploadURL(ctx context.Context, storeID primitive.ObjectID, input *uploaddto.UploadURLInput) (*uploaddto.UploadURLResult, error) {
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	expectedExt, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, common.NewError(common.ErrCodeValidationInput, "Content type không được hỗ trợ: "+contentType, common.StatusBadRequest, nil)
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(input.FileName), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	if ext != expectedExt {
		return nil, common.NewError(common.ErrCodeValidationInput, "Extension không khớp content type", common.StatusBadRequest, nil)
	}

	objectPath := fmt.Sprintf("stores/%s/%s.%s", storeID.Hex(), uuid.NewString(), ext)
	expiresAt := time.Now().UTC().Add(uploadURLTTL)

	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "PUT",
		GoogleAccessID: s.signerEmail,
		SignBytes:      s.signBytes(ctx),
		ContentType:    contentType,
		Expires:        expiresAt,
	}
	uploadURL, err := storage.SignedURL(s.bucket, objectPath, opts)
	if err != nil {
		return nil, common.NewError(common.ErrCodeStorageSign, "Không ký được upload URL", common.StatusServiceUnavailable, err)
	}

	return &uploaddto.UploadURLResult{
		UploadURL:  uploadURL,
		PublicURL:  s.publicURL(objectPath),
		ObjectPath: objectPath,
		ExpiresAt:  expiresAt.Format(time.RFC3339),
	}, nil
}

// DeleteObject xóa object của store. ObjectPath phải nằm trong prefix của
// store đang làm việc, chặn xóa file store khác.
func (s *UploadService) DeleteObject(ctx context.Context, storeID primitive.ObjectID, objectPath string) error {
	prefix := fmt.Sprintf("stores/%s/", storeID.Hex())
	cleaned := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if !strings.HasPrefix(cleaned, prefix) || strings.Contains(cleaned, "..") {
		return common.NewError(common.ErrCodeAuthRole, "Không có quyền xóa object này", common.StatusForbidden, nil)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return common.NewError(common.ErrCodeStorageSign, "Không kết nối được storage", common.StatusServiceUnavailable, err)
	}
	defer client.Close()

	if err := client.Bucket(s.bucket).Object(cleaned).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return common.NewError(common.ErrCodeStorageSign, "Không xóa được object", common.StatusInternalServerError, err)
	}
	return nil
}

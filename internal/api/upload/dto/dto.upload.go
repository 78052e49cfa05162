// Package uploaddto - input/output cho domain upload.
package uploaddto

// UploadURLInput yêu cầu cấp signed URL để client PUT file trực tiếp lên bucket.
type UploadURLInput struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

// UploadURLResult signed URL kèm đường dẫn công khai sau khi upload xong.
type UploadURLResult struct {
	UploadURL  string `json:"uploadUrl"`
	PublicURL  string `json:"publicUrl"`
	ObjectPath string `json:"objectPath"`
	ExpiresAt  string `json:"expiresAt"`
}

// DeleteObjectInput xóa một object đã upload của store.
type DeleteObjectInput struct {
	ObjectPath string `json:"objectPath" validate:"required"`
}

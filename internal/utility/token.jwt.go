package utility

import (
	jwt "github.com/dgrijalva/jwt-go"

	"design_commerce/internal/common"
)

// CreateToken tạo JWT token từ claims với secret cho trước
// @params - secret ký token, claims chứa thông tin user
// @returns - chuỗi token đã ký và lỗi nếu có
func CreateToken(secret string, claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(
			common.ErrCodeAuthToken,
			"Không thể tạo token",
			common.StatusInternalServerError,
			err,
		)
	}
	return signed, nil
}

// VerifyToken xác thực chuỗi JWT token và decode vào claims
// @params - secret ký token, chuỗi token, con trỏ claims nhận kết quả
// @returns - lỗi nếu token không hợp lệ hoặc đã hết hạn
func VerifyToken(secret string, tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Chỉ chấp nhận HMAC, chặn thuật toán ký khác (vd: none)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return common.ErrTokenExpired
		}
		return common.ErrTokenInvalid
	}
	if !token.Valid {
		return common.ErrTokenInvalid
	}
	return nil
}

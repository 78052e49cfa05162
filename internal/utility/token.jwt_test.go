package utility

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"design_commerce/internal/common"
)

func TestCreateAndVerifyToken(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"userId": "abc123",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}

	token, err := CreateToken(secret, claims)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	decoded := jwt.MapClaims{}
	if err := VerifyToken(secret, token, decoded); err != nil {
		t.Fatalf("VerifyToken lỗi với token hợp lệ: %v", err)
	}
	if decoded["userId"] != "abc123" {
		t.Errorf("userId = %v, muốn abc123", decoded["userId"])
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", jwt.MapClaims{"userId": "abc"})
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	err = VerifyToken("secret-b", token, jwt.MapClaims{})
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("sai secret phải trả về ErrTokenInvalid, nhận %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	secret := "test-secret"
	token, err := CreateToken(secret, jwt.MapClaims{
		"userId": "abc",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	err = VerifyToken(secret, token, jwt.MapClaims{})
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("token hết hạn phải trả về ErrTokenExpired, nhận %v", err)
	}
}

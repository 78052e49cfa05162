package authsvc

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hashed == "S3cret!pass" {
		t.Fatal("mật khẩu băm không được trùng plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte("S3cret!pass")); err != nil {
		t.Errorf("hash không khớp với mật khẩu gốc: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte("wrong")); err == nil {
		t.Error("hash không được khớp với mật khẩu sai")
	}
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("hai lần băm cùng mật khẩu phải cho hash khác nhau (salt ngẫu nhiên)")
	}
}

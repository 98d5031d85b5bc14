package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded.
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashPassword produces a salted bcrypt hash of password.
//
// The password is first keyed with pepper through HashString. The resulting
// 64-character hex digest fits bcrypt's 72-byte input limit for passwords of
// any length and ties stored hashes to the server's secret.
func HashPassword(password, pepper string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(HashString(password, pepper)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches a hash produced by
// HashPassword with the same pepper.
func CheckPassword(hash, password, pepper string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(HashString(password, pepper))) == nil
}

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// TokenVerifier проверяет токен создания аккаунта по хэшу из конфигурации.
// Используется внешним identity-коллаборатором при регистрации; сам сервис
// управлением аккаунтами не занимается.
type TokenVerifier struct {
	acceptedHash string
}

// NewTokenVerifier создает verifier для хэша допустимого токена
// (hex-кодированный SHA-256)
func NewTokenVerifier(acceptedHash string) *TokenVerifier {
	return &TokenVerifier{acceptedHash: acceptedHash}
}

// VerifyToken сравнивает хэш токена с допустимым за константное время
func (v *TokenVerifier) VerifyToken(token string) bool {
	if v.acceptedHash == "" {
		return false
	}
	sum := sha256.Sum256([]byte(token))
	hash := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(hash), []byte(v.acceptedHash)) == 1
}

// HashToken возвращает hex-кодированный SHA-256 хэш токена.
// Удобно для генерации значения account_creation_token_hash в конфиге.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns hex(HMAC-SHA256(key, data)). The 64-character result
// stays below bcrypt's 72-byte input limit, so it is used to pepper
// passwords before hashing.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex encoding of the HMAC-SHA256 digest of
// message keyed with secret. The message must be the exact byte sequence
// transmitted on the wire; any mutation after signing invalidates the
// signature. An empty secret still yields a well-defined digest, rejecting
// empty credentials is the caller's job.
func Sign(secret, message []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature matches the HMAC-SHA256 digest
// of message keyed with secret. Comparison is constant time.
func VerifySignature(secret, message []byte, signature string) bool {
	expected := Sign(secret, message)
	return hmac.Equal([]byte(expected), []byte(signature))
}

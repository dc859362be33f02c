// Package auth implements the authentication core: salted PBKDF2 password
// hashing, HS256 access-token issuance and verification, and bearer-header
// identity resolution.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/chineye-ai/chatserver/internal/common"
)

const (
	// saltBytes is the amount of entropy behind each salt; the stored form
	// is its hex encoding (64 characters).
	saltBytes = 32

	// pbkdf2Iterations is fixed: changing it invalidates every stored hash.
	pbkdf2Iterations = 100_000

	keyLen = sha256.Size

	// hashSep joins the hex-encoded salt and derived key. Hex never
	// contains '$', so splitting is unambiguous.
	hashSep = "$"
)

// HashPassword derives a storable hash from plaintext: a fresh random salt,
// PBKDF2-HMAC-SHA256 over the UTF-8 bytes of the password, and the result
// encoded as "salthex$keyhex". The salt fed to PBKDF2 is the ASCII hex
// string itself, which keeps stored hashes portable across implementations
// that treat the salt as text.
func HashPassword(plaintext string) (string, error) {
	salt, err := common.MakeRandHexString(saltBytes)
	if err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(plaintext), []byte(salt), pbkdf2Iterations, keyLen, sha256.New)

	return salt + hashSep + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. It fails
// closed: a malformed stored value (wrong part count, non-hex content) is
// indistinguishable from a wrong password.
func VerifyPassword(plaintext, stored string) bool {
	salt, keyHex, ok := strings.Cut(stored, hashSep)
	if !ok || strings.Contains(keyHex, hashSep) {
		return false
	}

	expected, err := hex.DecodeString(keyHex)
	if err != nil || len(expected) == 0 {
		return false
	}
	if _, err := hex.DecodeString(salt); err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(plaintext), []byte(salt), pbkdf2Iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(derived, expected) == 1
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Parameters of newly produced password hashes.
const (
	PasswordHashMethod     = "pbkdf2"
	PasswordHashName       = "sha256"
	PasswordHashIterations = 100_000
	PasswordSaltLength     = 16
	PasswordKeyLength      = 32
)

// passwordHashFuncs lists the digests accepted by VerifyPassword.
var passwordHashFuncs = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// HashPassword derives a PBKDF2-HMAC-SHA256 key from password with a fresh
// 16-byte random salt and 100 000 iterations, and encodes the result as
//
//	pbkdf2:sha256:100000$<base64(salt)>$<base64(key)>
//
// Salt and key use standard padded base64. The function has no error path.
//
// Example usage:
//
//	encoded := utils.HashPassword("secret")
//	ok := utils.VerifyPassword("secret", encoded) // true
func HashPassword(password string) string {
	salt := make([]byte, PasswordSaltLength)
	// crypto/rand.Read never returns an error
	_, _ = rand.Read(salt)

	return encodePasswordHash(password, salt, PasswordHashIterations)
}

func encodePasswordHash(password string, salt []byte, iterations int) string {
	key := pbkdf2.Key([]byte(password), salt, iterations, PasswordKeyLength, sha256.New)

	return fmt.Sprintf("%s:%s:%d$%s$%s",
		PasswordHashMethod,
		PasswordHashName,
		iterations,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	)
}

// VerifyPassword reports whether password matches encodedHash.
//
// The encoded hash is parsed back into method, digest name, iteration count,
// salt and key; a key of the same length is derived from password and the
// two are compared in constant time. Any malformed input yields false.
func VerifyPassword(password, encodedHash string) bool {
	parsed, ok := parsePasswordHash(encodedHash)
	if !ok {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), parsed.salt, parsed.iterations, len(parsed.key), parsed.hashFunc)

	return subtle.ConstantTimeCompare(parsed.key, candidate) == 1
}

type passwordHash struct {
	hashFunc   func() hash.Hash
	iterations int
	salt       []byte
	key        []byte
}

func parsePasswordHash(encodedHash string) (passwordHash, bool) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 3 {
		return passwordHash{}, false
	}

	algorithm := strings.Split(parts[0], ":")
	if len(algorithm) != 3 || algorithm[0] != PasswordHashMethod {
		return passwordHash{}, false
	}

	hashFunc, ok := passwordHashFuncs[algorithm[1]]
	if !ok {
		return passwordHash{}, false
	}

	iterations, err := strconv.Atoi(algorithm[2])
	if err != nil || iterations <= 0 {
		return passwordHash{}, false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return passwordHash{}, false
	}

	key, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return passwordHash{}, false
	}

	return passwordHash{
		hashFunc:   hashFunc,
		iterations: iterations,
		salt:       salt,
		key:        key,
	}, true
}

// Package cryptox implements password hashing for user records using the
// argon2id key derivation function, encoded in the standard PHC string
// format:
//
//	$argon2id$v=19$m=65536,t=2,p=1$<base64 salt>$<base64 key>
//
// Hashes produced by other argon2id implementations with different cost
// parameters still verify, because verification re-derives the key with the
// parameters parsed from the hash itself.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"notekeeper/internal/common"
)

const (
	argonTime    = 2
	argonMemory  = 64 * 1024
	argonThreads = 1
	saltLength   = 16
	keyLength    = 32
)

// HashPassword derives an argon2id key from password with a fresh random
// salt and returns it as a PHC string. The clear password is never stored.
// An empty password is rejected with common.ErrorInvalidInput.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrorInvalidInput)
	}

	salt := common.GenerateRandByteArray(saltLength)
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches the PHC-encoded hash.
// A malformed hash yields false rather than an error, and the comparison of
// the derived keys is constant-time.
func VerifyPassword(password, encoded string) bool {
	memory, time, threads, salt, key, err := parseHash(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func parseHash(encoded string) (memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, fmt.Errorf("not an argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("parsing parameters: %w", err)
	}
	if parallelism == 0 || parallelism > 255 {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid parallelism %d", parallelism)
	}
	if time == 0 {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid time cost %d", time)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("decoding salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("decoding key: %w", err)
	}
	if len(key) == 0 {
		return 0, 0, 0, nil, nil, fmt.Errorf("empty key")
	}

	return memory, time, uint8(parallelism), salt, key, nil
}

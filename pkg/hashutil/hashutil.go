package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"lukechampine.com/blake3"
)

type HashAlgo string

const (
	HashAlgoSHA256 HashAlgo = "sha256"
	HashAlgoBLAKE3 HashAlgo = "blake3"
)

// fingerprintSize is the number of digest bytes kept by Fingerprint.
const fingerprintSize = 8

// ParseHashAlgo returns the algorithm named s.
func ParseHashAlgo(s string) (HashAlgo, error) {
	switch algo := HashAlgo(strings.ToLower(s)); algo {
	case HashAlgoSHA256, HashAlgoBLAKE3:
		return algo, nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", s)
	}
}

// HashBytes returns the hash of bytes as a hex string using the specified algorithm.
// Supported algorithms: "sha256" and "blake3".
func HashBytes(data []byte, algo HashAlgo) (string, error) {
	switch algo {
	case HashAlgoSHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	case HashAlgoBLAKE3:
		sum := blake3.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", algo)
	}
}

// Fingerprint returns a short BLAKE3 hex digest of s. It identifies a
// URL or a text in reports without repeating it.
func Fingerprint(s string) string {
	sum := blake3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:fingerprintSize])
}

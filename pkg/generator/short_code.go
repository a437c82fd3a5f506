package generator

import (
	"crypto/rand"
	"math/big"
)

const (
	base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	idLength    = 7
)

// GenerateShortID returns a random 7-character base62 token. Collisions
// are rare at this length and handled by the caller's retry on the
// unique constraint.
func GenerateShortID() (string, error) {
	b := make([]byte, idLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base62Chars))))
		if err != nil {
			return "", err
		}
		b[i] = base62Chars[n.Int64()]
	}

	return string(b), nil
}

package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const pickupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no 0/O, 1/I

// NewPickupCode returns an opaque 8-character token the customer shows at
// collection.
func NewPickupCode() (string, error) {
	code := make([]byte, 8)
	max := big.NewInt(int64(len(pickupCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate pickup code: %w", err)
		}
		code[i] = pickupCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// GenerateVerificationCode returns a 6-digit numeric one-time code sampled
// uniformly from [100000, 999999]. The lower bound keeps the width fixed,
// so codes never need zero padding.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("crypto: generate verification code: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+codeMin), nil
}

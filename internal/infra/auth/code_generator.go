package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	otpMin   = 100000
	otpRange = 900000
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a generator of uniformly random codes in [100000, 999999].
func NewCodeGenerator() service.CodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", errors.Wrap(err, "read random")
	}

	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}

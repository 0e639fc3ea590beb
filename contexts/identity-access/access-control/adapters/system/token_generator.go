package system

import (
	"context"

	"github.com/google/uuid"
)

// UUIDTokenGenerator implements ports.TokenGenerator using UUID v4 values.
type UUIDTokenGenerator struct{}

func (UUIDTokenGenerator) NewToken(_ context.Context) (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return token.String(), nil
}

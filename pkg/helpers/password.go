package helpers

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the application password-hasher capability with
// bcrypt at the default cost.
type BcryptHasher struct{}

func (BcryptHasher) Hash(_ context.Context, plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptHasher) Compare(_ context.Context, plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package admin

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var errInvalidHash = errors.New("invalid bcrypt hash")

// Verifier checks a submitted username and password pair.
type Verifier interface {
	Verify(user string, password string) bool
}

// StaticVerifier accepts a single fixed pair. It is a placeholder credential check and provides no real security.
type StaticVerifier struct {
	User     string
	Password string
}

func (v StaticVerifier) Verify(user string, password string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(user), []byte(v.User)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1

	return userOk && passOk
}

// BcryptVerifier checks the password against a bcrypt hash.
type BcryptVerifier struct {
	user string
	hash []byte
}

func NewBcryptVerifier(user string, hash string) (BcryptVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return BcryptVerifier{}, errors.Join(err, errInvalidHash)
	}

	return BcryptVerifier{user: user, hash: []byte(hash)}, nil
}

func (v BcryptVerifier) Verify(user string, password string) bool {
	if subtle.ConstantTimeCompare([]byte(user), []byte(v.user)) != 1 {
		return false
	}

	return bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
}

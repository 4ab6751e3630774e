package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"go-login-api/logger"
	"go-login-api/model"

	"golang.org/x/crypto/bcrypt"
)

var ErrNoExpectedCredentials = errors.New("expected username and password must be configured")

// bcrypt only reads the first 72 bytes of a password.
const maxPasswordBytes = 72

// AuthService checks submitted credentials against the single expected pair.
// It holds no mutable state and is safe for concurrent use.
type AuthService struct {
	username     string
	passwordHash []byte
}

// NewAuthService hashes password once with the given bcrypt cost.
func NewAuthService(username, password string, cost int) (*AuthService, error) {
	if username == "" || password == "" {
		return nil, ErrNoExpectedCredentials
	}
	hash, err := HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return &AuthService{username: username, passwordHash: []byte(hash)}, nil
}

// NewAuthServiceWithHash uses an existing bcrypt hash for the expected password.
func NewAuthServiceWithHash(username, passwordHash string) (*AuthService, error) {
	if username == "" || passwordHash == "" {
		return nil, ErrNoExpectedCredentials
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}
	return &AuthService{username: username, passwordHash: []byte(passwordHash)}, nil
}

func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func CheckPasswordHash(password string, hash []byte) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	return err == nil
}

// Authenticate reports whether creds match the expected pair. Empty fields
// never match, and neither does a password longer than bcrypt can hash.
func (s *AuthService) Authenticate(creds model.Credentials) bool {
	if creds.Username == "" || creds.Password == "" {
		return false
	}
	if len(creds.Password) > maxPasswordBytes {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	// The hash is compared even for an unknown username so both paths take
	// about the same time.
	passOK := CheckPasswordHash(creds.Password, s.passwordHash)
	return userOK && passOK
}

// Package auth holds the demo-grade admin login: a pluggable credential
// check, an in-memory session flag and the tokens that point at it.
package auth

import (
	"crypto/subtle"

	"github.com/arunvm123/eventbooking-demo/config"
	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker decides whether a username/password pair is the admin.
type CredentialChecker interface {
	Check(username, password string) bool
}

// StaticChecker accepts exactly one configured pair.
type StaticChecker struct {
	username string
	password string
}

func NewStaticChecker(username, password string) *StaticChecker {
	return &StaticChecker{username: username, password: password}
}

func (c *StaticChecker) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	return userOK && passOK
}

// BcryptChecker compares the password against a bcrypt hash.
type BcryptChecker struct {
	username     string
	passwordHash []byte
}

func NewBcryptChecker(username, passwordHash string) *BcryptChecker {
	return &BcryptChecker{username: username, passwordHash: []byte(passwordHash)}
}

func (c *BcryptChecker) Check(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
}

// HashPassword returns a bcrypt hash suitable for admin.password_hash.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// NewChecker picks the bcrypt checker when a hash is configured and the plain
// pair otherwise.
func NewChecker(cfg config.Admin) CredentialChecker {
	if cfg.PasswordHash != "" {
		return NewBcryptChecker(cfg.Username, cfg.PasswordHash)
	}
	return NewStaticChecker(cfg.Username, cfg.Password)
}

package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/logismart/logismart/internal/model"
)

// ErrInvalidCredentials reports a failed login. Every failure mode (unknown id,
// wrong password) collapses into this one error; there is no lockout and no
// rate limiting.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultPassword is the shared demo password used when none is configured.
// This gate is demo-grade by design, not a security boundary.
const DefaultPassword = "123456"

// directory is the fixed set of known users. Profiles are never created or
// destroyed at runtime.
var directory = map[string]model.UserProfile{
	"P88390": {ID: "P88390", Name: "Input Clerk", Role: model.RoleInputter},
	"P82334": {ID: "P82334", Name: "Maker & Approval", Role: model.RoleMakerApprover},
	"P81955": {ID: "P81955", Name: "Checker & Admin", Role: model.RoleChecker},
}

// Gate validates user ids against the fixed directory and a single shared
// password.
type Gate struct {
	hash []byte
}

// NewGate creates a session gate for the given shared password. An empty
// password falls back to DefaultPassword.
func NewGate(password string) (*Gate, error) {
	if password == "" {
		password = DefaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing shared password: %w", err)
	}
	return &Gate{hash: hash}, nil
}

// Authenticate returns the profile for id when the password matches, or
// ErrInvalidCredentials.
func (g *Gate) Authenticate(id, password string) (*model.UserProfile, error) {
	profile, ok := directory[id]
	if !ok {
		// Burn a comparison anyway so unknown ids take as long as known ones.
		bcrypt.CompareHashAndPassword(g.hash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &profile, nil
}

// Directory returns all known profiles, mainly for listings and tests.
func Directory() []model.UserProfile {
	out := make([]model.UserProfile, 0, len(directory))
	for _, p := range directory {
		out = append(out, p)
	}
	return out
}

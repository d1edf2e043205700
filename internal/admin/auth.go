// Package admin verifies the shared admin secret and issues session
// tokens. One secret, one role; the token is opaque and tracks no expiry.
package admin

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid admin credentials")

type Auth struct {
	passwordHash string
}

// NewAuth takes the bcrypt hash of the admin password from configuration.
func NewAuth(passwordHash string) *Auth {
	return &Auth{passwordHash: passwordHash}
}

// Login compares the supplied password against the configured hash and
// returns a fresh opaque session token on success.
func (a *Auth) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		log.Warn().Msg("auth: admin login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := uuid.NewV4()
	if err != nil {
		log.Error().Err(err).Msg("auth: failed to generate session token")
		return "", fmt.Errorf("auth: failed to generate session token: %w", err)
	}

	log.Info().Msg("auth: admin logged in")
	return token.String(), nil
}

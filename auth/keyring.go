// Package auth stores the optional media service token in the OS keyring.
package auth

import (
	"errors"

	"github.com/clipdeck/clipdeck/constant"
	"github.com/zalando/go-keyring"
)

const user = "api-token"

// SetToken saves token for later requests.
func SetToken(token string) error {
	return keyring.Set(constant.Clipdeck, user, token)
}

// Token returns the saved token, or "" when none is stored.
func Token() (string, error) {
	token, err := keyring.Get(constant.Clipdeck, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}

	return token, err
}

// DeleteToken forgets the saved token. Deleting a missing token is not an error.
func DeleteToken() error {
	err := keyring.Delete(constant.Clipdeck, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}

	return err
}

package storage

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "stocktake-cli"

// Keyring is a Store backed by the OS keychain/credential manager.
// Session data (bearer token, serialized user) lives here so credentials
// never land in a plain file.
type Keyring struct {
	service string
}

// NewKeyring creates a keyring-backed store under the default service name.
func NewKeyring() *Keyring {
	return &Keyring{service: keyringService}
}

func (k *Keyring) Get(key string) (string, error) {
	value, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read %q from keyring: %w", key, err)
	}
	return value, nil
}

func (k *Keyring) Set(key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("failed to save %q to keyring: %w", key, err)
	}
	return nil
}

func (k *Keyring) Delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete %q from keyring: %w", key, err)
	}
	return nil
}

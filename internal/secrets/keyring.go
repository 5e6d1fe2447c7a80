package secrets

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"
	"github.com/salmonumbrella/toggl-cli/internal/config"
)

// KeyringStore stores the API token in the OS keyring under the fixed
// toggl-cli service name.
type KeyringStore struct {
	open func() (keyring.Keyring, error)
}

// OpenKeyring returns the process-wide keyring-backed store. The keyring
// itself is opened lazily so that env-var resolution never touches it.
func OpenKeyring() *KeyringStore {
	return &KeyringStore{open: openRing}
}

func openRing() (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName: config.KeyringService,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.FileBackend,
		},
		FileDir:          fileBackendDir(),
		FilePasswordFunc: filePassword,
	}

	switch os.Getenv(config.KeyringBackendEnvVarName) {
	case "file":
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	case "keychain":
		cfg.AllowedBackends = []keyring.BackendType{keyring.KeychainBackend}
	case "wincred":
		cfg.AllowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "secret-service":
		cfg.AllowedBackends = []keyring.BackendType{keyring.SecretServiceBackend}
	}

	return keyring.Open(cfg)
}

func fileBackendDir() string {
	if dir := os.Getenv(config.CredentialsDirEnvVarName); dir != "" {
		return filepath.Join(dir, config.AppName, "keyring")
	}
	if configDir, err := config.ConfigDir(); err == nil {
		return filepath.Join(configDir, "keyring")
	}
	return ""
}

func filePassword(prompt string) (string, error) {
	if pw := os.Getenv(config.KeyringPasswordEnvVarName); pw != "" {
		return pw, nil
	}
	return keyring.TerminalPrompt(prompt)
}

func (s *KeyringStore) Get() (string, error) {
	ring, err := s.open()
	if err != nil {
		return "", &StoreError{Op: "open", Err: err}
	}

	item, err := ring.Get(config.KeyringTokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotFound
		}
		return "", &StoreError{Op: "read", Err: err}
	}

	return string(item.Data), nil
}

func (s *KeyringStore) Set(token string) error {
	ring, err := s.open()
	if err != nil {
		return &StoreError{Op: "open", Err: err}
	}

	err = ring.Set(keyring.Item{
		Key:   config.KeyringTokenKey,
		Label: config.KeyringService + " API token",
		Data:  []byte(token),
	})
	if err != nil {
		return &StoreError{Op: "write", Err: err}
	}
	return nil
}

func (s *KeyringStore) Delete() error {
	ring, err := s.open()
	if err != nil {
		return &StoreError{Op: "open", Err: err}
	}

	err = ring.Remove(config.KeyringTokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return ErrNotFound
		}
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}

package identity

import (
	"errors"
	"fmt"
	"os"
)

// Config controls how a Manager creates and persists identities.
type Config struct {
	// DefaultType is the type Create uses when no type is given.
	DefaultType Type
	// KeyFile is the path Load and Save use by default.
	KeyFile string
}

// Manager is the identity lifecycle entry point handed to the rest of the
// application: it creates, loads, and persists identities without callers
// needing to know the wire format.
type Manager struct {
	config Config
}

// NewManager builds a Manager from config.
func NewManager(config Config) *Manager {
	return &Manager{config: config}
}

// Create generates a fresh identity of the manager's configured default
// type.
func (m *Manager) Create() (*Identity, error) {
	return m.CreateWithType(m.config.DefaultType)
}

// CreateWithType generates a fresh identity of the given type.
func (m *Manager) CreateWithType(t Type) (*Identity, error) {
	id, err := Generate(t)
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}
	log.Info("created identity", "type", t, "address", id.Address())
	return id, nil
}

// Load reads and parses an identity from the manager's configured key
// file, text-encoded with its private key.
func (m *Manager) Load() (*Identity, error) {
	return m.LoadFrom(m.config.KeyFile)
}

// LoadFrom reads and parses an identity from an arbitrary path.
func (m *Manager) LoadFrom(path string) (*Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read identity file %s: %w", path, err)
	}

	id, err := FromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse identity file %s: %w", path, err)
	}
	if !id.LocallyValidate() {
		return nil, fmt.Errorf("identity file %s: %w", path, ErrInvalidIdentity)
	}
	return id, nil
}

// Save writes id to the manager's configured key file, including its
// private key if present.
func (m *Manager) Save(id *Identity) error {
	return m.SaveTo(m.config.KeyFile, id)
}

// SaveTo writes id to an arbitrary path.
func (m *Manager) SaveTo(path string, id *Identity) error {
	text := id.StringWithPrivate()
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write identity file %s: %w", path, err)
	}
	return nil
}

// LoadOrCreate loads the manager's configured key file, generating and
// persisting a fresh identity if it does not yet exist.
func (m *Manager) LoadOrCreate() (*Identity, error) {
	id, err := m.Load()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	id, err = m.Create()
	if err != nil {
		return nil, err
	}
	if err := m.Save(id); err != nil {
		return nil, err
	}
	return id, nil
}

// Package config holds ambient configuration types for the identity
// subsystem and the fx module (module.go) that wires them into an
// application. It is decoupled from the wire format.
package config

import (
	"strings"

	"github.com/meshframe/identity/internal/identity"
)

// IdentityConfig controls how the identity module creates or loads its
// local identity at startup.
type IdentityConfig struct {
	// DefaultType is the identity type Create uses.
	DefaultType identity.Type
	// IdentityPath, if set, is where the identity is loaded from and
	// saved to.
	IdentityPath string
	// AutoCreate generates a fresh identity when IdentityPath is empty,
	// or when no file exists at IdentityPath, in which case the new
	// identity is saved there. When it is false, a missing file is an
	// error.
	AutoCreate bool
}

// DefaultIdentityConfig returns the conservative default: type-0
// identities, no fixed path, auto-creation enabled so a bare invocation
// still produces a usable identity.
func DefaultIdentityConfig() IdentityConfig {
	return IdentityConfig{
		DefaultType:  identity.TypeC25519,
		IdentityPath: "",
		AutoCreate:   true,
	}
}

// ToManagerConfig adapts this configuration to the internal manager's
// narrower view of it.
func (c IdentityConfig) ToManagerConfig() identity.Config {
	return identity.Config{
		DefaultType: c.DefaultType,
		KeyFile:     c.IdentityPath,
	}
}

// ParseType parses "0"/"c25519" as TypeC25519 and "1"/"p384" as TypeP384.
func ParseType(s string) (identity.Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "c25519":
		return identity.TypeC25519, true
	case "1", "p384":
		return identity.TypeP384, true
	default:
		return 0, false
	}
}

// Command identitygen generates, validates, and inspects identities from
// the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/meshframe/identity/config"
	coreidentity "github.com/meshframe/identity/internal/identity"
	"github.com/meshframe/identity/internal/util/logger"
	"github.com/meshframe/identity/pkg/identity"
)

var (
	identityPath   = flag.String("identity", "", "identity file path (created if missing)")
	identityType   = flag.String("type", "c25519", "identity type for newly generated identities: c25519 or p384")
	validateOnly   = flag.Bool("validate", false, "validate the identity at -identity and exit")
	showPublicOnly = flag.Bool("public", false, "print the identity without its private key")
	logLevel       = flag.String("log-level", "", "overrides MESHID_LOG_LEVEL for this run")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "identitygen:", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *logLevel != "" {
		os.Setenv("MESHID_LOG_LEVEL", *logLevel)
	}
	log := logger.Logger("identitygen")

	if *identityPath == "" {
		return fmt.Errorf("-identity is required")
	}

	typ, ok := config.ParseType(*identityType)
	if !ok {
		return fmt.Errorf("unknown -type %q", *identityType)
	}

	cfg := config.DefaultIdentityConfig()
	cfg.DefaultType = typ
	cfg.IdentityPath = *identityPath

	manager := coreidentity.NewManager(cfg.ToManagerConfig())

	if *validateOnly {
		id, err := manager.Load()
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		if !identity.Validate(id) {
			return fmt.Errorf("identity %s failed local validation", id.Address())
		}
		fmt.Println("ok:", id.Address())
		return nil
	}

	id, err := manager.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("load or create: %w", err)
	}
	log.Info("ready", "address", id.Address(), "type", id.Type())

	if *showPublicOnly {
		fmt.Println(id.String())
	} else {
		fmt.Println(id.StringWithPrivate())
	}
	return nil
}

package config

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/meshframe/identity/internal/identity"
)

// ModuleInput declares this module's fx dependencies. Config is optional;
// DefaultIdentityConfig is used when the application does not supply one.
type ModuleInput struct {
	fx.In

	Config *IdentityConfig `optional:"true"`
}

// ModuleOutput declares the services this module makes available to the
// rest of the application via fx's named-output convention.
type ModuleOutput struct {
	fx.Out

	Identity *identity.Identity `name:"identity"`
	Manager  *identity.Manager  `name:"identity_manager"`
}

// provideServices creates or loads the local identity according to the
// supplied (or default) configuration.
func provideServices(input ModuleInput) (ModuleOutput, error) {
	cfg := DefaultIdentityConfig()
	if input.Config != nil {
		cfg = *input.Config
	}

	manager := identity.NewManager(cfg.ToManagerConfig())

	var (
		id  *identity.Identity
		err error
	)
	switch {
	case cfg.IdentityPath != "" && cfg.AutoCreate:
		id, err = manager.LoadOrCreate()
	case cfg.IdentityPath != "":
		id, err = manager.Load()
	case cfg.AutoCreate:
		id, err = manager.Create()
	default:
		return ModuleOutput{}, fmt.Errorf("identity config has no path and AutoCreate is false")
	}
	if err != nil {
		return ModuleOutput{}, fmt.Errorf("provide identity: %w", err)
	}

	return ModuleOutput{Identity: id, Manager: manager}, nil
}

// Module returns the fx module wiring identity creation/loading into an
// application's dependency graph.
func Module() fx.Option {
	return fx.Module("identity",
		fx.Provide(provideServices),
		fx.Invoke(registerLifecycle),
	)
}

type lifecycleInput struct {
	fx.In

	LC       fx.Lifecycle
	Identity *identity.Identity `name:"identity"`
}

func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return nil
		},
		OnStop: func(_ context.Context) error {
			return nil
		},
	})
}

package interfaces

import (
	"context"

	v1 "mylegacyregistry/domain/v1"
)

// RegistryView is the read-only legacy query surface over the live registry.
// It returns legacy-shaped aggregates and must be safe for concurrent use.
//
// Lookups that match nothing return entity_not_found; any other failure is internal_server_error.
//
//go:generate moq -stub -out mock/registry_view.go -pkg mock . RegistryView
type RegistryView interface {
	// FullSnapshot returns every application with the snapshot hash code.
	FullSnapshot(ctx context.Context) (v1.Applications, error)

	// DeltaSnapshot returns the instances changed by the latest refresh, each tagged with its action type.
	// The hash code is the one of the full snapshot the delta leads to.
	DeltaSnapshot(ctx context.Context) (v1.Applications, error)

	// ByApplicationName returns the application with exactly this name.
	ByApplicationName(ctx context.Context, name string) (v1.Application, error)

	// ByVIP returns the applications having at least one instance registered under vip.
	// Only matching instances are included.
	ByVIP(ctx context.Context, vip string) (v1.Applications, error)

	// BySecureVIP is ByVIP for secure VIP addresses.
	BySecureVIP(ctx context.Context, secureVIP string) (v1.Applications, error)

	// ByInstanceID returns the instance with this id in any application.
	ByInstanceID(ctx context.Context, id string) (v1.InstanceInfo, error)

	// ByApplicationAndInstanceID returns the instance only when both the application and the id match.
	ByApplicationAndInstanceID(ctx context.Context, appName string, id string) (v1.InstanceInfo, error)
}

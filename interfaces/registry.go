package interfaces

import (
	"context"

	"mylegacyregistry/domain"
)

// Registry is the live registry the legacy view is projected from.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Instances returns every instance currently registered. An empty registry is (empty, nil).
	// Returns internal_server_error when the backing store cannot be read.
	Instances(ctx context.Context) ([]domain.Instance, error)
}

package service

import (
	"time"

	"mylegacyregistry/helpers"
	"mylegacyregistry/interfaces"
)

// timeProvider implements interfaces.TimeProvider with an injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
// Built in cmd/main with time.Now; tests pass a fixed clock.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}

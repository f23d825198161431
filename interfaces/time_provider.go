package interfaces

import "time"

// TimeProvider supplies the current time. The registry view uses it to decide when its
// projection is stale; tests inject a fixed clock.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	Now() time.Time
}

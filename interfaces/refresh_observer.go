package interfaces

// RefreshObserver is told about every registry view refresh. Implemented by metrics.Metrics.
//
//go:generate moq -stub -out mock/refresh_observer.go -pkg mock . RefreshObserver
type RefreshObserver interface {
	// ObserveRefresh reports a finished refresh: the number of instances in the new snapshot and
	// the number of instances in its delta. err is non-nil when the refresh failed, then the
	// counts are zero.
	ObserveRefresh(instances int, changes int, err error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"mylegacyregistry/converters"
	v1 "mylegacyregistry/domain/v1"
	"mylegacyregistry/helpers"
	"mylegacyregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// registryView implements interfaces.RegistryView over the live registry.
//
// It keeps one legacy projection of the registry and rebuilds it at most once per refresh
// interval, on the first query after the interval elapsed. Each rebuild diffs the new snapshot
// against the previous one; that diff is what DeltaSnapshot serves until the next rebuild.
// Projections are never mutated after they are built, so they are shared by concurrent queries.
type registryView struct {
	registry interfaces.Registry
	clock    interfaces.TimeProvider
	observer interfaces.RefreshObserver
	interval time.Duration
	logger   log.Logger

	mu    sync.RWMutex
	state *viewState
}

type viewState struct {
	refreshedAt time.Time
	generation  uint64
	byID        map[string]v1.InstanceInfo
	full        v1.Applications
	delta       v1.Applications
}

// NewRegistryView creates the registry view. Panics on missing collaborators or a non-positive interval.
func NewRegistryView(
	registry interfaces.Registry,
	clock interfaces.TimeProvider,
	observer interfaces.RefreshObserver,
	interval time.Duration,
	logger log.Logger,
) *registryView {
	if interval <= 0 {
		panic("service.registry_view.go: refresh interval must be positive")
	}
	return &registryView{
		registry: helpers.NilPanic(registry, "service.registry_view.go: registry is required"),
		clock:    helpers.NilPanic(clock, "service.registry_view.go: clock is required"),
		observer: helpers.NilPanic(observer, "service.registry_view.go: observer is required"),
		interval: interval,
		logger:   log.WithPrefix(helpers.NilPanic(logger, "service.registry_view.go: logger is required"), "component", "RegistryView"),
	}
}

func (v *registryView) FullSnapshot(ctx context.Context) (v1.Applications, error) {
	s, err := v.current(ctx)
	if err != nil {
		return v1.Applications{}, err
	}
	return s.full, nil
}

func (v *registryView) DeltaSnapshot(ctx context.Context) (v1.Applications, error) {
	s, err := v.current(ctx)
	if err != nil {
		return v1.Applications{}, err
	}
	return s.delta, nil
}

func (v *registryView) ByApplicationName(ctx context.Context, name string) (v1.Application, error) {
	s, err := v.current(ctx)
	if err != nil {
		return v1.Application{}, err
	}
	app, ok := s.full.Application(name)
	if !ok {
		return v1.Application{}, NewEntityNotFoundError(fmt.Sprintf("application %q not found", name), nil)
	}
	return app, nil
}

func (v *registryView) ByVIP(ctx context.Context, vip string) (v1.Applications, error) {
	return v.byAddress(ctx, "VIP", vip, func(i v1.InstanceInfo) string { return i.VIPAddress })
}

func (v *registryView) BySecureVIP(ctx context.Context, secureVIP string) (v1.Applications, error) {
	return v.byAddress(ctx, "secure VIP", secureVIP, func(i v1.InstanceInfo) string { return i.SecureVIPAddress })
}

func (v *registryView) ByInstanceID(ctx context.Context, id string) (v1.InstanceInfo, error) {
	s, err := v.current(ctx)
	if err != nil {
		return v1.InstanceInfo{}, err
	}
	i, ok := s.byID[id]
	if !ok {
		return v1.InstanceInfo{}, NewEntityNotFoundError(fmt.Sprintf("instance %q not found", id), nil)
	}
	return i, nil
}

func (v *registryView) ByApplicationAndInstanceID(ctx context.Context, appName string, id string) (v1.InstanceInfo, error) {
	s, err := v.current(ctx)
	if err != nil {
		return v1.InstanceInfo{}, err
	}
	i, ok := s.byID[id]
	if !ok || i.App != appName {
		return v1.InstanceInfo{}, NewEntityNotFoundError(fmt.Sprintf("instance %q not found in application %q", id, appName), nil)
	}
	return i, nil
}

// byAddress collects the instances registered under address. An instance may list several
// addresses separated by commas.
func (v *registryView) byAddress(ctx context.Context, kind string, address string, field func(v1.InstanceInfo) string) (v1.Applications, error) {
	s, err := v.current(ctx)
	if err != nil {
		return v1.Applications{}, err
	}

	var matches []v1.InstanceInfo
	for _, app := range s.full.Applications {
		for _, i := range app.Instances {
			if hasAddress(field(i), address) {
				matches = append(matches, i)
			}
		}
	}
	if len(matches) == 0 {
		return v1.Applications{}, NewEntityNotFoundError(fmt.Sprintf("no instance registered under %s %q", kind, address), nil)
	}

	apps := converters.ToV1Applications(matches)
	apps.VersionsDelta = s.full.VersionsDelta
	return apps, nil
}

func hasAddress(list string, address string) bool {
	for _, a := range strings.Split(list, ",") {
		if strings.TrimSpace(a) == address {
			return true
		}
	}
	return false
}

// current returns the projection, rebuilding it first when it is missing or stale.
func (v *registryView) current(ctx context.Context) (*viewState, error) {
	now := v.clock.Now()

	v.mu.RLock()
	s := v.state
	v.mu.RUnlock()
	if v.fresh(s, now) {
		return s, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	// Another query may have refreshed while this one waited.
	if v.fresh(v.state, now) {
		return v.state, nil
	}

	next, err := v.build(ctx, v.state, now)
	if errors.Is(err, context.Canceled) {
		// The triggering query went away; the next one retries.
		level.Debug(v.logger).Log("msg", "registry refresh abandoned", "err", err)
		return nil, err
	}
	if err != nil {
		v.observer.ObserveRefresh(0, 0, err)
		level.Error(v.logger).Log("msg", "registry refresh failed", "err", err)
		return nil, err
	}
	v.state = next
	v.observer.ObserveRefresh(len(next.byID), next.delta.Size(), nil)
	level.Debug(v.logger).Log(
		"msg", "registry refreshed",
		"generation", next.generation,
		"instances", len(next.byID),
		"changes", next.delta.Size(),
		"hashcode", next.full.AppsHashCode,
	)
	return next, nil
}

func (v *registryView) fresh(s *viewState, now time.Time) bool {
	return s != nil && now.Sub(s.refreshedAt) < v.interval
}

func (v *registryView) build(ctx context.Context, prev *viewState, now time.Time) (*viewState, error) {
	instances, err := v.registry.Instances(ctx)
	if err != nil {
		return nil, NewInternalServerError("can't read the registry", fmt.Errorf("registry view refresh failed, err: %w", err))
	}

	byID := make(map[string]v1.InstanceInfo, len(instances))
	for _, in := range instances {
		info, err := converters.ToV1InstanceInfo(in)
		if err != nil {
			return nil, NewInternalServerError("malformed registry record", fmt.Errorf("can't convert instance %q of %q, err: %w", in.InstanceID, in.App, err))
		}
		byID[info.InstanceID] = info
	}

	var generation uint64 = 1
	var baseline map[string]v1.InstanceInfo
	if prev != nil {
		generation = prev.generation + 1
		baseline = prev.byID
	}

	all := make([]v1.InstanceInfo, 0, len(byID))
	for _, info := range byID {
		all = append(all, info)
	}
	full := converters.ToV1Applications(all)
	full.VersionsDelta = strconv.FormatUint(generation, 10)

	delta := converters.ToV1Delta(baseline, byID)
	delta.VersionsDelta = full.VersionsDelta
	delta.AppsHashCode = full.AppsHashCode

	return &viewState{
		refreshedAt: now,
		generation:  generation,
		byID:        byID,
		full:        full,
		delta:       delta,
	}, nil
}

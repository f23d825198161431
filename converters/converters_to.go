// Package converters maps new-registry records to the legacy v1 model and back.
//
// All functions are pure: they never mutate their input and hold no state.
package converters

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"mylegacyregistry/domain"
	v1 "mylegacyregistry/domain/v1"
)

// ErrMalformedInstance is returned when a record lacks the identity fields a legacy instance needs.
var ErrMalformedInstance = errors.New("malformed instance")

// ToV1InstanceInfo converts a new-registry instance to a legacy instance.
// Fields absent from the new model get the legacy defaults (ports 7001/7002 disabled, 90s lease,
// MyOwn data center, UNKNOWN status).
func ToV1InstanceInfo(in domain.Instance) (v1.InstanceInfo, error) {
	if err := in.Validate(); err != nil {
		return v1.InstanceInfo{}, fmt.Errorf("%w: %w", ErrMalformedInstance, err)
	}

	var ts int64
	if !in.Timestamp.IsZero() {
		ts = in.Timestamp.UnixMilli()
	}

	hostName := in.Hostname
	if hostName == "" {
		hostName = in.Ipv4
	}

	durationInSecs := v1.DefaultDurationInSecs
	if in.TTLMs >= 1000 {
		durationInSecs = in.TTLMs / 1000
	}

	lease := v1.LeaseInfo{
		RenewalIntervalInSecs: v1.DefaultRenewalIntervalInSecs,
		DurationInSecs:        durationInSecs,
		RegistrationTimestamp: ts,
		LastRenewalTimestamp:  ts,
		ServiceUpTimestamp:    ts,
	}

	healthCheckURL, secureHealthCheckURL := splitHealthCheckURLs(in.HealthCheckURLs)

	return v1.InstanceInfo{
		InstanceID:           in.InstanceID,
		HostName:             hostName,
		App:                  in.App,
		AppGroupName:         in.AppGroup,
		IPAddr:               in.Ipv4,
		Status:               toV1Status(in.Status),
		OverriddenStatus:     v1.StatusUnknown,
		Port:                 firstPort(in.Ports, false, v1.DefaultPort),
		SecurePort:           firstPort(in.Ports, true, v1.DefaultSecurePort),
		CountryID:            v1.DefaultCountryID,
		DataCenterInfo:       toV1DataCenterInfo(in.DataCenter),
		LeaseInfo:            lease,
		Metadata:             copyMetadata(in.Metadata),
		HomePageURL:          in.HomePageURL,
		StatusPageURL:        in.StatusPageURL,
		HealthCheckURL:       healthCheckURL,
		SecureHealthCheckURL: secureHealthCheckURL,
		VIPAddress:           in.VipAddress,
		SecureVIPAddress:     in.SecureVipAddress,
		LastUpdatedTimestamp: ts,
		LastDirtyTimestamp:   ts,
		ActionType:           v1.ActionAdded,
		ASGName:              in.ASG,
	}, nil
}

// ToV1Applications groups legacy instances by application and computes the snapshot hash code.
// Applications are ordered by name and instances by id so equal inputs serialize identically.
func ToV1Applications(instances []v1.InstanceInfo) v1.Applications {
	byApp := make(map[string][]v1.InstanceInfo)
	for _, i := range instances {
		byApp[i.App] = append(byApp[i.App], i)
	}

	names := make([]string, 0, len(byApp))
	for name := range byApp {
		names = append(names, name)
	}
	sort.Strings(names)

	apps := make([]v1.Application, 0, len(names))
	for _, name := range names {
		apps = append(apps, ToV1Application(name, byApp[name]))
	}

	return v1.Applications{
		AppsHashCode: v1.ReconcileHashCode(apps),
		Applications: apps,
	}
}

// ToV1Application builds one application from its instances.
func ToV1Application(name string, instances []v1.InstanceInfo) v1.Application {
	sorted := make([]v1.InstanceInfo, len(instances))
	copy(sorted, instances)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].InstanceID < sorted[j].InstanceID
	})
	return v1.Application{Name: name, Instances: sorted}
}

// ToV1Delta diffs two instance sets keyed by instance id. Instances only in current are ADDED,
// only in baseline are DELETED (with their last known state), present in both but different are
// MODIFIED. The hash code is left to the caller: legacy clients expect the hash of the full
// snapshot the delta leads to.
func ToV1Delta(baseline, current map[string]v1.InstanceInfo) v1.Applications {
	changed := make([]v1.InstanceInfo, 0)
	for id, cur := range current {
		prev, ok := baseline[id]
		switch {
		case !ok:
			cur.ActionType = v1.ActionAdded
			changed = append(changed, cur)
		case !sameInstance(prev, cur):
			cur.ActionType = v1.ActionModified
			changed = append(changed, cur)
		}
	}
	for id, prev := range baseline {
		if _, ok := current[id]; !ok {
			prev.ActionType = v1.ActionDeleted
			changed = append(changed, prev)
		}
	}

	delta := ToV1Applications(changed)
	delta.AppsHashCode = ""
	return delta
}

func sameInstance(a, b v1.InstanceInfo) bool {
	a.ActionType, b.ActionType = "", ""
	return reflect.DeepEqual(a, b)
}

func toV1Status(s domain.InstanceStatus) v1.InstanceStatus {
	switch s {
	case domain.StatusUp:
		return v1.StatusUp
	case domain.StatusDown:
		return v1.StatusDown
	case domain.StatusStarting:
		return v1.StatusStarting
	case domain.StatusOutOfService:
		return v1.StatusOutOfService
	default:
		return v1.StatusUnknown
	}
}

func firstPort(ports []domain.ServicePort, secure bool, fallback int) v1.Port {
	for _, p := range ports {
		if p.Secure == secure {
			return v1.Port{Value: p.Port, Enabled: true}
		}
	}
	return v1.Port{Value: fallback, Enabled: false}
}

func splitHealthCheckURLs(urls []string) (plain, secure string) {
	for _, u := range urls {
		if strings.HasPrefix(strings.ToLower(u), "https://") {
			if secure == "" {
				secure = u
			}
		} else if plain == "" {
			plain = u
		}
	}
	return plain, secure
}

func toV1DataCenterInfo(dc domain.DataCenter) v1.DataCenterInfo {
	if dc.Name == domain.DataCenterAmazon {
		return v1.DataCenterInfo{
			Class:    v1.DataCenterClassAmazon,
			Name:     v1.DataCenterAmazon,
			Metadata: copyMetadata(dc.Metadata),
		}
	}
	return v1.DataCenterInfo{
		Class: v1.DataCenterClassDefault,
		Name:  v1.DataCenterMyOwn,
	}
}

func copyMetadata(m map[string]string) v1.Metadata {
	out := make(v1.Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

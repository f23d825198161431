package converters

import (
	"fmt"
	"time"

	"mylegacyregistry/domain"
	v1 "mylegacyregistry/domain/v1"
)

// FromV1InstanceInfo converts a legacy instance back to a new-registry instance.
// Only enabled ports are carried over; legacy-only fields (country id, overridden status,
// coordinating flag, action type) have no counterpart and are dropped.
func FromV1InstanceInfo(in v1.InstanceInfo) (domain.Instance, error) {
	if in.InstanceID == "" {
		return domain.Instance{}, fmt.Errorf("%w: %w", ErrMalformedInstance, domain.ErrInstanceIDRequired)
	}
	if in.App == "" {
		return domain.Instance{}, fmt.Errorf("%w: %w", ErrMalformedInstance, domain.ErrAppRequired)
	}

	var ports []domain.ServicePort
	if in.Port.Enabled {
		ports = append(ports, domain.ServicePort{Port: in.Port.Value})
	}
	if in.SecurePort.Enabled {
		ports = append(ports, domain.ServicePort{Port: in.SecurePort.Value, Secure: true})
	}

	var healthCheckURLs []string
	if in.HealthCheckURL != "" {
		healthCheckURLs = append(healthCheckURLs, in.HealthCheckURL)
	}
	if in.SecureHealthCheckURL != "" {
		healthCheckURLs = append(healthCheckURLs, in.SecureHealthCheckURL)
	}

	var ts time.Time
	if in.LastUpdatedTimestamp > 0 {
		ts = time.UnixMilli(in.LastUpdatedTimestamp).UTC()
	}

	var metadata map[string]string
	if len(in.Metadata) > 0 {
		metadata = make(map[string]string, len(in.Metadata))
		for k, v := range in.Metadata {
			metadata[k] = v
		}
	}

	return domain.Instance{
		InstanceID:       in.InstanceID,
		App:              in.App,
		AppGroup:         in.AppGroupName,
		ASG:              in.ASGName,
		VipAddress:       in.VIPAddress,
		SecureVipAddress: in.SecureVIPAddress,
		Status:           domain.InstanceStatus(toV1Status(domain.InstanceStatus(in.Status))),
		Hostname:         in.HostName,
		Ipv4:             in.IPAddr,
		Ports:            ports,
		HomePageURL:      in.HomePageURL,
		StatusPageURL:    in.StatusPageURL,
		HealthCheckURLs:  healthCheckURLs,
		Metadata:         metadata,
		DataCenter:       fromV1DataCenterInfo(in.DataCenterInfo),
		Timestamp:        ts,
		TTLMs:            in.LeaseInfo.DurationInSecs * 1000,
	}, nil
}

func fromV1DataCenterInfo(dc v1.DataCenterInfo) domain.DataCenter {
	if dc.Name != v1.DataCenterAmazon {
		return domain.DataCenter{}
	}
	out := domain.DataCenter{Name: domain.DataCenterAmazon}
	if len(dc.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(dc.Metadata))
		for k, v := range dc.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

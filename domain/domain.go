package domain

import (
	"errors"
	"time"
)

// InstanceStatus is the lifecycle status of an instance in the new registry.
type InstanceStatus string

const (
	StatusUp           InstanceStatus = "UP"
	StatusDown         InstanceStatus = "DOWN"
	StatusStarting     InstanceStatus = "STARTING"
	StatusOutOfService InstanceStatus = "OUT_OF_SERVICE"
	StatusUnknown      InstanceStatus = "UNKNOWN"
)

// DataCenterAmazon marks instances running in AWS; anything else is treated as a private data center.
const DataCenterAmazon = "Amazon"

// Instance represents an instance record stored by the new registry.
// Fields match the stored JSON (and seed YAML): instance_id, app, vip_address, status, ports, ...
type Instance struct {
	InstanceID       string            `json:"instance_id" yaml:"instance_id"` // unique instance identifier
	App              string            `json:"app" yaml:"app"`                 // owning application name
	AppGroup         string            `json:"app_group,omitempty" yaml:"app_group,omitempty"`
	ASG              string            `json:"asg,omitempty" yaml:"asg,omitempty"`
	VipAddress       string            `json:"vip_address,omitempty" yaml:"vip_address,omitempty"`
	SecureVipAddress string            `json:"secure_vip_address,omitempty" yaml:"secure_vip_address,omitempty"`
	Status           InstanceStatus    `json:"status,omitempty" yaml:"status,omitempty"`
	Hostname         string            `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Ipv4             string            `json:"ipv4,omitempty" yaml:"ipv4,omitempty"` // IPv4 address
	Ports            []ServicePort     `json:"ports,omitempty" yaml:"ports,omitempty"`
	HomePageURL      string            `json:"home_page_url,omitempty" yaml:"home_page_url,omitempty"`
	StatusPageURL    string            `json:"status_page_url,omitempty" yaml:"status_page_url,omitempty"`
	HealthCheckURLs  []string          `json:"health_check_urls,omitempty" yaml:"health_check_urls,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	DataCenter       DataCenter        `json:"data_center,omitempty" yaml:"data_center,omitempty"`
	Timestamp        time.Time         `json:"timestamp,omitempty" yaml:"timestamp,omitempty"` // last update
	TTLMs            int               `json:"ttl_ms,omitempty" yaml:"ttl_ms,omitempty"`       // lease TTL in milliseconds
}

// ServicePort is one port exposed by an instance.
type ServicePort struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Port   int    `json:"port" yaml:"port"`
	Secure bool   `json:"secure,omitempty" yaml:"secure,omitempty"`
}

// DataCenter describes where an instance runs.
type DataCenter struct {
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

var (
	ErrInstanceIDRequired = errors.New("instance_id is required")
	ErrAppRequired        = errors.New("app is required")
)

// Validate reports whether the record carries the identity fields every projection needs.
func (i Instance) Validate() error {
	if i.InstanceID == "" {
		return ErrInstanceIDRequired
	}
	if i.App == "" {
		return ErrAppRequired
	}
	return nil
}

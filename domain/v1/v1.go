// Package v1 contains the legacy (v1) registry wire model served to old clients.
//
// The same types serialize to JSON and XML. JSON payloads are wrapped in a single root key
// ("applications", "application", "instance") and XML payloads use the same name as root element;
// the wrapping is done by the serializer, not by these types.
package v1

// InstanceStatus is the legacy instance status.
type InstanceStatus string

const (
	StatusUp           InstanceStatus = "UP"
	StatusDown         InstanceStatus = "DOWN"
	StatusStarting     InstanceStatus = "STARTING"
	StatusOutOfService InstanceStatus = "OUT_OF_SERVICE"
	StatusUnknown      InstanceStatus = "UNKNOWN"
)

// ActionType tells a delta consumer what happened to an instance.
type ActionType string

const (
	ActionAdded    ActionType = "ADDED"
	ActionModified ActionType = "MODIFIED"
	ActionDeleted  ActionType = "DELETED"
)

// Data center classes understood by legacy clients.
const (
	DataCenterClassDefault = "com.netflix.appinfo.InstanceInfo$DefaultDataCenterInfo"
	DataCenterClassAmazon  = "com.netflix.appinfo.AmazonInfo"

	DataCenterMyOwn  = "MyOwn"
	DataCenterAmazon = "Amazon"
)

// Legacy defaults for fields the new registry does not carry.
const (
	DefaultPort                  = 7001
	DefaultSecurePort            = 7002
	DefaultCountryID             = 1
	DefaultRenewalIntervalInSecs = 30
	DefaultDurationInSecs        = 90
)

// InstanceInfo is a legacy instance record.
type InstanceInfo struct {
	InstanceID                    string         `json:"instanceId" xml:"instanceId"`
	HostName                      string         `json:"hostName" xml:"hostName"`
	App                           string         `json:"app" xml:"app"`
	AppGroupName                  string         `json:"appGroupName,omitempty" xml:"appGroupName,omitempty"`
	IPAddr                        string         `json:"ipAddr" xml:"ipAddr"`
	Status                        InstanceStatus `json:"status" xml:"status"`
	OverriddenStatus              InstanceStatus `json:"overriddenstatus" xml:"overriddenstatus"`
	Port                          Port           `json:"port" xml:"port"`
	SecurePort                    Port           `json:"securePort" xml:"securePort"`
	CountryID                     int            `json:"countryId" xml:"countryId"`
	DataCenterInfo                DataCenterInfo `json:"dataCenterInfo" xml:"dataCenterInfo"`
	LeaseInfo                     LeaseInfo      `json:"leaseInfo" xml:"leaseInfo"`
	Metadata                      Metadata       `json:"metadata" xml:"metadata"`
	HomePageURL                   string         `json:"homePageUrl,omitempty" xml:"homePageUrl,omitempty"`
	StatusPageURL                 string         `json:"statusPageUrl,omitempty" xml:"statusPageUrl,omitempty"`
	HealthCheckURL                string         `json:"healthCheckUrl,omitempty" xml:"healthCheckUrl,omitempty"`
	SecureHealthCheckURL          string         `json:"secureHealthCheckUrl,omitempty" xml:"secureHealthCheckUrl,omitempty"`
	VIPAddress                    string         `json:"vipAddress,omitempty" xml:"vipAddress,omitempty"`
	SecureVIPAddress              string         `json:"secureVipAddress,omitempty" xml:"secureVipAddress,omitempty"`
	IsCoordinatingDiscoveryServer bool           `json:"isCoordinatingDiscoveryServer,string" xml:"isCoordinatingDiscoveryServer"`
	LastUpdatedTimestamp          int64          `json:"lastUpdatedTimestamp,string" xml:"lastUpdatedTimestamp"`
	LastDirtyTimestamp            int64          `json:"lastDirtyTimestamp,string" xml:"lastDirtyTimestamp"`
	ActionType                    ActionType     `json:"actionType,omitempty" xml:"actionType,omitempty"`
	ASGName                       string         `json:"asgName,omitempty" xml:"asgName,omitempty"`
}

// DataCenterInfo names the data center an instance runs in.
type DataCenterInfo struct {
	Class    string   `json:"@class" xml:"class,attr"`
	Name     string   `json:"name" xml:"name"`
	Metadata Metadata `json:"metadata,omitempty" xml:"metadata,omitempty"`
}

// LeaseInfo is the legacy lease bookkeeping of an instance. Timestamps are Unix milliseconds.
type LeaseInfo struct {
	RenewalIntervalInSecs int   `json:"renewalIntervalInSecs" xml:"renewalIntervalInSecs"`
	DurationInSecs        int   `json:"durationInSecs" xml:"durationInSecs"`
	RegistrationTimestamp int64 `json:"registrationTimestamp" xml:"registrationTimestamp"`
	LastRenewalTimestamp  int64 `json:"lastRenewalTimestamp" xml:"lastRenewalTimestamp"`
	EvictionTimestamp     int64 `json:"evictionTimestamp" xml:"evictionTimestamp"`
	ServiceUpTimestamp    int64 `json:"serviceUpTimestamp" xml:"serviceUpTimestamp"`
}

// Application is the set of instances registered under one application name.
type Application struct {
	Name      string         `json:"name" xml:"name"`
	Instances []InstanceInfo `json:"instance" xml:"instance"`
}

// Applications is a registry snapshot (full, delta or filtered) with its hash code.
type Applications struct {
	VersionsDelta string        `json:"versions__delta" xml:"versions__delta"`
	AppsHashCode  string        `json:"apps__hashcode" xml:"apps__hashcode"`
	Applications  []Application `json:"application" xml:"application"`
}

// Application returns the application with the given name.
func (a Applications) Application(name string) (Application, bool) {
	for _, app := range a.Applications {
		if app.Name == name {
			return app, true
		}
	}
	return Application{}, false
}

// Instance returns the instance with the given id.
func (a Application) Instance(id string) (InstanceInfo, bool) {
	for _, i := range a.Instances {
		if i.InstanceID == id {
			return i, true
		}
	}
	return InstanceInfo{}, false
}

// Size returns the number of instances across all applications.
func (a Applications) Size() int {
	n := 0
	for _, app := range a.Applications {
		n += len(app.Instances)
	}
	return n
}

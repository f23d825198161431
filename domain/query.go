package domain

// Operation is one of the read operations of the v1 query API.
type Operation string

const (
	OperationApplications            Operation = "applications"
	OperationApplicationsDelta       Operation = "applications_delta"
	OperationApplicationInstance     Operation = "application_instance"
	OperationApplication             Operation = "application"
	OperationApplicationsByVIP       Operation = "applications_by_vip"
	OperationApplicationsBySecureVIP Operation = "applications_by_secure_vip"
	OperationInstance                Operation = "instance"
)

// Query is a routed request: the operation and the path parameters it needs.
// Unused parameters are empty.
type Query struct {
	Operation  Operation
	AppName    string
	InstanceID string
	VIP        string
}

// MediaType is a response serialization selected by content negotiation.
type MediaType string

const (
	MediaTypeJSON MediaType = "application/json"
	MediaTypeXML  MediaType = "application/xml"
)

// DefaultRootPath is the root prefix legacy clients expect the v1 API under.
const DefaultRootPath = "/eureka/v2"
